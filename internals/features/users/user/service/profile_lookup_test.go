package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	helper "hostelshub_backend/internals/helpers"
)

func mockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db, mock
}

func TestStudentProfileByUser(t *testing.T) {
	db, mock := mockDB(t)
	userID := uuid.New()
	profileID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "student_profiles"`).
		WithArgs(userID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "full_name", "self_verified"}).
			AddRow(profileID, userID, "Ayesha Khan", true))

	profile, err := StudentProfileByUser(db, userID)
	require.NoError(t, err)
	assert.Equal(t, profileID, profile.ID)
	assert.True(t, profile.SelfVerified)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentProfileByUserNotFound(t *testing.T) {
	db, mock := mockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "student_profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := StudentProfileByUser(db, uuid.New())
	require.Error(t, err)

	appErr, ok := err.(*helper.AppError)
	require.True(t, ok)
	assert.Equal(t, helper.KindNotFound, appErr.Kind)
}

func TestManagerProfileByUserNotFound(t *testing.T) {
	db, mock := mockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "manager_profiles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := ManagerProfileByUser(db, uuid.New())
	require.Error(t, err)

	appErr, ok := err.(*helper.AppError)
	require.True(t, ok)
	assert.Equal(t, helper.KindNotFound, appErr.Kind)
}
