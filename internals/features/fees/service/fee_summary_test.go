package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	feeModel "hostelshub_backend/internals/features/fees/model"
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

func TestPendingFeeSummaryShowsAdditionalPayment(t *testing.T) {
	db, mock := mockDB(t)
	userID := uuid.New()
	managerID := uuid.New()
	hostelID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "manager_profiles"`).
		WithArgs(userID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).
			AddRow(managerID, userID))
	mock.ExpectQuery(`SELECT \* FROM "hostels"`).
		WithArgs(managerID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "manager_id", "hostel_name"}).
			AddRow(hostelID, managerID, "Al-Noor Hostel"))
	// Approved fee covered five students, but three more joined since.
	mock.ExpectQuery(`SELECT \* FROM "monthly_admin_fees"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "manager_id", "hostel_id", "status", "student_count"}).
			AddRow(uuid.New(), managerID, hostelID, feeModel.FeeApproved, 5))
	mock.ExpectQuery(`SELECT COUNT\(\*\) AS count, COALESCE\(SUM\(amount\), 0\) AS total FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"count", "total"}).AddRow(8, 64000.0))

	summary, err := PendingFeeSummary(db, userID)
	require.NoError(t, err)
	require.Len(t, summary, 1)

	entry := summary[0]
	assert.Equal(t, int64(8), entry.ActiveStudents)
	assert.Equal(t, 5, entry.PaidStudentCount)
	assert.Equal(t, int64(3), entry.AdditionalStudents)
	assert.Equal(t, 3*feeModel.FeePerStudent, entry.AdditionalFeeAmount)
	assert.True(t, entry.NeedsAdditionalPayment)
	assert.False(t, entry.Submitted)
	require.NotNil(t, entry.Status)
	assert.Equal(t, feeModel.FeePending, *entry.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingFeeSummaryApprovedAndCovered(t *testing.T) {
	db, mock := mockDB(t)
	userID := uuid.New()
	managerID := uuid.New()
	hostelID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "manager_profiles"`).
		WithArgs(userID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).
			AddRow(managerID, userID))
	mock.ExpectQuery(`SELECT \* FROM "hostels"`).
		WithArgs(managerID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "manager_id", "hostel_name"}).
			AddRow(hostelID, managerID, "Al-Noor Hostel"))
	mock.ExpectQuery(`SELECT \* FROM "monthly_admin_fees"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "manager_id", "hostel_id", "status", "student_count"}).
			AddRow(uuid.New(), managerID, hostelID, feeModel.FeeApproved, 8))
	mock.ExpectQuery(`SELECT COUNT\(\*\) AS count, COALESCE\(SUM\(amount\), 0\) AS total FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"count", "total"}).AddRow(8, 64000.0))

	summary, err := PendingFeeSummary(db, userID)
	require.NoError(t, err)
	require.Len(t, summary, 1)

	entry := summary[0]
	assert.True(t, entry.Submitted)
	assert.False(t, entry.NeedsAdditionalPayment)
	assert.Zero(t, entry.AdditionalStudents)
	require.NotNil(t, entry.Status)
	assert.Equal(t, feeModel.FeeApproved, *entry.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingFeeSummaryNothingSubmitted(t *testing.T) {
	db, mock := mockDB(t)
	userID := uuid.New()
	managerID := uuid.New()
	hostelID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "manager_profiles"`).
		WithArgs(userID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).
			AddRow(managerID, userID))
	mock.ExpectQuery(`SELECT \* FROM "hostels"`).
		WithArgs(managerID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "manager_id", "hostel_name"}).
			AddRow(hostelID, managerID, "Al-Noor Hostel"))
	mock.ExpectQuery(`SELECT \* FROM "monthly_admin_fees"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(`SELECT COUNT\(\*\) AS count, COALESCE\(SUM\(amount\), 0\) AS total FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"count", "total"}).AddRow(4, 32000.0))

	summary, err := PendingFeeSummary(db, userID)
	require.NoError(t, err)
	require.Len(t, summary, 1)

	entry := summary[0]
	assert.Nil(t, entry.Status)
	assert.False(t, entry.Submitted)
	assert.Equal(t, int64(4), entry.ActiveStudents)
	assert.Equal(t, 4*feeModel.FeePerStudent, entry.FeeAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}
