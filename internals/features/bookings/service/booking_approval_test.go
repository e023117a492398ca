package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hostelshub_backend/internals/features/bookings/model"
	hostelModel "hostelshub_backend/internals/features/hostels/model"
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

func TestApproveBookingRejectsWhenNoRoomsLeft(t *testing.T) {
	db, mock := mockDB(t)
	managerUserID := uuid.New()
	managerID := uuid.New()
	bookingID := uuid.New()
	studentID := uuid.New()
	hostelID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "manager_profiles"`).
		WithArgs(managerUserID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).
			AddRow(managerID, managerUserID))
	mock.ExpectQuery(`SELECT \* FROM "bookings"`).
		WithArgs(bookingID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "student_id", "hostel_id", "room_type", "booking_type", "status"}).
			AddRow(bookingID, studentID, hostelID, hostelModel.RoomShared, model.BookingTypeRegular, model.BookingPending))
	mock.ExpectQuery(`SELECT \* FROM "hostels"`).
		WithArgs(hostelID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "manager_id"}).
			AddRow(hostelID, managerID))

	// The last room was taken between submission and approval.
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "hostels"`).
		WithArgs(hostelID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "manager_id", "room_types"}).
			AddRow(hostelID, managerID,
				[]byte(`[{"type":"SHARED","total_rooms":4,"available_rooms":0,"persons_in_room":4,"price":8000}]`)))
	mock.ExpectRollback()

	_, err := ApproveBooking(db, managerUserID, bookingID)
	require.Error(t, err)
	assert.Equal(t, helper.KindDomainRule, kindOf(t, err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
