package service

import (
	"database/sql/driver"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostelshub_backend/internals/constants"
)

// jsonWith matches a JSON-valued argument containing the given fragment.
type jsonWith string

func (j jsonWith) Match(v driver.Value) bool {
	switch b := v.(type) {
	case []byte:
		return strings.Contains(string(b), string(j))
	case string:
		return strings.Contains(b, string(j))
	}
	return false
}

func TestDeleteStudentAccountRestoresRoom(t *testing.T) {
	db, mock := mockDB(t)
	userID := uuid.New()
	studentID := uuid.New()
	bookingID := uuid.New()
	hostelID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WithArgs(userID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "role"}).
			AddRow(userID, constants.RoleStudent))
	mock.ExpectQuery(`SELECT \* FROM "student_profiles"`).
		WithArgs(userID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "current_hostel_id"}).
			AddRow(studentID, userID, hostelID))
	mock.ExpectQuery(`SELECT \* FROM "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "student_id", "hostel_id", "room_type", "status"}).
			AddRow(bookingID, studentID, hostelID, "SHARED", "APPROVED"))

	// The occupied room goes back into inventory before the rows vanish.
	mock.ExpectQuery(`SELECT \* FROM "hostels"`).
		WithArgs(hostelID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "room_types"}).
			AddRow(hostelID,
				[]byte(`[{"type":"SHARED","total_rooms":4,"available_rooms":1,"persons_in_room":4,"price":8000}]`)))
	mock.ExpectExec(`UPDATE "hostels" SET`).
		WithArgs(jsonWith(`"available_rooms":2`), sqlmock.AnyArg(), hostelID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectExec(`DELETE FROM "reviews"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "bookings"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "reservations"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "reports"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "student_profiles"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "refresh_tokens"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "messages"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "conversations"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "audit_logs"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "users"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := DeleteMyAccount(db, userID)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
