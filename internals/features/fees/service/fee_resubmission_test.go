package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	feeModel "hostelshub_backend/internals/features/fees/model"
	helper "hostelshub_backend/internals/helpers"
)

func feeWith(status string, count int) *feeModel.MonthlyAdminFeeModel {
	return &feeModel.MonthlyAdminFeeModel{
		Month:        "2026-03",
		Status:       status,
		StudentCount: count,
	}
}

func assertConflict(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var ae *helper.AppError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, helper.KindConflict, ae.Kind)
}

func TestResubmissionBlockedWhilePending(t *testing.T) {
	assertConflict(t, resubmissionBlocked(feeWith(feeModel.FeePending, 5), 8))
}

func TestResubmissionBlockedWhenApprovedCountUnchanged(t *testing.T) {
	assertConflict(t, resubmissionBlocked(feeWith(feeModel.FeeApproved, 5), 5))
	assertConflict(t, resubmissionBlocked(feeWith(feeModel.FeeApproved, 5), 4))
}

func TestResubmissionAllowedWhenApprovedCountGrew(t *testing.T) {
	assert.NoError(t, resubmissionBlocked(feeWith(feeModel.FeeApproved, 5), 6))
}

func TestResubmissionAllowedAfterRejection(t *testing.T) {
	assert.NoError(t, resubmissionBlocked(feeWith(feeModel.FeeRejected, 5), 5))
}
