package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingStateTransitions(t *testing.T) {
	booking := &Booking{Status: BookingStatusPending}
	state := GetBookingState(booking.Status)

	require.NoError(t, state.Confirm(booking))
	assert.Equal(t, BookingStatusConfirmed, booking.Status)

	booking.Status = BookingStatusPending
	assert.Error(t, state.CheckIn(booking))
	assert.Error(t, state.Complete(booking))
	assert.Equal(t, BookingStatusPending, booking.Status)

	require.NoError(t, state.Cancel(booking))
	assert.Equal(t, BookingStatusCancelled, booking.Status)
}

func TestConfirmedStateTransitions(t *testing.T) {
	booking := &Booking{Status: BookingStatusConfirmed}
	state := GetBookingState(booking.Status)

	assert.Error(t, state.Confirm(booking))
	assert.Equal(t, BookingStatusConfirmed, booking.Status)

	require.NoError(t, state.CheckIn(booking))
	assert.Equal(t, BookingStatusInUse, booking.Status)

	booking.Status = BookingStatusConfirmed
	require.NoError(t, state.Complete(booking))
	assert.Equal(t, BookingStatusCompleted, booking.Status)

	booking.Status = BookingStatusConfirmed
	require.NoError(t, state.Cancel(booking))
	assert.Equal(t, BookingStatusCancelled, booking.Status)
}

func TestInUseStateTransitions(t *testing.T) {
	booking := &Booking{Status: BookingStatusInUse}
	state := GetBookingState(booking.Status)

	assert.Error(t, state.Confirm(booking))
	assert.Error(t, state.CheckIn(booking))
	// Khách đang ở thì không hủy được nữa
	assert.Error(t, state.Cancel(booking))
	assert.Equal(t, BookingStatusInUse, booking.Status)

	require.NoError(t, state.Complete(booking))
	assert.Equal(t, BookingStatusCompleted, booking.Status)
}

func TestCompletedStateIsTerminal(t *testing.T) {
	booking := &Booking{Status: BookingStatusCompleted}
	state := GetBookingState(booking.Status)

	assert.Error(t, state.Confirm(booking))
	assert.Error(t, state.CheckIn(booking))
	assert.Error(t, state.Complete(booking))
	assert.Error(t, state.Cancel(booking))
	assert.Equal(t, BookingStatusCompleted, booking.Status)
}

func TestCancelledStateIsTerminal(t *testing.T) {
	booking := &Booking{Status: BookingStatusCancelled}
	state := GetBookingState(booking.Status)

	assert.Error(t, state.Confirm(booking))
	assert.Error(t, state.CheckIn(booking))
	assert.Error(t, state.Complete(booking))
	assert.Error(t, state.Cancel(booking))
	assert.Equal(t, BookingStatusCancelled, booking.Status)
}

func TestGetBookingStateUnknownStatus(t *testing.T) {
	state := GetBookingState(99)
	assert.IsType(t, &PendingState{}, state)
}
