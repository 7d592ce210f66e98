package models

import "errors"

// BookingState định nghĩa interface cho các trạng thái booking
type BookingState interface {
	Confirm(booking *Booking) error
	CheckIn(booking *Booking) error
	Complete(booking *Booking) error
	Cancel(booking *Booking) error
}

// PendingState trạng thái chờ xác nhận
type PendingState struct{}

func (s *PendingState) Confirm(booking *Booking) error {
	booking.Status = BookingStatusConfirmed
	return nil
}

func (s *PendingState) CheckIn(booking *Booking) error {
	return errors.New("cannot check in pending booking")
}

func (s *PendingState) Complete(booking *Booking) error {
	return errors.New("cannot complete pending booking")
}

func (s *PendingState) Cancel(booking *Booking) error {
	booking.Status = BookingStatusCancelled
	return nil
}

// ConfirmedState trạng thái đã xác nhận
type ConfirmedState struct{}

func (s *ConfirmedState) Confirm(booking *Booking) error {
	return errors.New("booking already confirmed")
}

func (s *ConfirmedState) CheckIn(booking *Booking) error {
	booking.Status = BookingStatusInUse
	return nil
}

func (s *ConfirmedState) Complete(booking *Booking) error {
	booking.Status = BookingStatusCompleted
	return nil
}

func (s *ConfirmedState) Cancel(booking *Booking) error {
	booking.Status = BookingStatusCancelled
	return nil
}

// InUseState trạng thái khách đang ở
type InUseState struct{}

func (s *InUseState) Confirm(booking *Booking) error {
	return errors.New("booking already in use")
}

func (s *InUseState) CheckIn(booking *Booking) error {
	return errors.New("booking already in use")
}

func (s *InUseState) Complete(booking *Booking) error {
	booking.Status = BookingStatusCompleted
	return nil
}

func (s *InUseState) Cancel(booking *Booking) error {
	return errors.New("cannot cancel booking in use")
}

// CompletedState trạng thái hoàn thành, không chuyển tiếp được nữa
type CompletedState struct{}

func (s *CompletedState) Confirm(booking *Booking) error {
	return errors.New("booking already completed")
}

func (s *CompletedState) CheckIn(booking *Booking) error {
	return errors.New("booking already completed")
}

func (s *CompletedState) Complete(booking *Booking) error {
	return errors.New("booking already completed")
}

func (s *CompletedState) Cancel(booking *Booking) error {
	return errors.New("cannot cancel completed booking")
}

// CancelledState trạng thái đã hủy
type CancelledState struct{}

func (s *CancelledState) Confirm(booking *Booking) error {
	return errors.New("cannot confirm cancelled booking")
}

func (s *CancelledState) CheckIn(booking *Booking) error {
	return errors.New("cannot check in cancelled booking")
}

func (s *CancelledState) Complete(booking *Booking) error {
	return errors.New("cannot complete cancelled booking")
}

func (s *CancelledState) Cancel(booking *Booking) error {
	return errors.New("booking already cancelled")
}

// GetBookingState trả về state tương ứng với trạng thái booking
func GetBookingState(status int) BookingState {
	switch status {
	case BookingStatusPending:
		return &PendingState{}
	case BookingStatusConfirmed:
		return &ConfirmedState{}
	case BookingStatusInUse:
		return &InUseState{}
	case BookingStatusCompleted:
		return &CompletedState{}
	case BookingStatusCancelled:
		return &CancelledState{}
	default:
		return &PendingState{}
	}
}
