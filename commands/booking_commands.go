package commands

import (
	"hotel/models"

	"gorm.io/gorm"
)

// BookingCommand định nghĩa interface cho các command
type BookingCommand interface {
	Execute() error
}

// CreateBookingCommand command để tạo booking mới
type CreateBookingCommand struct {
	booking *models.Booking
	db      *gorm.DB
}

func NewCreateBookingCommand(booking *models.Booking, db *gorm.DB) *CreateBookingCommand {
	return &CreateBookingCommand{
		booking: booking,
		db:      db,
	}
}

func (c *CreateBookingCommand) Execute() error {
	return c.db.Create(c.booking).Error
}

// UpdateBookingCommand command để cập nhật booking
type UpdateBookingCommand struct {
	booking *models.Booking
	db      *gorm.DB
}

func NewUpdateBookingCommand(booking *models.Booking, db *gorm.DB) *UpdateBookingCommand {
	return &UpdateBookingCommand{
		booking: booking,
		db:      db,
	}
}

func (c *UpdateBookingCommand) Execute() error {
	return c.db.Save(c.booking).Error
}

// DeleteBookingCommand command để xóa booking
type DeleteBookingCommand struct {
	bookingID uint
	db        *gorm.DB
}

func NewDeleteBookingCommand(bookingID uint, db *gorm.DB) *DeleteBookingCommand {
	return &DeleteBookingCommand{
		bookingID: bookingID,
		db:        db,
	}
}

func (c *DeleteBookingCommand) Execute() error {
	return c.db.Delete(&models.Booking{}, c.bookingID).Error
}
