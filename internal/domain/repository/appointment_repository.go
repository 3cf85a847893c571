package repository

import (
	"therapy-booking/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	// FindAll returns every appointment matching the filter, eagerly loaded
	// with its therapist and the therapist's specialisms. A nil filter
	// returns every appointment in storage-natural order.
	FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error)

	// FindByNaturalKey looks up an appointment by the exact
	// (therapist, start time, duration, type) tuple. A nil therapistID
	// matches only rows with no assigned therapist. Returns nil when no
	// row matches.
	FindByNaturalKey(db *gorm.DB, therapistID *uint, startTimeUnixSeconds, durationSeconds int64, appointmentType string) (*entity.Appointment, error)

	Create(db *gorm.DB, appointment *entity.Appointment) error
}
