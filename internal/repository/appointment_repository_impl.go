package repository

import (
	"errors"

	"therapy-booking/internal/domain/entity"
	domainRepo "therapy-booking/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	query := composeAppointmentFilter(db.Model(&entity.Appointment{}), filter)

	var appointments []entity.Appointment
	err := query.
		Preload("Therapist").
		Preload("Therapist.Specialisms").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByNaturalKey(db *gorm.DB, therapistID *uint, startTimeUnixSeconds, durationSeconds int64, appointmentType string) (*entity.Appointment, error) {
	query := db.
		Where("start_time_unix_seconds = ?", startTimeUnixSeconds).
		Where("duration_seconds = ?", durationSeconds).
		Where("type = ?", appointmentType)

	if therapistID == nil {
		query = query.Where("therapist_id IS NULL")
	} else {
		query = query.Where("therapist_id = ?", *therapistID)
	}

	var appointment entity.Appointment
	err := query.First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Therapist").Create(appointment).Error
}
