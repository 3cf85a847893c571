package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"therapy-booking/internal/domain/entity"
	"therapy-booking/internal/domain/repository"
	"therapy-booking/pkg/validator"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CreateAppointmentInput struct {
	TherapistID          *uint
	StartTimeUnixSeconds int64  `validate:"gte=0"`
	DurationSeconds      int64  `validate:"required,gt=0"`
	Type                 string `validate:"required"`
}

type AppointmentUsecase interface {
	// List returns every appointment matching the filter, eagerly
	// materialized. A nil filter returns all appointments in
	// storage-natural order.
	List(ctx context.Context, filter *entity.AppointmentFilter) ([]entity.Appointment, error)

	// Create is idempotent: an appointment with the exact same therapist,
	// start time, duration and type is returned as-is instead of being
	// created again. Changing any one of the four fields creates a new row.
	Create(ctx context.Context, input *CreateAppointmentInput) (*entity.Appointment, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	validator       *validator.CustomValidator
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	customValidator *validator.CustomValidator,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		validator:       customValidator,
	}
}

func (u *appointmentUsecase) List(ctx context.Context, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}
	return appointments, nil
}

func (u *appointmentUsecase) Create(ctx context.Context, input *CreateAppointmentInput) (*entity.Appointment, error) {
	if err := u.validator.Validate(input); err != nil {
		return nil, fmt.Errorf("invalid appointment input: %v", u.validator.FormatValidationErrors(err))
	}

	db := u.db.WithContext(ctx)

	existing, err := u.appointmentRepo.FindByNaturalKey(db, input.TherapistID, input.StartTimeUnixSeconds, input.DurationSeconds, input.Type)
	if err != nil {
		u.log.Warnf("Failed to look up appointment: %+v", err)
		return nil, err
	}
	if existing != nil {
		u.log.Infof("Returned existing appointment %d", existing.AppointmentID)
		return existing, nil
	}

	appointment := &entity.Appointment{
		TherapistID:          input.TherapistID,
		StartTimeUnixSeconds: input.StartTimeUnixSeconds,
		DurationSeconds:      input.DurationSeconds,
		Type:                 input.Type,
	}

	if err := u.appointmentRepo.Create(db, appointment); err != nil {
		// A concurrent identical request can win the insert between our
		// lookup and here; the unique index turns that into a fetch of
		// the winner instead of a duplicate row.
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err, "appointments_natural_key") {
			return u.appointmentRepo.FindByNaturalKey(db, input.TherapistID, input.StartTimeUnixSeconds, input.DurationSeconds, input.Type)
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.log.Infof("Created new appointment %d", appointment.AppointmentID)
	return appointment, nil
}

// isUniqueViolation checks if the error is a PostgreSQL unique violation
// containing the specified constraint name
func isUniqueViolation(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
