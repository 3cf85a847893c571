package graph

import (
	"context"
	"strconv"

	"therapy-booking/internal/domain/entity"
	"therapy-booking/internal/usecase"

	"github.com/graph-gophers/graphql-go"
	"github.com/sirupsen/logrus"
)

// Resolver is the root resolver for queries and mutations.
type Resolver struct {
	appointmentUsecase usecase.AppointmentUsecase
	authUsecase        usecase.AuthUsecase
	gate               *TokenGate
	log                *logrus.Logger
}

func NewResolver(
	appointmentUsecase usecase.AppointmentUsecase,
	authUsecase usecase.AuthUsecase,
	gate *TokenGate,
	log *logrus.Logger,
) *Resolver {
	return &Resolver{
		appointmentUsecase: appointmentUsecase,
		authUsecase:        authUsecase,
		gate:               gate,
		log:                log,
	}
}

// Int64RangeInput is a closed range, inclusive at both ends.
type Int64RangeInput struct {
	Begin Int64
	End   Int64
}

// AppointmentsFilterInput mirrors the AppointmentsFilter input type. Absent
// means "no filtering" for each key and for the filter as a whole.
type AppointmentsFilterInput struct {
	Type                      *string
	TypeIn                    *[]string
	StartTimeUnixSecondsRange *Int64RangeInput
	HasSpecialisms            *[]string
}

func (in *AppointmentsFilterInput) toDomain() *entity.AppointmentFilter {
	if in == nil {
		return nil
	}

	filter := &entity.AppointmentFilter{}

	if in.Type != nil || in.TypeIn != nil {
		predicate := &entity.StringPredicate{Eq: in.Type}
		if in.TypeIn != nil {
			predicate.In = *in.TypeIn
		}
		filter.Type = predicate
	}

	if in.StartTimeUnixSecondsRange != nil {
		filter.StartTimeUnixSeconds = &entity.Int64Predicate{
			Range: &entity.Int64Range{
				Begin: int64(in.StartTimeUnixSecondsRange.Begin),
				End:   int64(in.StartTimeUnixSecondsRange.End),
			},
		}
	}

	filter.HasSpecialisms = in.HasSpecialisms

	return filter
}

// Appointments resolves the protected appointments query.
func (r *Resolver) Appointments(ctx context.Context, args struct {
	Filter *AppointmentsFilterInput
}) ([]*AppointmentResolver, error) {
	ctx, err := Protect(ctx, r.gate.RequireAccessToken)
	if err != nil {
		return nil, err
	}

	r.log.Debug("Resolving appointments query")

	appointments, err := r.appointmentUsecase.List(ctx, args.Filter.toDomain())
	if err != nil {
		return nil, err
	}

	resolvers := make([]*AppointmentResolver, 0, len(appointments))
	for i := range appointments {
		resolvers = append(resolvers, &AppointmentResolver{appointment: &appointments[i]})
	}
	return resolvers, nil
}

// Auth resolves the login mutation. Unprotected: it is the entry point that
// establishes a session.
func (r *Resolver) Auth(ctx context.Context, args struct {
	Username string
	Password string
}) (*AuthPayloadResolver, error) {
	pair, err := r.authUsecase.Login(ctx, args.Username, args.Password)
	if err != nil {
		return nil, err
	}
	return &AuthPayloadResolver{pair: pair}, nil
}

// Refresh resolves the token refresh mutation. Unprotected for the same
// reason as Auth.
func (r *Resolver) Refresh(ctx context.Context, args struct {
	RefreshToken string
}) (*RefreshPayloadResolver, error) {
	newToken, err := r.authUsecase.Refresh(ctx, args.RefreshToken)
	if err != nil {
		return nil, err
	}
	return &RefreshPayloadResolver{newToken: newToken}, nil
}

// Appointment resolves the idempotent create-or-return mutation.
func (r *Resolver) Appointment(ctx context.Context, args struct {
	TherapistID          *int32
	StartTimeUnixSeconds Int64
	DurationSeconds      Int64
	Type                 string
}) (*AppointmentResolver, error) {
	ctx, err := Protect(ctx, r.gate.RequireAccessToken)
	if err != nil {
		return nil, err
	}

	var therapistID *uint
	if args.TherapistID != nil {
		id := uint(*args.TherapistID)
		therapistID = &id
	}

	appointment, err := r.appointmentUsecase.Create(ctx, &usecase.CreateAppointmentInput{
		TherapistID:          therapistID,
		StartTimeUnixSeconds: int64(args.StartTimeUnixSeconds),
		DurationSeconds:      int64(args.DurationSeconds),
		Type:                 args.Type,
	})
	if err != nil {
		return nil, err
	}
	return &AppointmentResolver{appointment: appointment}, nil
}

type AppointmentResolver struct {
	appointment *entity.Appointment
}

func (r *AppointmentResolver) AppointmentID() graphql.ID {
	return graphql.ID(strconv.FormatUint(uint64(r.appointment.AppointmentID), 10))
}

func (r *AppointmentResolver) StartTimeUnixSeconds() Int64 {
	return Int64(r.appointment.StartTimeUnixSeconds)
}

func (r *AppointmentResolver) DurationSeconds() Int64 {
	return Int64(r.appointment.DurationSeconds)
}

func (r *AppointmentResolver) Type() string {
	return r.appointment.Type
}

func (r *AppointmentResolver) Therapist() *TherapistResolver {
	if r.appointment.Therapist == nil {
		return nil
	}
	return &TherapistResolver{therapist: r.appointment.Therapist}
}

type TherapistResolver struct {
	therapist *entity.Therapist
}

func (r *TherapistResolver) TherapistID() graphql.ID {
	return graphql.ID(strconv.FormatUint(uint64(r.therapist.TherapistID), 10))
}

func (r *TherapistResolver) FirstName() string {
	return r.therapist.FirstName
}

func (r *TherapistResolver) LastName() string {
	return r.therapist.LastName
}

func (r *TherapistResolver) Specialisms() []*SpecialismResolver {
	resolvers := make([]*SpecialismResolver, 0, len(r.therapist.Specialisms))
	for i := range r.therapist.Specialisms {
		resolvers = append(resolvers, &SpecialismResolver{specialism: &r.therapist.Specialisms[i]})
	}
	return resolvers
}

type SpecialismResolver struct {
	specialism *entity.Specialism
}

func (r *SpecialismResolver) SpecialismID() graphql.ID {
	return graphql.ID(strconv.FormatUint(uint64(r.specialism.SpecialismID), 10))
}

func (r *SpecialismResolver) SpecialismName() string {
	return r.specialism.SpecialismName
}

type AuthPayloadResolver struct {
	pair *usecase.TokenPair
}

func (r *AuthPayloadResolver) AccessToken() string {
	return r.pair.AccessToken
}

func (r *AuthPayloadResolver) RefreshToken() string {
	return r.pair.RefreshToken
}

type RefreshPayloadResolver struct {
	newToken string
}

func (r *RefreshPayloadResolver) NewToken() string {
	return r.newToken
}
