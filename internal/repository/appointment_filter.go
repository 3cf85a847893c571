package repository

import (
	"therapy-booking/internal/domain/entity"

	"gorm.io/gorm"
)

// composeAppointmentFilter translates a domain filter into predicates on the
// base query. It never executes the query; the caller gets back a new
// composed *gorm.DB. All dimensions combine with AND.
func composeAppointmentFilter(query *gorm.DB, filter *entity.AppointmentFilter) *gorm.DB {
	if filter.IsZero() {
		return query
	}

	query = applyInt64Predicate(query, "appointments.start_time_unix_seconds", filter.StartTimeUnixSeconds)
	query = applyInt64Predicate(query, "appointments.duration_seconds", filter.DurationSeconds)
	query = applyStringPredicate(query, "appointments.type", filter.Type)
	query = applyInt64Predicate(query, "appointments.therapist_id", filter.TherapistID)

	if filter.HasSpecialisms != nil {
		query = applySpecialismFilter(query, *filter.HasSpecialisms)
	}

	return query
}

// applySpecialismFilter matches appointments whose therapist has at least one
// specialism named in the list.
//
// The therapist and specialism tables are joined under explicit aliases
// (member_of, specialism_of) so the predicate can traverse
// appointments -> therapists -> specialisms without colliding with any other
// join against the same tables in the composed query. The join fans out to
// one row per matching specialism, hence the DISTINCT on appointment columns.
func applySpecialismFilter(query *gorm.DB, names []string) *gorm.DB {
	if len(names) == 0 {
		// any-of over an empty set is false
		return query.Where("1 = 0")
	}

	return query.
		Joins("JOIN therapists member_of ON member_of.therapist_id = appointments.therapist_id").
		Joins("JOIN therapist_specialisms member_specialisms ON member_specialisms.therapist_id = member_of.therapist_id").
		Joins("JOIN specialisms specialism_of ON specialism_of.specialism_id = member_specialisms.specialism_id").
		Where("specialism_of.specialism_name IN ?", names).
		Distinct("appointments.*")
}

func applyInt64Predicate(query *gorm.DB, column string, p *entity.Int64Predicate) *gorm.DB {
	if p == nil {
		return query
	}
	if p.Eq != nil {
		query = query.Where(column+" = ?", *p.Eq)
	}
	if p.Ne != nil {
		query = query.Where(column+" <> ?", *p.Ne)
	}
	if p.In != nil {
		query = query.Where(column+" IN ?", p.In)
	}
	if p.NotIn != nil {
		query = query.Where(column+" NOT IN ?", p.NotIn)
	}
	if p.Lt != nil {
		query = query.Where(column+" < ?", *p.Lt)
	}
	if p.Lte != nil {
		query = query.Where(column+" <= ?", *p.Lte)
	}
	if p.Gt != nil {
		query = query.Where(column+" > ?", *p.Gt)
	}
	if p.Gte != nil {
		query = query.Where(column+" >= ?", *p.Gte)
	}
	if p.Range != nil {
		// inclusive at both ends; an inverted range matches nothing
		query = query.Where(column+" >= ? AND "+column+" <= ?", p.Range.Begin, p.Range.End)
	}
	if p.IsNull != nil {
		if *p.IsNull {
			query = query.Where(column + " IS NULL")
		} else {
			query = query.Where(column + " IS NOT NULL")
		}
	}
	return query
}

func applyStringPredicate(query *gorm.DB, column string, p *entity.StringPredicate) *gorm.DB {
	if p == nil {
		return query
	}
	if p.Eq != nil {
		query = query.Where(column+" = ?", *p.Eq)
	}
	if p.Ne != nil {
		query = query.Where(column+" <> ?", *p.Ne)
	}
	if p.In != nil {
		query = query.Where(column+" IN ?", p.In)
	}
	if p.NotIn != nil {
		query = query.Where(column+" NOT IN ?", p.NotIn)
	}
	if p.Like != nil {
		query = query.Where(column+" LIKE ?", *p.Like)
	}
	if p.ILike != nil {
		query = query.Where(column+" ILIKE ?", *p.ILike)
	}
	if p.IsNull != nil {
		if *p.IsNull {
			query = query.Where(column + " IS NULL")
		} else {
			query = query.Where(column + " IS NOT NULL")
		}
	}
	return query
}
