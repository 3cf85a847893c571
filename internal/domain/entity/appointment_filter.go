package entity

// AppointmentFilter is a domain-level filter for querying appointments.
// Used by the repository layer to avoid coupling with delivery inputs.
//
// Each field holds an optional set of operators for one column; all supplied
// operators across all fields combine with logical AND. A nil filter (or a
// filter with every field nil) leaves the base query untouched.
type AppointmentFilter struct {
	StartTimeUnixSeconds *Int64Predicate
	DurationSeconds      *Int64Predicate
	Type                 *StringPredicate
	TherapistID          *Int64Predicate

	// HasSpecialisms matches appointments whose therapist has at least one
	// specialism named in the list (any-of, not all-of). An empty list
	// matches nothing.
	HasSpecialisms *[]string
}

// Int64Range is a closed range, inclusive at both ends. A range with
// Begin > End matches nothing.
type Int64Range struct {
	Begin int64
	End   int64
}

// Int64Predicate is the operator set available on integer columns.
type Int64Predicate struct {
	Eq     *int64
	Ne     *int64
	In     []int64
	NotIn  []int64
	Lt     *int64
	Lte    *int64
	Gt     *int64
	Gte    *int64
	Range  *Int64Range
	IsNull *bool
}

// StringPredicate is the operator set available on text columns.
type StringPredicate struct {
	Eq     *string
	Ne     *string
	In     []string
	NotIn  []string
	Like   *string
	ILike  *string
	IsNull *bool
}

// IsZero reports whether the filter constrains nothing.
func (f *AppointmentFilter) IsZero() bool {
	if f == nil {
		return true
	}
	return f.StartTimeUnixSeconds == nil &&
		f.DurationSeconds == nil &&
		f.Type == nil &&
		f.TherapistID == nil &&
		f.HasSpecialisms == nil
}
