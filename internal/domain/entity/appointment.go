package entity

// Appointment is a bookable therapy session. The therapist reference is
// nullable: an appointment may exist before a therapist is assigned.
//
// The tuple (therapist_id, start_time_unix_seconds, duration_seconds, type)
// is the natural key for idempotent creation; the migration backs it with a
// unique index.
type Appointment struct {
	AppointmentID        uint   `gorm:"primaryKey;autoIncrement;column:appointment_id" json:"appointment_id"`
	StartTimeUnixSeconds int64  `gorm:"not null;index" json:"start_time_unix_seconds"`
	DurationSeconds      int64  `gorm:"not null" json:"duration_seconds"`
	Type                 string `gorm:"type:text;not null" json:"type"`
	TherapistID          *uint  `gorm:"index" json:"therapist_id,omitempty"`

	// Relationships
	Therapist *Therapist `gorm:"foreignKey:TherapistID;references:TherapistID" json:"therapist,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}
