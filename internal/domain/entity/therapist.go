package entity

// Therapist is seed/admin data; there is no mutation path for therapists.
type Therapist struct {
	TherapistID uint   `gorm:"primaryKey;autoIncrement;column:therapist_id" json:"therapist_id"`
	FirstName   string `gorm:"type:text;not null" json:"first_name"`
	LastName    string `gorm:"type:text;not null" json:"last_name"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:TherapistID;references:TherapistID" json:"appointments,omitempty"`
	Specialisms  []Specialism  `gorm:"many2many:therapist_specialisms;foreignKey:TherapistID;joinForeignKey:TherapistID;references:SpecialismID;joinReferences:SpecialismID" json:"specialisms,omitempty"`
}

func (Therapist) TableName() string {
	return "therapists"
}
