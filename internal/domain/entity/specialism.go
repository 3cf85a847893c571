package entity

// Specialism is a named area of therapeutic expertise, shared by many
// therapists through the therapist_specialisms join table.
type Specialism struct {
	SpecialismID   uint   `gorm:"primaryKey;autoIncrement;column:specialism_id" json:"specialism_id"`
	SpecialismName string `gorm:"type:text;not null" json:"specialism_name"`
}

func (Specialism) TableName() string {
	return "specialisms"
}
