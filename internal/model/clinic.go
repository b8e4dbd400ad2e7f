package model

import "time"

// ClinicHours is a Google-style display entry, e.g.
// {Day: "Friday", Label: "Open 24 hours"} or {Day: "Monday", Label: "6am - 5pm"}.
type ClinicHours struct {
	Day   string `json:"day"`
	Label string `json:"label"`
}

type ClinicDoctor struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Phone     string `json:"phone"`
}

type Clinic struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:128;not null" json:"name"`
	Rating    float64        `gorm:"not null;default:0" json:"rating"`
	Address   string         `gorm:"size:255" json:"address"`
	Phone     string         `gorm:"size:32" json:"phone"`
	Lat       float64        `json:"lat"`
	Lng       float64        `json:"lng"`
	Hours     []ClinicHours  `gorm:"serializer:json;type:text" json:"hours"`
	Doctors   []ClinicDoctor `gorm:"serializer:json;type:text" json:"doctors"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
