package model

import "time"

// Assessment is the skin questionnaire snapshot embedded in a session.
// It is written once at session creation and never mutated afterwards.
// Every field is optional; the prompt layer substitutes a placeholder
// for anything left blank.
type Assessment struct {
	SkinType               string   `gorm:"size:64" json:"skinType"`
	MainConcern            string   `gorm:"size:64" json:"mainConcern"`
	AdditionalSkinConcerns string   `gorm:"size:255" json:"additionalSkinConcerns"`
	SpecificSkinIssues     []string `gorm:"serializer:json;type:text" json:"specificSkinIssues"`
	CurrentRoutine         string   `gorm:"size:255" json:"currentRoutine"`
	SunscreenUsage         string   `gorm:"size:64" json:"sunscreenUsage"`
	ClimateType            string   `gorm:"size:64" json:"climateType"`
	WorkEnvironment        string   `gorm:"size:64" json:"workEnvironment"`
	ProductUsageFrequency  string   `gorm:"size:64" json:"productUsageFrequency"`
	SkinTextureDescription string   `gorm:"size:255" json:"skinTextureDescription"`
	DietType               string   `gorm:"size:64" json:"dietType"`
	ExerciseFrequency      string   `gorm:"size:64" json:"exerciseFrequency"`
	StressLevel            string   `gorm:"size:64" json:"stressLevel"`
	SunExposure            string   `gorm:"size:64" json:"sunExposure"`
	WaterIntake            string   `gorm:"size:64" json:"waterIntake"`
	AlcoholConsumption     string   `gorm:"size:64" json:"alcoholConsumption"`
}

type Session struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Slug       string     `gorm:"size:16;not null;uniqueIndex" json:"slug"`
	UserID     uint       `gorm:"not null;index" json:"user_id"`
	Assessment Assessment `gorm:"embedded;embeddedPrefix:assessment_" json:"assessment"`
	Attempts   int        `gorm:"not null;default:0" json:"attempts"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
