package domain

import "time"

// Preset is a named, reusable simulation input curated by a planner.
type Preset struct {
	ID                 string          `json:"id" yaml:"id"`
	Slug               string          `json:"slug" yaml:"slug" validate:"required,min=3"`
	Title              string          `json:"title" yaml:"title" validate:"required,min=4"`
	Description        string          `json:"description" yaml:"description" validate:"required,min=4"`
	Input              SimulationInput `json:"input" yaml:"input"`
	CertifiedBy        string          `json:"certifiedBy,omitempty" yaml:"certified_by,omitempty"`
	CertificationLevel string          `json:"certificationLevel,omitempty" yaml:"certification_level,omitempty"`
	Badge              string          `json:"badge,omitempty" yaml:"badge,omitempty" validate:"omitempty,oneof=cfp cpa20 partner-specialist"`
	CreatedAt          time.Time       `json:"createdAt" yaml:"created_at"`
}
