package models

import (
	"time"

	"github.com/google/uuid"
)

// Program is a company's bug-bounty scope definition. A program owns its
// asset aggregate, its prohibited-action list and the reports submitted
// against it; all of them are removed with the program.
type Program struct {
	BaseModel
	CompanyID uuid.UUID `json:"company_id" gorm:"type:uuid;not null;index" validate:"required"`
	Company   *Company  `json:"company,omitempty" gorm:"foreignKey:CompanyID"`

	FromDate time.Time `json:"from_date" gorm:"type:date;not null" validate:"required"`
	ToDate   time.Time `json:"to_date" gorm:"type:date;not null" validate:"required"`
	Policy   string    `json:"policy" gorm:"type:text;not null" validate:"required"`
	Notes    string    `json:"notes" gorm:"type:text"`

	InScope    []string `json:"in_scope" gorm:"type:jsonb;serializer:json"`
	OutOfScope []string `json:"out_of_scope" gorm:"type:jsonb;serializer:json"`

	// Relationships
	Prohibits []ProhibitedAction `json:"prohibits,omitempty" gorm:"foreignKey:ProgramID;constraint:OnDelete:CASCADE"`
	Asset     *ProgramAsset      `json:"asset,omitempty" gorm:"foreignKey:ProgramID;constraint:OnDelete:CASCADE"`
	Reports   []Report           `json:"reports,omitempty" gorm:"foreignKey:ProgramID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Program
func (Program) TableName() string {
	return "programs"
}

// ProhibitedAction is a single entry of a program's prohibited-action list
type ProhibitedAction struct {
	BaseModel
	ProgramID uuid.UUID `json:"program_id" gorm:"type:uuid;not null;index"`
	Rule      string    `json:"rule" gorm:"size:300;not null" validate:"required,max=300"`
}

// TableName returns the table name for ProhibitedAction
func (ProhibitedAction) TableName() string {
	return "prohibited_actions"
}
