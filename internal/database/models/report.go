package models

import (
	"github.com/google/uuid"
)

// Report is a hacker's vulnerability submission against a program. The
// owning user and program are set at creation and never change. Variant
// payloads live in child tables keyed by the report id; Kind says which
// one is populated.
type Report struct {
	BaseModel
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ProgramID uuid.UUID `json:"program_id" gorm:"type:uuid;not null;index" validate:"required"`
	Program   *Program  `json:"program,omitempty" gorm:"foreignKey:ProgramID"`

	Kind   ReportKind   `json:"kind" gorm:"size:10;not null" validate:"required"`
	Status ReportStatus `json:"status" gorm:"size:20;not null;index"`

	Title string `json:"title" gorm:"size:200;not null" validate:"required,max=200"`

	// Room scopes real-time collaboration messages to this report
	Room string `json:"room" gorm:"size:40;not null"`

	Manual *ReportManualDetails `json:"manual,omitempty" gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE"`
	CVSS   *ReportCVSSDetails   `json:"cvss,omitempty" gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE"`

	Attachments []ReportAttachment `json:"attachments,omitempty" gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Report
func (Report) TableName() string {
	return "reports"
}

// StatusForUser is the hacker-facing status projection
func (r *Report) StatusForUser() UserStatus {
	return r.Status.ForUser()
}

// StatusForCompany is the company-facing status projection
func (r *Report) StatusForCompany() CompanyStatus {
	return r.Status.ForCompany()
}

// ReportManualDetails carries the free-text narrative of a manual report
type ReportManualDetails struct {
	BaseModel
	ReportID  uuid.UUID `json:"report_id" gorm:"type:uuid;not null;uniqueIndex"`
	Narrative string    `json:"narrative" gorm:"type:text;not null" validate:"required"`
}

// TableName returns the table name for ReportManualDetails
func (ReportManualDetails) TableName() string {
	return "report_manual_details"
}

// ReportCVSSDetails carries the CVSS vector and score of a scored report
type ReportCVSSDetails struct {
	BaseModel
	ReportID uuid.UUID `json:"report_id" gorm:"type:uuid;not null;uniqueIndex"`
	Vector   string    `json:"vector" gorm:"size:200;not null" validate:"required"`
	Score    float64   `json:"score" gorm:"not null" validate:"gte=0,lte=10"`
}

// TableName returns the table name for ReportCVSSDetails
func (ReportCVSSDetails) TableName() string {
	return "report_cvss_details"
}

// ReportAttachment binds one stored media blob to its report. The blob
// itself is kept here; there is no hard link into an external store.
type ReportAttachment struct {
	BaseModel
	ReportID    uuid.UUID `json:"report_id" gorm:"type:uuid;not null;index"`
	FileName    string    `json:"file_name" gorm:"size:200;not null"`
	ContentType string    `json:"content_type" gorm:"size:100"`
	Data        []byte    `json:"-" gorm:"type:bytea"`
}

// TableName returns the table name for ReportAttachment
func (ReportAttachment) TableName() string {
	return "report_attachments"
}
