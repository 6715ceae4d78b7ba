package models

// ReportKind distinguishes the two report variants
type ReportKind string

const (
	ReportKindManual ReportKind = "manual"
	ReportKindCVSS   ReportKind = "cvss"
)

// SeverityLevel identifies one of the four payout tiers of a program
type SeverityLevel string

const (
	SeverityLow      SeverityLevel = "low"
	SeverityMedium   SeverityLevel = "medium"
	SeverityHigh     SeverityLevel = "high"
	SeverityCritical SeverityLevel = "critical"
)

// SeverityLevels lists all tiers in ascending order
var SeverityLevels = []SeverityLevel{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

// IsValid reports whether the level is one of the four known tiers
func (l SeverityLevel) IsValid() bool {
	switch l {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}
