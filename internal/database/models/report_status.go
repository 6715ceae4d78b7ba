package models

import "fmt"

// ReportStatus is the single persisted lifecycle state of a report.
// The hacker-facing and company-facing statuses are projections of it,
// so an inconsistent pair cannot be stored.
type ReportStatus string

const (
	StatusSubmitted   ReportStatus = "submitted"
	StatusUnderReview ReportStatus = "under_review"
	StatusAccepted    ReportStatus = "accepted"
	StatusRejected    ReportStatus = "rejected"
)

// UserStatus is the hacker-facing projection of a report status
type UserStatus string

const (
	UserStatusSubmitted   UserStatus = "SUBMITTED"
	UserStatusUnderReview UserStatus = "UNDER_REVIEW"
	UserStatusAccepted    UserStatus = "ACCEPTED"
	UserStatusRejected    UserStatus = "REJECTED"
)

// CompanyStatus is the company-facing projection of a report status
type CompanyStatus string

const (
	CompanyStatusUnreviewed CompanyStatus = "UNREVIEWED"
	CompanyStatusReviewed   CompanyStatus = "REVIEWED"
	CompanyStatusAssessed   CompanyStatus = "ASSESSED"
)

// ForUser returns the hacker-facing status
func (s ReportStatus) ForUser() UserStatus {
	switch s {
	case StatusSubmitted:
		return UserStatusSubmitted
	case StatusUnderReview:
		return UserStatusUnderReview
	case StatusAccepted:
		return UserStatusAccepted
	case StatusRejected:
		return UserStatusRejected
	}
	return ""
}

// ForCompany returns the company-facing status
func (s ReportStatus) ForCompany() CompanyStatus {
	switch s {
	case StatusSubmitted:
		return CompanyStatusUnreviewed
	case StatusUnderReview:
		return CompanyStatusReviewed
	case StatusAccepted, StatusRejected:
		return CompanyStatusAssessed
	}
	return ""
}

// IsTerminal reports whether no further transition is defined from s
func (s ReportStatus) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// CanTransitionTo reports whether next is a legal successor of s.
// The machine is submitted -> under_review -> accepted | rejected.
func (s ReportStatus) CanTransitionTo(next ReportStatus) bool {
	switch s {
	case StatusSubmitted:
		return next == StatusUnderReview
	case StatusUnderReview:
		return next == StatusAccepted || next == StatusRejected
	}
	return false
}

// ParseUserStatus validates a hacker-axis filter value. The enumeration
// is a closed set; anything outside it is rejected at the boundary.
func ParseUserStatus(value string) (UserStatus, error) {
	switch UserStatus(value) {
	case UserStatusSubmitted, UserStatusUnderReview, UserStatusAccepted, UserStatusRejected:
		return UserStatus(value), nil
	}
	return "", fmt.Errorf("report status for user must be SUBMITTED, UNDER_REVIEW, ACCEPTED or REJECTED, got %q", value)
}

// ParseCompanyStatus validates a company-axis filter value
func ParseCompanyStatus(value string) (CompanyStatus, error) {
	switch CompanyStatus(value) {
	case CompanyStatusUnreviewed, CompanyStatusReviewed, CompanyStatusAssessed:
		return CompanyStatus(value), nil
	}
	return "", fmt.Errorf("report status for company must be UNREVIEWED, REVIEWED or ASSESSED, got %q", value)
}

// StatusesForUser maps a hacker-axis filter to the stored statuses it selects
func StatusesForUser(status UserStatus) []ReportStatus {
	switch status {
	case UserStatusSubmitted:
		return []ReportStatus{StatusSubmitted}
	case UserStatusUnderReview:
		return []ReportStatus{StatusUnderReview}
	case UserStatusAccepted:
		return []ReportStatus{StatusAccepted}
	case UserStatusRejected:
		return []ReportStatus{StatusRejected}
	}
	return nil
}

// StatusesForCompany maps a company-axis filter to the stored statuses it
// selects. ASSESSED covers both terminal outcomes.
func StatusesForCompany(status CompanyStatus) []ReportStatus {
	switch status {
	case CompanyStatusUnreviewed:
		return []ReportStatus{StatusSubmitted}
	case CompanyStatusReviewed:
		return []ReportStatus{StatusUnderReview}
	case CompanyStatusAssessed:
		return []ReportStatus{StatusAccepted, StatusRejected}
	}
	return nil
}
