package service

import (
	"strings"

	apperrors "bugbounty-platform-backend/internal/errors"
)

// cvssBaseMetrics are the eight mandatory base metrics of a CVSS v3
// vector and the values each one admits
var cvssBaseMetrics = map[string][]string{
	"AV": {"N", "A", "L", "P"},
	"AC": {"L", "H"},
	"PR": {"N", "L", "H"},
	"UI": {"N", "R"},
	"S":  {"U", "C"},
	"C":  {"N", "L", "H"},
	"I":  {"N", "L", "H"},
	"A":  {"N", "L", "H"},
}

// ValidateCVSSVector checks that a vector string is a well-formed CVSS
// v3.0 or v3.1 base vector. The check is syntactic: the stored score is
// supplied by the submitter, not recomputed.
func ValidateCVSSVector(vector string) error {
	rest, ok := strings.CutPrefix(vector, "CVSS:3.1/")
	if !ok {
		rest, ok = strings.CutPrefix(vector, "CVSS:3.0/")
	}
	if !ok {
		return apperrors.NewValidationError("vector", "must start with CVSS:3.0/ or CVSS:3.1/")
	}

	seen := make(map[string]bool, len(cvssBaseMetrics))
	for _, part := range strings.Split(rest, "/") {
		metric, value, found := strings.Cut(part, ":")
		if !found || metric == "" || value == "" {
			return apperrors.NewValidationError("vector", "malformed metric "+part)
		}
		allowed, known := cvssBaseMetrics[metric]
		if !known {
			// Temporal and environmental metrics are accepted untyped
			continue
		}
		if seen[metric] {
			return apperrors.NewValidationError("vector", "duplicate metric "+metric)
		}
		seen[metric] = true
		valid := false
		for _, v := range allowed {
			if value == v {
				valid = true
				break
			}
		}
		if !valid {
			return apperrors.NewValidationError("vector", "invalid value "+value+" for metric "+metric)
		}
	}

	for metric := range cvssBaseMetrics {
		if !seen[metric] {
			return apperrors.NewValidationError("vector", "missing base metric "+metric)
		}
	}
	return nil
}
