package domain

import "strings"

// RiskLevel is the three-level classification of a scenario's risk score.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "LOW"
	RiskLevelMedium RiskLevel = "MEDIUM"
	RiskLevelHigh   RiskLevel = "HIGH"
)

func (l RiskLevel) String() string { return string(l) }

func (l RiskLevel) IsValid() bool {
	switch l {
	case RiskLevelLow, RiskLevelMedium, RiskLevelHigh:
		return true
	}
	return false
}

// NormalizeRiskLevel uppercases s and falls back to MEDIUM when the result
// is not a known level.
func NormalizeRiskLevel(s string) RiskLevel {
	l := RiskLevel(strings.ToUpper(strings.TrimSpace(s)))
	if !l.IsValid() {
		return RiskLevelMedium
	}
	return l
}

// ContactMethod is how a guardian is reached.
type ContactMethod string

const (
	ContactMethodSMS   ContactMethod = "sms"
	ContactMethodEmail ContactMethod = "email"
)

func (m ContactMethod) String() string { return string(m) }

func (m ContactMethod) IsValid() bool {
	switch m {
	case ContactMethodSMS, ContactMethodEmail:
		return true
	}
	return false
}

// ContactType selects the template bucket for an emergency script.
type ContactType string

const (
	ContactTypeFriend   ContactType = "friend"
	ContactTypeFamily   ContactType = "family"
	ContactTypeCampus   ContactType = "campus"
	ContactTypeSecurity ContactType = "security"
)

func (c ContactType) String() string { return string(c) }

// NormalizeContactType lowercases s; empty input becomes friend.
// Unknown values are kept as-is and handled by the friend bucket.
func NormalizeContactType(s string) ContactType {
	c := strings.ToLower(strings.TrimSpace(s))
	if c == "" {
		return ContactTypeFriend
	}
	return ContactType(c)
}
