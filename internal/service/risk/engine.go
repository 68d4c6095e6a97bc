package risk

import (
	"fmt"

	"github.com/heartmarshall/safewalk-backend/internal/domain"
)

// Score weights. Neighborhood and lighting categories are disjoint, so at
// most one bonus of each kind applies.
const (
	weightNight         = 25
	weightAlone         = 25
	weightIndustrial    = 20
	weightDowntown      = 10
	weightPoorLighting  = 20
	weightMixedLighting = 10
	thresholdHigh       = 70
	thresholdMedium     = 40
	maxScore            = 100
)

type guidance struct {
	guardianMessage string
	saferAction     string
}

var guidanceByLevel = map[domain.RiskLevel]guidance{
	domain.RiskLevelLow: {
		guardianMessage: "All good so far. I'm on a familiar route and will check in when I arrive.",
		saferAction:     "Keep to your usual route and share your ETA with a trusted contact.",
	},
	domain.RiskLevelMedium: {
		guardianMessage: "Heading home now and feeling a little uneasy. Can you keep an eye on your phone for the next 20 minutes?",
		saferAction:     "Stick to main streets with more people around and share your live location.",
	},
	domain.RiskLevelHigh: {
		guardianMessage: "I don't feel safe on this walk. Please call me now and stay on the line until I'm somewhere safe.",
		saferAction:     "Avoid the unlit route: wait somewhere busy or take a ride, and call a trusted contact now.",
	},
}

// Score returns the clamped additive score for s.
func Score(s domain.Scenario) int {
	score := 0
	if s.TimeOfDay == "night" {
		score += weightNight
	}
	if s.UserAlone {
		score += weightAlone
	}
	switch s.NeighborhoodType {
	case "industrial":
		score += weightIndustrial
	case "downtown":
		score += weightDowntown
	}
	switch s.RouteLighting {
	case "poor":
		score += weightPoorLighting
	case "mixed":
		score += weightMixedLighting
	}
	return min(max(score, 0), maxScore)
}

// Classify maps a score to a level: >=70 HIGH, >=40 MEDIUM, else LOW.
func Classify(score int) domain.RiskLevel {
	switch {
	case score >= thresholdHigh:
		return domain.RiskLevelHigh
	case score >= thresholdMedium:
		return domain.RiskLevelMedium
	default:
		return domain.RiskLevelLow
	}
}

// Assess scores and classifies s. It has no side effects.
func Assess(s domain.Scenario) domain.Assessment {
	score := Score(s)
	level := Classify(score)
	g := guidanceByLevel[level]

	return domain.Assessment{
		ScenarioID: s.ScenarioID,
		RiskScore:  score,
		RiskLevel:  level,
		Reasoning: fmt.Sprintf("timeOfDay=%s, userAlone=%t, neighborhoodType=%s, routeLighting=%s",
			s.TimeOfDay, s.UserAlone, s.NeighborhoodType, s.RouteLighting),
		GuardianMessage: g.guardianMessage,
		SaferAction:     g.saferAction,
	}
}
