package message

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/safewalk-backend/internal/domain"
)

var recommendedActions = map[domain.RiskLevel][]string{
	domain.RiskLevelHigh: {
		"Call emergency services if you are in immediate danger",
		"Send these messages to your guardians now",
		"Move toward a well-lit, populated area",
		"Keep your phone charged and the ringer on",
	},
	domain.RiskLevelMedium: {
		"Send these messages to your guardians",
		"Stay on main streets with other people around",
		"Check in again when you arrive",
	},
	domain.RiskLevelLow: {
		"Send a quick check-in to your guardians",
		"Let them know when you arrive",
	},
}

// ShareLink returns the map URL for a coordinate.
func ShareLink(lat, lng float64) string {
	return fmt.Sprintf("https://maps.google.com/?q=%.6f,%.6f", lat, lng)
}

// actionsFor returns the recommended actions for level. An empty level counts
// as MEDIUM; any other unrecognised level gets the short list.
func actionsFor(level domain.RiskLevel) []string {
	if level == "" {
		level = domain.RiskLevelMedium
	}
	actions, ok := recommendedActions[level]
	if !ok {
		actions = recommendedActions[domain.RiskLevelLow]
	}
	return append([]string(nil), actions...)
}

// BuildPackage renders one message per guardian around a shared map link.
// Callers must ensure guardians is non-empty and loc has coordinates.
func BuildPackage(level domain.RiskLevel, note string, guardians []domain.Guardian, loc domain.Location) domain.EmergencyPackage {
	level = domain.RiskLevel(strings.ToUpper(strings.TrimSpace(string(level))))
	note = strings.TrimSpace(note)

	link := ""
	if loc.HasCoordinates() {
		link = ShareLink(*loc.Lat, *loc.Lng)
	}

	messages := make([]domain.GuardianMessage, 0, len(guardians))
	for _, g := range guardians {
		var text string
		if g.Method == domain.ContactMethodEmail {
			text = emailText(level, g.Name, note, link)
		} else {
			text = smsText(level, note, link)
		}
		messages = append(messages, domain.GuardianMessage{
			GuardianID: g.ID,
			Method:     g.Method,
			To:         g.Value,
			Text:       text,
			ShareLink:  link,
		})
	}

	return domain.EmergencyPackage{
		ShareLink:          link,
		Messages:           messages,
		RecommendedActions: actionsFor(level),
	}
}

func smsText(level domain.RiskLevel, note, link string) string {
	var b strings.Builder
	if level == domain.RiskLevelHigh {
		b.WriteString("URGENT: I need help. Please call me now. My location: ")
	} else {
		b.WriteString("Checking in: I'm on my way and wanted you to know where I am. My location: ")
	}
	b.WriteString(link)
	if note != "" {
		b.WriteString(" Note: ")
		b.WriteString(note)
	}
	return b.String()
}

func emailText(level domain.RiskLevel, name, note, link string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", name)
	if level == domain.RiskLevelHigh {
		b.WriteString("I need help right now. Please call me as soon as you see this, and contact emergency services if you can't reach me.\n\n")
	} else {
		b.WriteString("Just checking in while I'm on my way. No action needed unless you don't hear from me soon.\n\n")
	}
	fmt.Fprintf(&b, "My current location: %s\n", link)
	if note != "" {
		fmt.Fprintf(&b, "\nNote: %s\n", note)
	}
	b.WriteString("\nThank you.")
	return b.String()
}
