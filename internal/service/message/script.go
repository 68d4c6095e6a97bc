package message

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/safewalk-backend/internal/domain"
)

type bucket int

const (
	bucketFriend bucket = iota
	bucketFamily
	bucketSecurity
)

func bucketFor(c domain.ContactType) bucket {
	switch c {
	case domain.ContactTypeCampus, domain.ContactTypeSecurity:
		return bucketSecurity
	case domain.ContactTypeFamily:
		return bucketFamily
	default:
		return bucketFriend
	}
}

// variant is a title plus a text format taking the near clause and the
// context clause, in that order.
type variant struct {
	title string
	text  string
}

type bucketTemplates struct {
	high       variant
	medium     variant
	low        variant
	firstCheck string
	followups  [3]string
}

var templates = map[bucket]bucketTemplates{
	bucketSecurity: {
		high: variant{
			title: "Urgent request to security",
			text:  "This is an urgent safety request. I feel unsafe%s and need a security escort or officer to come to me now%s.",
		},
		medium: variant{
			title: "Safety escort request",
			text:  "Hi, I'd like to request a safety escort%s. I'm not in immediate danger but would feel safer with someone walking with me%s.",
		},
		firstCheck: "Call security directly if you can't send a message",
		followups: [3]string{
			"Ask for an estimated arrival time",
			"Describe what you are wearing so they can find you",
			"Ask them to stay on the phone until they arrive",
		},
	},
	bucketFamily: {
		high: variant{
			title: "Urgent message to family",
			text:  "I need help right now. I feel unsafe%s. Please call me immediately and stay on the line%s.",
		},
		medium: variant{
			title: "Check-in with family",
			text:  "Hi, I'm heading home and feel a little uneasy%s. Can you stay on the phone with me until I get there%s?",
		},
		firstCheck: "Tell your family member exactly where you are",
		followups: [3]string{
			"Ask them to call you back in 5 minutes",
			"Share your route and expected arrival time",
			"Agree on a code word in case you need help",
		},
	},
	bucketFriend: {
		high: variant{
			title: "Urgent message to a friend",
			text:  "I don't feel safe%s. Can you call me right now and stay on the line until I'm somewhere safe%s?",
		},
		medium: variant{
			title: "Check-in with a friend",
			text:  "Hey, I'm walking%s and feel a bit uneasy. Could you check in with me in 10 minutes%s?",
		},
		low: variant{
			title: "Heads-up to a friend",
			text:  "Hey, just letting you know I'm on my way%s. I'll text you when I arrive%s.",
		},
		firstCheck: "Send your message and make sure your friend has seen it",
		followups: [3]string{
			"Ask them to check on you if you don't reply in 10 minutes",
			"Share your expected arrival time",
			"Let them know when you arrive safely",
		},
	},
}

var universalChecklist = []string{
	"Share your live location with a trusted contact",
	"Move toward a well-lit, populated area",
	"Stay on a call with someone you trust until you're safe",
}

// ScriptInput holds the parameters for an emergency script.
type ScriptInput struct {
	RiskLevel    string
	ContactType  string
	LocationText string
	ExtraContext string
}

// Validate checks that riskLevel and contactType are present. Their values
// are normalized, not rejected.
func (i ScriptInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.RiskLevel) == "" {
		errs = append(errs, domain.FieldError{Field: "riskLevel", Code: "missing", Message: "required"})
	}
	if strings.TrimSpace(i.ContactType) == "" {
		errs = append(errs, domain.FieldError{Field: "contactType", Code: "missing", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// BuildScript renders a ready-to-send message and checklist. It is pure.
func BuildScript(in ScriptInput) domain.EmergencyScript {
	level := domain.NormalizeRiskLevel(in.RiskLevel)
	tpl := templates[bucketFor(domain.NormalizeContactType(in.ContactType))]

	v := tpl.medium
	switch {
	case level == domain.RiskLevelHigh:
		v = tpl.high
	case level == domain.RiskLevelLow && tpl.low.text != "":
		v = tpl.low
	}

	near := ""
	if loc := strings.TrimSpace(in.LocationText); loc != "" {
		near = " near " + loc
	}
	extra := ""
	if c := strings.TrimSpace(in.ExtraContext); c != "" {
		extra = " (" + c + ")"
	}

	checklist := make([]string, 0, 1+len(universalChecklist))
	checklist = append(checklist, tpl.firstCheck)
	checklist = append(checklist, universalChecklist...)

	return domain.EmergencyScript{
		Title:              v.title,
		Text:               fmt.Sprintf(v.text, near, extra),
		Checklist:          checklist,
		SuggestedFollowups: tpl.followups[:],
	}
}
