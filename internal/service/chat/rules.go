package chat

import "strings"

// Intents produced by the rule-based responder.
const (
	IntentPromptContext  = "prompt_context"
	IntentDistressHigh   = "distress_high"
	IntentDistressMedium = "distress_medium"
	IntentDistressLow    = "distress_low"
	IntentGuidanceHigh   = "guidance_high"
	IntentGuidanceMedium = "guidance_medium"
	IntentGuidanceLow    = "guidance_low"
)

var distressKeywords = []string{"scared", "unsafe", "help", "follow", "someone", "panic"}

var scriptedReplies = map[string]string{
	IntentPromptContext:  "I'm here with you. Tell me where you are and what's happening, and I'll help you plan your next step.",
	IntentDistressHigh:   "Your safety comes first. If you are in immediate danger, call emergency services now. Move toward a bright, busy place and call someone you trust to stay on the line with you.",
	IntentDistressMedium: "Take a slow breath. Head toward a well-lit street with other people around and share your live location with a guardian. I can help you write a message to them.",
	IntentDistressLow:    "It's okay to feel uneasy. Stay aware of your surroundings, keep your phone handy, and let a friend know where you are.",
	IntentGuidanceHigh:   "This route looks risky right now. Consider waiting somewhere busy, taking a ride instead, or asking a guardian to stay on a call with you.",
	IntentGuidanceMedium: "Stick to main streets, keep your phone charged, and send a quick check-in to a guardian before you set off.",
	IntentGuidanceLow:    "Things look fine. Enjoy your walk and let someone know when you arrive.",
}

// Classify returns the intent for message given the caller's risk level.
func Classify(message, riskLevel string) string {
	msg := strings.ToLower(strings.TrimSpace(message))
	if msg == "" {
		return IntentPromptContext
	}

	level := strings.ToUpper(strings.TrimSpace(riskLevel))
	distress := false
	for _, kw := range distressKeywords {
		if strings.Contains(msg, kw) {
			distress = true
			break
		}
	}

	switch {
	case distress && level == "HIGH":
		return IntentDistressHigh
	case distress && level == "MEDIUM":
		return IntentDistressMedium
	case distress:
		return IntentDistressLow
	case level == "HIGH":
		return IntentGuidanceHigh
	case level == "MEDIUM":
		return IntentGuidanceMedium
	default:
		return IntentGuidanceLow
	}
}

// ScriptedReply returns the fixed reply text for intent.
func ScriptedReply(intent string) string {
	return scriptedReplies[intent]
}
