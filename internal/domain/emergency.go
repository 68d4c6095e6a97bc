package domain

// EmergencyScript is a ready-to-send message plus an actionable checklist.
type EmergencyScript struct {
	Title              string   `json:"title"`
	Text               string   `json:"text"`
	Checklist          []string `json:"checklist"`
	SuggestedFollowups []string `json:"suggestedFollowups"`
}

// GuardianMessage is one tailored message within an EmergencyPackage.
type GuardianMessage struct {
	GuardianID string        `json:"guardianId"`
	Method     ContactMethod `json:"method"`
	To         string        `json:"to"`
	Text       string        `json:"text"`
	ShareLink  string        `json:"shareLink"`
}

// EmergencyPackage is the per-guardian message set with a shared map link.
type EmergencyPackage struct {
	ShareLink          string            `json:"shareLink"`
	Messages           []GuardianMessage `json:"messages"`
	RecommendedActions []string          `json:"recommendedActions"`
}

// ChatReply is the responder output. Source is "rules" or "ai".
type ChatReply struct {
	Reply  string `json:"reply"`
	Intent string `json:"intent"`
	Source string `json:"source"`
}
