package domain

import "time"

// Memory is the process-wide diagnostic snapshot of recent outcomes.
type Memory struct {
	HasMemory            bool            `json:"hasMemory"`
	LastLowScenarioID    *string         `json:"lastLowScenarioId"`
	LastSaferAction      *string         `json:"lastSaferAction"`
	LastGeneratedMessage *MessagePreview `json:"lastGeneratedMessage"`
	LastLocationTS       *time.Time      `json:"lastLocationTs"`
}

// Kinds of generated messages recorded into Memory.
const (
	PreviewKindScript  = "script"
	PreviewKindPackage = "package"
)

// MaxPreviewRunes caps the length of MessagePreview.Preview.
const MaxPreviewRunes = 160

// MessagePreview is a truncated record of the last generated message.
type MessagePreview struct {
	Kind        string    `json:"kind"`
	RiskLevel   RiskLevel `json:"riskLevel"`
	ContactType string    `json:"contactType,omitempty"`
	Preview     string    `json:"preview"`
	At          time.Time `json:"at"`
}

// TruncatePreview shortens s to at most MaxPreviewRunes runes.
func TruncatePreview(s string) string {
	r := []rune(s)
	if len(r) <= MaxPreviewRunes {
		return s
	}
	return string(r[:MaxPreviewRunes-1]) + "…"
}
