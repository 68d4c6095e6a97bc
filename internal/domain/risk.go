package domain

// Scenario describes a walk being assessed. It is transient and only its
// ScenarioID is echoed back.
type Scenario struct {
	ScenarioID       string `json:"scenarioId"`
	TimeOfDay        string `json:"timeOfDay"`
	UserAlone        bool   `json:"userAlone"`
	NeighborhoodType string `json:"neighborhoodType"`
	RouteLighting    string `json:"routeLighting"`
}

// Assessment is the immutable result of scoring a Scenario.
type Assessment struct {
	ScenarioID      string    `json:"scenarioId"`
	RiskScore       int       `json:"riskScore"`
	RiskLevel       RiskLevel `json:"riskLevel"`
	Reasoning       string    `json:"reasoning"`
	GuardianMessage string    `json:"guardianMessage"`
	SaferAction     string    `json:"saferAction"`
}
