package dto

// WebhookAck acknowledges a processor delivery
type WebhookAck struct {
	OK      bool   `json:"ok"`
	Outcome string `json:"outcome,omitempty"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
