package api

type ErrorResponse struct {
	Error   string `json:"error" example:"VALIDATION_ERROR"`
	Message string `json:"message" example:"something went wrong"`
	Field   string `json:"field,omitempty" example:"orgId"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
