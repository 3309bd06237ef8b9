package models

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	OK                   bool   `json:"ok"`
	ModelDefault         string `json:"model_default"`
	ExecutionModeDefault string `json:"execution_mode_default"`
	DockerAvailable      bool   `json:"docker_available"`
	DockerMessage        string `json:"docker_message,omitempty"`
}
