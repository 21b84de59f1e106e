package models

// HealthCheckResponse returns the alive status of the service
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}
