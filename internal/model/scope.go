package model

// Scope carries the identity of the request originator through the pipeline.
type Scope struct {
	UserID   string // Canonical user id (the registered phone number)
	Username string // Optional display name (e.g. Telegram username)
}

// Environment represents the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
