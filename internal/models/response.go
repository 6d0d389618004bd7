package models

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// ProbeResult reports a single reachability attempt against the backend.
// Error carries the raw backend message when the probe failed.
type ProbeResult struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// StatusResponse is what a client needs to decide whether to show its
// "backend not configured" warning.
type StatusResponse struct {
	Configured bool         `json:"configured"`
	Reason     string       `json:"reason,omitempty"`
	Probe      *ProbeResult `json:"probe,omitempty"`
}

type SessionResponse struct {
	Session *Session  `json:"session"`
	User    *AuthUser `json:"user"`
}

type SignUpResponse struct {
	User           *AuthUser `json:"user"`
	ProfileCreated bool      `json:"profile_created"`
}

type UploadPhotoResponse struct {
	StoragePath string `json:"storage_path"`
	PublicURL   string `json:"public_url"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
