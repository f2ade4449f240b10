package domain

import "time"

// Config represents the workoutlog configuration loaded from workoutlog.yaml.
type Config struct {
	Server   ServerConfig
	Response ResponseConfig
	HTTP     HTTPConfig
}

type ServerConfig struct {
	BaseURL string
	AddPath string
}

type ResponseConfig struct {
	// SuccessPath is a JSONPath expression locating the success flag in the response body.
	SuccessPath string
}

type HTTPConfig struct {
	// Timeout bounds the whole add request. Zero waits indefinitely.
	Timeout time.Duration
}

// DefaultConfig provides sane defaults if workoutlog.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			BaseURL: "http://localhost:3000",
			AddPath: "/api/add",
		},
		Response: ResponseConfig{
			SuccessPath: "$.success",
		},
	}
}
