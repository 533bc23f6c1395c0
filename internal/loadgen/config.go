// Package loadgen drives a running lead intelligence server with generated
// contacts and verifies that every run reached the history log.
package loadgen

import (
	"errors"
	"time"
)

// Sentinel errors for the load run.
var (
	ErrUnhealthy    = errors.New("service health check failed")
	ErrVerification = errors.New("load verification failed")
)

// Default load configuration constants.
const (
	defaultContacts = 50
	defaultWorkers  = 4
	defaultTimeout  = 10 * time.Second
)

// Config holds configuration for a load run.
type Config struct {
	BaseURL    string        // Base URL of the service
	Contacts   int           // Number of contacts to generate
	Workers    int           // Number of concurrent submitters
	RPS        float64       // Request rate limit; zero is unlimited
	Timeout    time.Duration // HTTP request timeout
	Seed       int64         // Seed for contact generation
	OutputFile string        // Optional file the generated contacts are written to
}

func (c *Config) withDefaults() Config {
	out := *c
	if out.Contacts < 1 {
		out.Contacts = defaultContacts
	}
	if out.Workers < 1 {
		out.Workers = defaultWorkers
	}
	if out.Timeout <= 0 {
		out.Timeout = defaultTimeout
	}
	return out
}

// Stats summarizes a load run.
type Stats struct {
	Generated      int           `json:"generated"`
	Submitted      int           `json:"submitted"`
	Completed      int           `json:"completed"`
	Failed         int           `json:"failed"`
	Errors         int           `json:"errors"`
	HistoryChecked int           `json:"historyChecked"`
	HistoryMissing int           `json:"historyMissing"`
	Duration       time.Duration `json:"duration"`
	PerSecond      float64       `json:"perSecond"`
}
