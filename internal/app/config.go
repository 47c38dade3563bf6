package app

import "time"

// Config controls one extraction service instance.
type Config struct {
	// UserAgent and AcceptLanguage override the fetcher's browser-like
	// defaults when non-empty.
	UserAgent      string
	AcceptLanguage string

	// FetchTimeout bounds each document fetch wall-clock, body read
	// included. Zero means the fetcher's default.
	FetchTimeout time.Duration

	// RatePerSecond caps outbound request rate across the service. Zero
	// disables pacing.
	RatePerSecond float64

	// AsOfYear anchors building-age (築N年) conversion. Zero means the
	// current calendar year at service construction.
	AsOfYear int

	Verbose bool
}
