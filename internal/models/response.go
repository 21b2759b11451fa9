// Package models holds the request and response bodies of the HTTP API.
package models

import "github.com/sartorproj/tempstats/tempseries"

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// SeriesResponse represents the full contents of the series
type SeriesResponse struct {
	Size     int       `json:"size"`
	Capacity int       `json:"capacity"`
	Temps    []float64 `json:"temps"`
}

// SizeResponse is returned by mutating requests
type SizeResponse struct {
	Size int `json:"size"`
}

// TempsResponse represents a filtered or sorted list of readings
type TempsResponse struct {
	Count int       `json:"count"`
	Temps []float64 `json:"temps"`
}

// ValueResponse represents a single statistic
type ValueResponse struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// SummaryResponse represents the summary statistics and their text rendering
type SummaryResponse struct {
	tempseries.TempSummaryStatistics
	Text string `json:"text"`
}

// ErrorResponse represents error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail represents error details
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Path    string                 `json:"path,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}
