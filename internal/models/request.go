package models

// AddTempsRequest represents a request to append readings
type AddTempsRequest struct {
	Temps []float64 `json:"temps"`
}
