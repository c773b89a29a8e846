package models

import (
	"time"
)

// Curve holds paired coordinate sequences of equal length.
type Curve struct {
	X []float64 `json:"x" doc:"X values (strain)"`
	Y []float64 `json:"y" doc:"Y values (stress), ascending"`
}

// ResampleRequest represents a request to resample pasted tabular data
type ResampleRequest struct {
	Body struct {
		Data       string  `json:"data" required:"true" doc:"Newline-separated 'X Y' or 'X,Y' pairs"`
		Step       float64 `json:"step,omitempty" minimum:"0.0001" default:"0.005" doc:"Y-axis grid spacing"`
		PreviousID string  `json:"previous_id,omitempty" doc:"Cached curve ID this request replaces"`
	}
}

// ResampleResponseBody is the body of the resample response
type ResampleResponseBody struct {
	ID        string    `json:"id" doc:"Curve unique identifier"`
	Original  Curve     `json:"original" doc:"Input points sorted by Y, for overlay plotting"`
	Resampled Curve     `json:"resampled" doc:"Evenly spaced resampled curve"`
	Points    int       `json:"points" doc:"Number of resampled points"`
	CSVPath   string    `json:"csv_path" doc:"Download path for the CSV artifact"`
	CreatedAt time.Time `json:"created_at" doc:"When the curve was computed"`
}

// ResampleResponse represents the outcome of a resampling run
type ResampleResponse struct {
	Body ResampleResponseBody
}

// GetCurveRequest represents a request to redisplay a cached curve
type GetCurveRequest struct {
	ID string `path:"id" doc:"Curve ID"`
}

// GetCurveResponseBody is the body of the cached curve response
type GetCurveResponseBody struct {
	ID        string    `json:"id" doc:"Curve ID"`
	Original  Curve     `json:"original" doc:"Input points sorted by Y"`
	Resampled Curve     `json:"resampled" doc:"Evenly spaced resampled curve"`
	Points    int       `json:"points" doc:"Number of resampled points"`
	CSVPath   string    `json:"csv_path" doc:"Download path for the CSV artifact"`
	Fresh     bool      `json:"fresh" doc:"True on the first read after computation, false on redisplay"`
	CreatedAt time.Time `json:"created_at" doc:"When the curve was computed"`
}

// GetCurveResponse represents a cached curve fetched for redisplay
type GetCurveResponse struct {
	Body GetCurveResponseBody
}

// CurveRecord is the cached outcome of one resampling run (for internal use)
type CurveRecord struct {
	ID        string    `json:"id"`
	Original  Curve     `json:"original"`
	Resampled Curve     `json:"resampled"`
	CSV       string    `json:"csv"`
	CreatedAt time.Time `json:"created_at"`
}
