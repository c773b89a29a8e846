package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/arunsketh/smoothening-curve/internal/resample"
	"github.com/arunsketh/smoothening-curve/internal/store"
	"github.com/arunsketh/smoothening-curve/pkg/models"
)

// CurveHandler handles curve-related HTTP requests
type CurveHandler struct {
	store       store.ResultStore
	defaultStep float64
}

// NewCurveHandler creates a new curve handler
func NewCurveHandler(st store.ResultStore, defaultStep float64) *CurveHandler {
	return &CurveHandler{
		store:       st,
		defaultStep: defaultStep,
	}
}

// ResampleCurve parses the pasted data, resamples it onto an even Y grid and
// caches the result for redisplay and CSV download.
func (h *CurveHandler) ResampleCurve(ctx context.Context, req *models.ResampleRequest) (*models.ResampleResponse, error) {
	// Replace the caller's previous slot regardless of outcome: overwrite on
	// success, clear on error.
	if req.Body.PreviousID != "" {
		h.store.Delete(req.Body.PreviousID)
	}

	if strings.TrimSpace(req.Body.Data) == "" {
		return nil, huma.Error422UnprocessableEntity("Please provide input data.", nil)
	}

	step := req.Body.Step
	if step == 0 {
		step = h.defaultStep
	}

	log.Info().Float64("step", step).Int("inputBytes", len(req.Body.Data)).Msg("Resampling curve")
	res, err := resample.Resample(req.Body.Data, step)
	if err != nil {
		log.Info().Err(err).Msg("Resampling rejected input")
		return nil, huma.Error422UnprocessableEntity(err.Error(), err)
	}

	id := uuid.New().String()
	rec := &models.CurveRecord{
		ID:        id,
		Original:  models.Curve{X: res.Original.X, Y: res.Original.Y},
		Resampled: models.Curve{X: res.Resampled.X, Y: res.Resampled.Y},
		CSV:       res.CSV(),
		CreatedAt: time.Now(),
	}
	h.store.Put(id, rec)

	log.Info().Str("curveID", id).Int("points", len(rec.Resampled.Y)).Msg("Curve resampled successfully")
	return &models.ResampleResponse{
		Body: models.ResampleResponseBody{
			ID:        id,
			Original:  rec.Original,
			Resampled: rec.Resampled,
			Points:    len(rec.Resampled.Y),
			CSVPath:   csvPath(id),
			CreatedAt: rec.CreatedAt,
		},
	}, nil
}

// GetCurve returns a cached curve for redisplay
func (h *CurveHandler) GetCurve(ctx context.Context, req *models.GetCurveRequest) (*models.GetCurveResponse, error) {
	if _, err := uuid.Parse(req.ID); err != nil {
		return nil, huma.Error400BadRequest("Invalid curve ID", err)
	}

	rec, fresh, ok := h.store.Get(req.ID)
	if !ok {
		return nil, huma.Error404NotFound("Curve not found or expired", nil)
	}

	log.Info().Str("curveID", req.ID).Bool("fresh", fresh).Msg("Returning cached curve")
	return &models.GetCurveResponse{
		Body: models.GetCurveResponseBody{
			ID:        rec.ID,
			Original:  rec.Original,
			Resampled: rec.Resampled,
			Points:    len(rec.Resampled.Y),
			CSVPath:   csvPath(rec.ID),
			Fresh:     fresh,
			CreatedAt: rec.CreatedAt,
		},
	}, nil
}

func csvPath(id string) string {
	return fmt.Sprintf("/api/curves/%s/csv", id)
}
