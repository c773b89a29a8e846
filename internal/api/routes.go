package api

import (
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"

	"github.com/arunsketh/smoothening-curve/internal/api/handlers"
	"github.com/arunsketh/smoothening-curve/internal/resample"
	"github.com/arunsketh/smoothening-curve/internal/store"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(router *chi.Mux, api huma.API, resultStore store.ResultStore, defaultStep float64) {
	// Initialize handlers
	curveHandler := handlers.NewCurveHandler(resultStore, defaultStep)

	// Register curve routes
	huma.Register(api, huma.Operation{
		OperationID: "resampleCurve",
		Method:      http.MethodPost,
		Path:        "/api/curves",
		Summary:     "Resample pasted curve data",
		Description: "Parses two-column (X, Y) text and resamples it onto an evenly spaced Y grid",
		Tags:        []string{"Curves"},
	}, curveHandler.ResampleCurve)

	huma.Register(api, huma.Operation{
		OperationID: "getCurve",
		Method:      http.MethodGet,
		Path:        "/api/curves/{id}",
		Summary:     "Get a cached curve",
		Description: "Returns a previously computed curve for redisplay",
		Tags:        []string{"Curves"},
	}, curveHandler.GetCurve)

	// CSV download stays a raw chi route; huma would JSON-wrap the body
	router.Get("/api/curves/{id}/csv", func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		rec, ok := resultStore.Peek(id)
		if !ok {
			http.Error(w, "Curve not found or expired", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", resample.CSVMIMEType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", resample.CSVFilename))
		w.Write([]byte(rec.CSV))
	})
}
