package comparison

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pe-tools/impact-atlas/pkg/adapters"
	"github.com/pe-tools/impact-atlas/pkg/models/api"
	"github.com/pe-tools/impact-atlas/pkg/services/comparison"
	"github.com/pe-tools/impact-atlas/pkg/services/config"
	"github.com/rs/zerolog"
)

type Handler struct {
	service  comparison.Service
	registry config.Registry
}

func NewHandler(service comparison.Service, registry config.Registry) *Handler {
	return &Handler{
		service:  service,
		registry: registry,
	}
}

func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.ComparisonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error().Err(err).Msg("failed to decode comparison request")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Compare(ctx, adapters.MapComparisonRequestApiToDomain(req))
	if err != nil {
		logger.Error().Err(err).Str("country", req.Country).Msg("comparison failed")
		status := http.StatusInternalServerError
		if errors.Is(err, comparison.ErrNotComparison) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapComparisonResultDomainToApi(result)); err != nil {
		logger.Error().
			Err(err).
			Str("country", req.Country).
			Msg("failed to encode comparison result")
	}
}

func (h *Handler) ListCountries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	profiles, err := h.registry.GetProfiles(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list country profiles")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	type country struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	}
	response := make([]country, 0, len(profiles))
	for _, p := range profiles {
		response = append(response, country{Name: p.Name, Version: p.Version})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode country profiles")
	}
}
