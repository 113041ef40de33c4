package controllers

import (
	"errors"
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/gookit/validate"

	"namecard/internal/models"
	"namecard/internal/providers"
	"namecard/internal/services"
)

const maxRequestBodySize = 1 << 20 // 1 MB

const (
	cacheKeyLocations = "locations"
	cacheKeyCardInfo  = "card-info"
)

// SessionTokenHeader carries the opaque client token that groups a
// visitor's pin. It is an ownership handle, not a credential.
const SessionTokenHeader = "X-Session-Id"

type ApiController struct {
	logger  providers.Logger
	service services.RecordingServiceInterface
	card    services.CardServiceInterface
	cache   providers.CacheProviderInterface
}

func NewApiController(logger providers.Logger, service services.RecordingServiceInterface, card services.CardServiceInterface, cache providers.CacheProviderInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		card:    card,
		cache:   cache,
	}
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (interface{}, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

// RecordingStatus is deliberately uncached: the lazy expiry in the
// session store must run on every read.
func (ac *ApiController) RecordingStatus(w http.ResponseWriter, r *http.Request) {
	status, err := ac.service.Status(r.Context())
	if err != nil {
		ac.logger.Errorf(providers.TypeGet, "Read recording status: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

type locationPayload struct {
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
}

func (ac *ApiController) RecordLocation(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload locationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid json body")
		return
	}

	if v := validate.Struct(&payload); !v.Validate() {
		writeDetail(w, http.StatusUnprocessableEntity, v.Errors.One())
		return
	}

	meta := models.ClientMeta{
		UserAgent:  r.UserAgent(),
		RemoteAddr: r.RemoteAddr,
	}
	token := r.Header.Get(SessionTokenHeader)

	id, err := ac.service.RecordLocation(r.Context(), *payload.Latitude, *payload.Longitude, token, meta)
	switch {
	case err == nil:
	case errors.Is(err, models.ErrValidation):
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	case errors.Is(err, services.ErrRecordingDisabled), errors.Is(err, services.ErrSessionExpired):
		writeDetail(w, http.StatusForbidden, err.Error())
		return
	case errors.Is(err, models.ErrConflict):
		writeDetail(w, http.StatusConflict, "already recorded for this session")
		return
	default:
		ac.logger.Errorf(providers.TypePost, "Record location: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Del(cacheKeyLocations)
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Location recorded successfully",
		"id":      id,
	})
}

func (ac *ApiController) ListLocations(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, cacheKeyLocations, func() (interface{}, error) {
		return ac.service.PublicLocations(r.Context())
	})
}

func (ac *ApiController) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(SessionTokenHeader)
	if token == "" {
		writeDetail(w, http.StatusBadRequest, "Session ID is required")
		return
	}

	id, err := parseID(r.PathValue("id"))
	if err != nil {
		writeDetail(w, http.StatusNotFound, "Location not found or not owned by user")
		return
	}

	if err := ac.service.DeleteOwned(r.Context(), id, token); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeDetail(w, http.StatusNotFound, "Location not found or not owned by user")
			return
		}
		ac.logger.Errorf(providers.TypePost, "Delete location %d: %s", id, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Del(cacheKeyLocations)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Location deleted successfully"})
}

func (ac *ApiController) CardInfo(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, cacheKeyCardInfo, func() (interface{}, error) {
		return ac.card.PublicCard(), nil
	})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
