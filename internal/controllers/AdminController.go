package controllers

import (
	"errors"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/gookit/validate"

	"namecard/internal/models"
	"namecard/internal/providers"
	"namecard/internal/services"
)

type AdminController struct {
	logger  providers.Logger
	service services.RecordingServiceInterface
	card    services.CardServiceInterface
	auth    providers.AuthProviderInterface
	cache   providers.CacheProviderInterface
}

func NewAdminController(logger providers.Logger, service services.RecordingServiceInterface, card services.CardServiceInterface, auth providers.AuthProviderInterface, cache providers.CacheProviderInterface) *AdminController {
	return &AdminController{
		logger:  logger,
		service: service,
		card:    card,
		auth:    auth,
		cache:   cache,
	}
}

// authorize checks the bearer token issued by Login. Every admin endpoint
// except Login goes through here.
func (ac *AdminController) authorize(w http.ResponseWriter, r *http.Request) bool {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		writeDetail(w, http.StatusUnauthorized, "missing bearer token")
		return false
	}
	if err := ac.auth.Verify(token); err != nil {
		writeDetail(w, http.StatusUnauthorized, "invalid or expired token")
		return false
	}
	return true
}

type loginPayload struct {
	Password string `json:"password" validate:"required"`
}

func (ac *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload loginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if v := validate.Struct(&payload); !v.Validate() {
		writeDetail(w, http.StatusUnprocessableEntity, v.Errors.One())
		return
	}

	token, err := ac.auth.Login(payload.Password)
	if err != nil {
		if errors.Is(err, providers.ErrUnauthorized) {
			writeDetail(w, http.StatusUnauthorized, "Invalid admin password")
			return
		}
		ac.logger.Errorf(providers.TypePost, "Admin login: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"token":   token,
		"message": "Admin login successful",
	})
}

type sessionPayload struct {
	Enabled     bool    `json:"enabled"`
	ExpiresAt   *string `json:"expires_at"`
	Description *string `json:"description"`
}

func (ac *AdminController) SetSession(w http.ResponseWriter, r *http.Request) {
	if !ac.authorize(w, r) {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload sessionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid json body")
		return
	}

	if err := ac.service.SetStatus(r.Context(), payload.Enabled, payload.ExpiresAt, payload.Description); err != nil {
		ac.logger.Errorf(providers.TypePost, "Update recording session: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Recording session updated",
		"session": payload,
	})
}

func (ac *AdminController) SessionStatus(w http.ResponseWriter, r *http.Request) {
	if !ac.authorize(w, r) {
		return
	}

	status, err := ac.service.Status(r.Context())
	if err != nil {
		ac.logger.Errorf(providers.TypeGet, "Read session status: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// Locations is the owner-info view: session tokens and client meta
// included, no row cap.
func (ac *AdminController) Locations(w http.ResponseWriter, r *http.Request) {
	if !ac.authorize(w, r) {
		return
	}

	records, err := ac.service.AdminLocations(r.Context())
	if err != nil {
		ac.logger.Errorf(providers.TypeGet, "List locations for admin: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (ac *AdminController) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	if !ac.authorize(w, r) {
		return
	}

	id, err := parseID(r.PathValue("id"))
	if err != nil {
		writeDetail(w, http.StatusNotFound, "Location not found")
		return
	}

	if err := ac.service.DeleteAny(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeDetail(w, http.StatusNotFound, "Location not found")
			return
		}
		ac.logger.Errorf(providers.TypePost, "Admin delete location %d: %s", id, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Del(cacheKeyLocations)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Location deleted successfully"})
}

func (ac *AdminController) GetConfig(w http.ResponseWriter, r *http.Request) {
	if !ac.authorize(w, r) {
		return
	}
	writeJSON(w, http.StatusOK, ac.card.FullCard())
}

func (ac *AdminController) PutConfig(w http.ResponseWriter, r *http.Request) {
	if !ac.authorize(w, r) {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var card services.Card
	if err := json.NewDecoder(r.Body).Decode(&card); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid json body")
		return
	}

	if err := ac.card.Save(card); err != nil {
		ac.logger.Errorf(providers.TypePost, "Save card config: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Del(cacheKeyCardInfo)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Card config updated"})
}
