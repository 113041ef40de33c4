package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namecard/internal/models"
	"namecard/internal/providers"
	"namecard/internal/services"
	"namecard/internal/testutil"
)

type mockAuth struct {
	Token     string
	LoginErr  error
	VerifyErr error
	Verified  []string
}

func (m *mockAuth) Login(_ string) (string, error) {
	if m.LoginErr != nil {
		return "", m.LoginErr
	}
	return m.Token, nil
}

func (m *mockAuth) Verify(token string) error {
	m.Verified = append(m.Verified, token)
	return m.VerifyErr
}

func newAdminFixture() (*AdminController, *testutil.MockRecordingService, *mockCardService, *mockAuth, *testutil.MockCache) {
	service := &testutil.MockRecordingService{}
	card := &mockCardService{Full: services.Card{Name: "Taro Yamada"}}
	auth := &mockAuth{Token: "issued-token"}
	cache := testutil.NewMockCache()
	ac := NewAdminController(&testutil.MockLogger{}, service, card, auth, cache)
	return ac, service, card, auth, cache
}

func adminRequest(method, target, body, bearer string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	return req
}

// --- Login ---

func TestAdminLogin_Success(t *testing.T) {
	ac, _, _, _, _ := newAdminFixture()

	rr := httptest.NewRecorder()
	ac.Login(rr, adminRequest(http.MethodPost, "/api/admin/login", `{"password": "secret"}`, ""))

	assert.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "issued-token", body["token"])
	assert.Equal(t, "Admin login successful", body["message"])
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	ac, _, _, auth, _ := newAdminFixture()
	auth.LoginErr = providers.ErrUnauthorized

	rr := httptest.NewRecorder()
	ac.Login(rr, adminRequest(http.MethodPost, "/api/admin/login", `{"password": "nope"}`, ""))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Invalid admin password", decodeBody(t, rr)["detail"])
}

func TestAdminLogin_MissingPassword(t *testing.T) {
	ac, _, _, _, _ := newAdminFixture()

	rr := httptest.NewRecorder()
	ac.Login(rr, adminRequest(http.MethodPost, "/api/admin/login", `{}`, ""))

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestAdminLogin_InvalidJson(t *testing.T) {
	ac, _, _, _, _ := newAdminFixture()

	rr := httptest.NewRecorder()
	ac.Login(rr, adminRequest(http.MethodPost, "/api/admin/login", `{nope`, ""))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// --- bearer auth ---

func TestAdmin_MissingBearerToken(t *testing.T) {
	ac, service, _, _, _ := newAdminFixture()

	endpoints := map[string]http.HandlerFunc{
		"session-status": ac.SessionStatus,
		"locations":      ac.Locations,
		"get-config":     ac.GetConfig,
	}
	for name, handler := range endpoints {
		t.Run(name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			handler(rr, adminRequest(http.MethodGet, "/api/admin/x", "", ""))
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
	assert.Empty(t, service.SetStatusCalls)
}

func TestAdmin_InvalidBearerToken(t *testing.T) {
	ac, _, _, auth, _ := newAdminFixture()
	auth.VerifyErr = providers.ErrUnauthorized

	rr := httptest.NewRecorder()
	ac.SessionStatus(rr, adminRequest(http.MethodGet, "/api/admin/session-status", "", "bad-token"))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, []string{"bad-token"}, auth.Verified)
}

func TestAdmin_NonBearerAuthorizationHeader(t *testing.T) {
	ac, _, _, auth, _ := newAdminFixture()

	req := adminRequest(http.MethodGet, "/api/admin/session-status", "", "")
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rr := httptest.NewRecorder()
	ac.SessionStatus(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Empty(t, auth.Verified)
}

// --- SetSession ---

func TestSetSession_UpdatesAndEchoes(t *testing.T) {
	ac, service, _, _, _ := newAdminFixture()

	body := `{"enabled": true, "expires_at": "2025-06-01 18:00:00", "description": "meetup"}`
	rr := httptest.NewRecorder()
	ac.SetSession(rr, adminRequest(http.MethodPost, "/api/admin/session", body, "ok-token"))

	assert.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, service.SetStatusCalls, 1)
	call := service.SetStatusCalls[0]
	assert.True(t, call.Enabled)
	require.NotNil(t, call.ExpiresAt)
	assert.Equal(t, "2025-06-01 18:00:00", *call.ExpiresAt)
	require.NotNil(t, call.Description)
	assert.Equal(t, "meetup", *call.Description)

	resp := decodeBody(t, rr)
	assert.Equal(t, "Recording session updated", resp["message"])
}

func TestSetSession_NullFieldsClear(t *testing.T) {
	ac, service, _, _, _ := newAdminFixture()

	body := `{"enabled": false, "expires_at": null, "description": null}`
	rr := httptest.NewRecorder()
	ac.SetSession(rr, adminRequest(http.MethodPost, "/api/admin/session", body, "ok-token"))

	assert.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, service.SetStatusCalls, 1)
	assert.False(t, service.SetStatusCalls[0].Enabled)
	assert.Nil(t, service.SetStatusCalls[0].ExpiresAt)
	assert.Nil(t, service.SetStatusCalls[0].Description)
}

func TestSetSession_InvalidJson(t *testing.T) {
	ac, service, _, _, _ := newAdminFixture()

	rr := httptest.NewRecorder()
	ac.SetSession(rr, adminRequest(http.MethodPost, "/api/admin/session", `{bad`, "ok-token"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, service.SetStatusCalls)
}

// --- SessionStatus ---

func TestAdminSessionStatus(t *testing.T) {
	ac, service, _, _, _ := newAdminFixture()
	desc := "meetup"
	service.StatusResult = models.SessionStatus{Enabled: true, Description: &desc}

	rr := httptest.NewRecorder()
	ac.SessionStatus(rr, adminRequest(http.MethodGet, "/api/admin/session-status", "", "ok-token"))

	assert.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, true, body["enabled"])
	assert.Equal(t, "meetup", body["description"])
}

// --- Locations ---

func TestAdminLocations_IncludesOwnerInfo(t *testing.T) {
	ac, service, _, _, _ := newAdminFixture()
	service.AdminResult = []models.LocationRecord{
		{ID: 1, Latitude: 1, Longitude: 2, SessionID: "token-1", UserAgent: "ua", RemoteAddr: "10.0.0.1"},
	}

	rr := httptest.NewRecorder()
	ac.Locations(rr, adminRequest(http.MethodGet, "/api/admin/locations", "", "ok-token"))

	assert.Equal(t, http.StatusOK, rr.Code)
	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "token-1", records[0]["session_id"])
	assert.Equal(t, "10.0.0.1", records[0]["ip_address"])
}

// --- DeleteLocation ---

func adminDelete(ac *AdminController, target, bearer string) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/admin/locations/{id}", ac.DeleteLocation)

	req := httptest.NewRequest(http.MethodDelete, target, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func TestAdminDeleteLocation_Success(t *testing.T) {
	ac, service, _, _, cache := newAdminFixture()
	cache.Set(cacheKeyLocations, []byte("stale"))

	rr := adminDelete(ac, "/api/admin/locations/7", "ok-token")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []uint{7}, service.DeleteAnyCalls)

	_, ok := cache.Get(cacheKeyLocations)
	assert.False(t, ok)
}

func TestAdminDeleteLocation_NotFound(t *testing.T) {
	ac, service, _, _, _ := newAdminFixture()
	service.DeleteAnyErr = models.ErrNotFound

	rr := adminDelete(ac, "/api/admin/locations/7", "ok-token")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Location not found", decodeBody(t, rr)["detail"])
}

func TestAdminDeleteLocation_BadID(t *testing.T) {
	ac, service, _, _, _ := newAdminFixture()

	rr := adminDelete(ac, "/api/admin/locations/xyz", "ok-token")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Empty(t, service.DeleteAnyCalls)
}

func TestAdminDeleteLocation_Unauthorized(t *testing.T) {
	ac, service, _, auth, _ := newAdminFixture()
	auth.VerifyErr = providers.ErrUnauthorized

	rr := adminDelete(ac, "/api/admin/locations/7", "bad-token")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Empty(t, service.DeleteAnyCalls)
}

// --- card config ---

func TestGetConfig_ReturnsFullCard(t *testing.T) {
	ac, _, card, _, _ := newAdminFixture()
	card.Full = services.Card{Name: "Taro Yamada", Email: "taro@example.com"}

	rr := httptest.NewRecorder()
	ac.GetConfig(rr, adminRequest(http.MethodGet, "/api/admin/config", "", "ok-token"))

	assert.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "Taro Yamada", body["name"])
	assert.Equal(t, "taro@example.com", body["email"])
}

func TestPutConfig_SavesAndInvalidatesCache(t *testing.T) {
	ac, _, card, _, cache := newAdminFixture()
	cache.Set(cacheKeyCardInfo, []byte("stale"))

	body := `{"name": "New Name", "social_links": [{"label": "GitHub", "url": "https://github.com/x", "enabled": true}]}`
	rr := httptest.NewRecorder()
	ac.PutConfig(rr, adminRequest(http.MethodPut, "/api/admin/config", body, "ok-token"))

	assert.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, card.Saved, 1)
	assert.Equal(t, "New Name", card.Saved[0].Name)
	require.Len(t, card.Saved[0].SocialLinks, 1)
	assert.True(t, card.Saved[0].SocialLinks[0].Enabled)

	_, ok := cache.Get(cacheKeyCardInfo)
	assert.False(t, ok)
}

func TestPutConfig_SaveError(t *testing.T) {
	ac, _, card, _, _ := newAdminFixture()
	card.SaveErr = assert.AnError

	rr := httptest.NewRecorder()
	ac.PutConfig(rr, adminRequest(http.MethodPut, "/api/admin/config", `{"name": "x"}`, "ok-token"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
