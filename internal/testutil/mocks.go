package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"namecard/internal/models"
	"namecard/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// HasLevel reports whether any recorded entry carries the given level.
func (m *MockLogger) HasLevel(level string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.Logs {
		if e.Level == level {
			return true
		}
	}
	return false
}

// FakeClock implements providers.ClockProviderInterface with a settable
// current time, so expiry tests do not sleep.
type FakeClock struct {
	Current time.Time
	Loc     *time.Location
}

func NewFakeClock(current time.Time) *FakeClock {
	return &FakeClock{Current: current, Loc: current.Location()}
}

func (c *FakeClock) Now() time.Time {
	return c.Current
}

func (c *FakeClock) Location() *time.Location {
	return c.Loc
}

func (c *FakeClock) Advance(d time.Duration) {
	c.Current = c.Current.Add(d)
}

func (c *FakeClock) ParseCivil(value string) (time.Time, error) {
	s := strings.Replace(strings.TrimSpace(value), "T", " ", 1)
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02 15:04"} {
		if t, err := time.ParseInLocation(layout, s, c.Loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse civil timestamp %q", value)
}

// MockRecordingService implements services.RecordingServiceInterface
// with scriptable results.
type MockRecordingService struct {
	mu sync.Mutex

	StatusResult models.SessionStatus
	StatusErr    error

	SetStatusCalls []SetStatusCall
	SetStatusErr   error

	RecordID    uint
	RecordErr   error
	RecordCalls []RecordCall

	PublicResult []models.PublicLocation
	PublicErr    error
	AdminResult  []models.LocationRecord
	AdminErr     error

	DeleteOwnedCalls []DeleteOwnedCall
	DeleteOwnedErr   error
	DeleteAnyCalls   []uint
	DeleteAnyErr     error

	Count   int64
	Enabled bool
}

type SetStatusCall struct {
	Enabled     bool
	ExpiresAt   *string
	Description *string
}

type RecordCall struct {
	Lat   float64
	Lon   float64
	Token string
	Meta  models.ClientMeta
}

type DeleteOwnedCall struct {
	ID    uint
	Token string
}

func (m *MockRecordingService) Status(_ context.Context) (models.SessionStatus, error) {
	return m.StatusResult, m.StatusErr
}

func (m *MockRecordingService) SetStatus(_ context.Context, enabled bool, expiresAt, description *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetStatusCalls = append(m.SetStatusCalls, SetStatusCall{Enabled: enabled, ExpiresAt: expiresAt, Description: description})
	return m.SetStatusErr
}

func (m *MockRecordingService) RecordLocation(_ context.Context, lat, lon float64, token string, meta models.ClientMeta) (uint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecordCalls = append(m.RecordCalls, RecordCall{Lat: lat, Lon: lon, Token: token, Meta: meta})
	if m.RecordErr != nil {
		return 0, m.RecordErr
	}
	return m.RecordID, nil
}

func (m *MockRecordingService) PublicLocations(_ context.Context) ([]models.PublicLocation, error) {
	return m.PublicResult, m.PublicErr
}

func (m *MockRecordingService) AdminLocations(_ context.Context) ([]models.LocationRecord, error) {
	return m.AdminResult, m.AdminErr
}

func (m *MockRecordingService) DeleteOwned(_ context.Context, id uint, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteOwnedCalls = append(m.DeleteOwnedCalls, DeleteOwnedCall{ID: id, Token: token})
	return m.DeleteOwnedErr
}

func (m *MockRecordingService) DeleteAny(_ context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteAnyCalls = append(m.DeleteAnyCalls, id)
	return m.DeleteAnyErr
}

func (m *MockRecordingService) CountLocations() int64 {
	return m.Count
}

func (m *MockRecordingService) RecordingEnabled() bool {
	return m.Enabled
}

// MockCache implements providers.CacheProviderInterface over a plain map.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.Data[key]
	return v, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Del(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Data, key)
}
