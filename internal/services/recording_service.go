package services

import (
	"context"

	"namecard/internal/models"
	"namecard/internal/providers"
	"namecard/internal/structures"
)

const DefaultPublicListLimit = 100

type RecordingServiceInterface interface {
	Status(ctx context.Context) (models.SessionStatus, error)
	SetStatus(ctx context.Context, enabled bool, expiresAt, description *string) error
	RecordLocation(ctx context.Context, lat, lon float64, sessionToken string, meta models.ClientMeta) (uint, error)
	PublicLocations(ctx context.Context) ([]models.PublicLocation, error)
	AdminLocations(ctx context.Context) ([]models.LocationRecord, error)
	DeleteOwned(ctx context.Context, id uint, sessionToken string) error
	DeleteAny(ctx context.Context, id uint) error
	CountLocations() int64
	RecordingEnabled() bool
}

// RecordingService gates location writes behind the recording session and
// fronts both stores. It keeps no state of its own.
type RecordingService struct {
	conf      *structures.Config
	locations *models.LocationStore
	sessions  *models.SessionStore
	clock     providers.ClockProviderInterface
	logger    providers.Logger
}

func NewRecordingService(conf *structures.Config, locations *models.LocationStore, sessions *models.SessionStore, clock providers.ClockProviderInterface, logger providers.Logger) RecordingServiceInterface {
	return &RecordingService{
		conf:      conf,
		locations: locations,
		sessions:  sessions,
		clock:     clock,
		logger:    logger,
	}
}

func (s *RecordingService) Status(ctx context.Context) (models.SessionStatus, error) {
	return s.sessions.GetStatus(ctx)
}

func (s *RecordingService) SetStatus(ctx context.Context, enabled bool, expiresAt, description *string) error {
	return s.sessions.SetStatus(ctx, enabled, expiresAt, description)
}

// RecordLocation validates the coordinates, then runs the admission
// gate: session must be enabled and not expired, then the store enforces
// the one-record-per-token rule. Range checks come first so an
// out-of-range payload reports the range problem even while recording is
// off. The expiry re-check is redundant with the store's lazy expiry but
// a stale status read can race a concurrent expiry, so it is verified
// again per write.
func (s *RecordingService) RecordLocation(ctx context.Context, lat, lon float64, sessionToken string, meta models.ClientMeta) (uint, error) {
	if err := models.ValidateCoordinates(lat, lon); err != nil {
		return 0, err
	}

	status, err := s.sessions.GetStatus(ctx)
	if err != nil {
		return 0, err
	}
	if !status.Enabled {
		return 0, ErrRecordingDisabled
	}
	if status.ExpiresAt != nil && *status.ExpiresAt != "" {
		if expiry, perr := s.clock.ParseCivil(*status.ExpiresAt); perr == nil && expiry.Before(s.clock.Now()) {
			return 0, ErrSessionExpired
		}
	}

	return s.locations.Insert(ctx, lat, lon, sessionToken, meta)
}

func (s *RecordingService) PublicLocations(ctx context.Context) ([]models.PublicLocation, error) {
	limit := s.conf.Recording.PublicListLimit
	if limit <= 0 {
		limit = DefaultPublicListLimit
	}
	return s.locations.ListAll(ctx, limit)
}

func (s *RecordingService) AdminLocations(ctx context.Context) ([]models.LocationRecord, error) {
	return s.locations.ListAllWithOwnerInfo(ctx)
}

func (s *RecordingService) DeleteOwned(ctx context.Context, id uint, sessionToken string) error {
	return s.locations.DeleteOwned(ctx, id, sessionToken)
}

func (s *RecordingService) DeleteAny(ctx context.Context, id uint) error {
	return s.locations.DeleteAny(ctx, id)
}

// CountLocations and RecordingEnabled feed metrics gauges; they swallow
// errors because a scrape must not fail the exporter.
func (s *RecordingService) CountLocations() int64 {
	n, err := s.locations.Count(context.Background())
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Count locations for metrics: %s", err)
		return 0
	}
	return n
}

func (s *RecordingService) RecordingEnabled() bool {
	status, err := s.sessions.GetStatus(context.Background())
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Read session for metrics: %s", err)
		return false
	}
	return status.Enabled
}
