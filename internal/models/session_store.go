package models

import (
	"context"

	"gorm.io/gorm"

	"namecard/internal/providers"
)

// SessionStore owns the singleton recording session row.
type SessionStore struct {
	db     *gorm.DB
	clock  providers.ClockProviderInterface
	logger providers.Logger
}

func NewSessionStore(db *gorm.DB, clock providers.ClockProviderInterface, logger providers.Logger) *SessionStore {
	return &SessionStore{db: db, clock: clock, logger: logger}
}

// GetStatus reads the session and lazily enforces expiry: the first read
// that observes expires_at strictly in the past flips enabled to false
// and persists the transition. An unparseable expires_at is logged and
// ignored - the read must never fail because of a malformed expiry.
func (s *SessionStore) GetStatus(ctx context.Context) (SessionStatus, error) {
	var row RecordingSession
	if err := s.db.WithContext(ctx).First(&row, SessionRowID).Error; err != nil {
		return SessionStatus{}, err
	}

	status := SessionStatus{
		Enabled:     row.Enabled,
		ExpiresAt:   row.ExpiresAt,
		Description: row.Description,
	}

	if !row.Enabled || row.ExpiresAt == nil || *row.ExpiresAt == "" {
		return status, nil
	}

	expiry, err := s.clock.ParseCivil(*row.ExpiresAt)
	if err != nil {
		s.logger.Warnf(providers.TypeApp, "Unparseable expires_at %q, treating session as not expired: %s", *row.ExpiresAt, err)
		return status, nil
	}

	if expiry.Before(s.clock.Now()) {
		err := s.db.WithContext(ctx).
			Model(&RecordingSession{}).
			Where("id = ?", SessionRowID).
			Update("enabled", false).Error
		if err != nil {
			return SessionStatus{}, err
		}
		status.Enabled = false
	}

	return status, nil
}

// SetStatus unconditionally overwrites all three fields. A nil expiresAt
// means no expiry.
func (s *SessionStore) SetStatus(ctx context.Context, enabled bool, expiresAt, description *string) error {
	return s.db.WithContext(ctx).
		Model(&RecordingSession{}).
		Where("id = ?", SessionRowID).
		Updates(map[string]interface{}{
			"enabled":     enabled,
			"expires_at":  expiresAt,
			"description": description,
		}).Error
}
