package models

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"namecard/internal/providers"
)

// LocationStore owns the locations table. Records are append-only until
// deleted; there is no update path.
type LocationStore struct {
	db    *gorm.DB
	clock providers.ClockProviderInterface
}

func NewLocationStore(db *gorm.DB, clock providers.ClockProviderInterface) *LocationStore {
	return &LocationStore{db: db, clock: clock}
}

// ClientMeta is best-effort request context stored alongside a pin.
// Only the admin view ever sees it.
type ClientMeta struct {
	UserAgent  string
	RemoteAddr string
}

// ValidateCoordinates checks the lat/lon ranges. Callers run this before
// any admission logic, so an out-of-range payload reports the range
// problem even while recording is off.
func ValidateCoordinates(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude must be between -90 and 90", ErrValidation)
	}
	if lon < -180 || lon > 180 {
		return fmt.Errorf("%w: longitude must be between -180 and 180", ErrValidation)
	}
	return nil
}

// Insert validates the coordinates, stamps the timestamp in the fixed
// civil timezone and creates the record. A non-empty session token may
// own at most one record; the existence check and the insert run in one
// transaction so two concurrent writes for the same token cannot both
// pass the check.
func (s *LocationStore) Insert(ctx context.Context, lat, lon float64, sessionToken string, meta ClientMeta) (uint, error) {
	if err := ValidateCoordinates(lat, lon); err != nil {
		return 0, err
	}

	record := &LocationRecord{
		Latitude:   lat,
		Longitude:  lon,
		Timestamp:  s.clock.Now(),
		SessionID:  sessionToken,
		UserAgent:  meta.UserAgent,
		RemoteAddr: meta.RemoteAddr,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if sessionToken != "" {
			var owned int64
			if err := tx.Model(&LocationRecord{}).Where("session_id = ?", sessionToken).Count(&owned).Error; err != nil {
				return err
			}
			if owned > 0 {
				return ErrConflict
			}
		}
		return tx.Create(record).Error
	})
	if err != nil {
		return 0, err
	}

	return record.ID, nil
}

// ListAll returns the public projection, most recent first. Records with
// equal timestamps come back in reverse insertion order. An empty store
// yields an empty slice, not an error.
func (s *LocationStore) ListAll(ctx context.Context, limit int) ([]PublicLocation, error) {
	records, err := s.list(ctx, limit)
	if err != nil {
		return nil, err
	}

	public := make([]PublicLocation, 0, len(records))
	for i := range records {
		public = append(public, records[i].Public())
	}
	return public, nil
}

// ListAllWithOwnerInfo is the admin view: same order, but session tokens
// and client meta included.
func (s *LocationStore) ListAllWithOwnerInfo(ctx context.Context) ([]LocationRecord, error) {
	return s.list(ctx, 0)
}

func (s *LocationStore) list(ctx context.Context, limit int) ([]LocationRecord, error) {
	records := make([]LocationRecord, 0)
	q := s.db.WithContext(ctx).Order("timestamp DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// DeleteOwned deletes a record only when both id and session token match.
// A token mismatch and a missing id are deliberately indistinguishable,
// so callers cannot probe which ids exist.
func (s *LocationStore) DeleteOwned(ctx context.Context, id uint, sessionToken string) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND session_id = ?", id, sessionToken).
		Delete(&LocationRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAny deletes by id regardless of owner. Admin only.
func (s *LocationStore) DeleteAny(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&LocationRecord{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count reports the number of stored pins. Used by health and metrics.
func (s *LocationStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&LocationRecord{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
