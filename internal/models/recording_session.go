package models

import "time"

// SessionRowID pins the recording session to a single row. The row is
// seeded at bootstrap and never deleted.
const SessionRowID = 1

// RecordingSession is the admin-controlled switch gating location writes.
// ExpiresAt is kept as the raw string the admin submitted; it is parsed
// lazily on read so an unparseable value degrades gracefully instead of
// poisoning the row.
type RecordingSession struct {
	ID          uint `gorm:"primaryKey"`
	Enabled     bool `gorm:"not null;default:false"`
	CreatedAt   time.Time
	ExpiresAt   *string
	Description *string
}

func (RecordingSession) TableName() string {
	return "recording_sessions"
}

// SessionStatus is the wire shape of the recording session.
type SessionStatus struct {
	Enabled     bool    `json:"enabled"`
	ExpiresAt   *string `json:"expires_at"`
	Description *string `json:"description"`
}
