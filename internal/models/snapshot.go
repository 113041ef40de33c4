package models

import "time"

// Snapshot is the on-disk backup format: the full owner-info view plus
// the session row, as one JSON document.
type Snapshot struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Session     SessionStatus    `json:"session"`
	Locations   []LocationRecord `json:"locations"`
}
