package models

import "time"

// LocationRecord is a single "where we met" pin dropped by a visitor.
type LocationRecord struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Latitude   float64   `gorm:"not null" json:"latitude"`
	Longitude  float64   `gorm:"not null" json:"longitude"`
	Timestamp  time.Time `gorm:"not null;index" json:"timestamp"`
	SessionID  string    `gorm:"index" json:"session_id"`
	UserAgent  string    `json:"user_agent"`
	RemoteAddr string    `json:"ip_address"`
}

func (LocationRecord) TableName() string {
	return "locations"
}

// PublicLocation is the projection served to anonymous visitors.
// It omits the session token and client meta.
type PublicLocation struct {
	ID        uint      `json:"id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

func (r *LocationRecord) Public() PublicLocation {
	return PublicLocation{
		ID:        r.ID,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Timestamp: r.Timestamp,
	}
}
