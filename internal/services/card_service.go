package services

import (
	"fmt"
	"os"
	"sync"

	json "github.com/goccy/go-json"

	"namecard/internal/providers"
	"namecard/internal/structures"
)

type SocialLink struct {
	Label   string `json:"label"`
	URL     string `json:"url"`
	Enabled bool   `json:"enabled"`
}

// Card is the displayable business-card document. It lives in a JSON file
// next to the database, editable through the admin API.
type Card struct {
	Name        string       `json:"name"`
	Title       string       `json:"title"`
	Company     string       `json:"company"`
	Website     string       `json:"website"`
	Email       string       `json:"email"`
	Description string       `json:"description"`
	SocialLinks []SocialLink `json:"social_links"`
}

type CardServiceInterface interface {
	PublicCard() map[string]interface{}
	FullCard() Card
	Save(card Card) error
}

type CardService struct {
	mu     sync.RWMutex
	path   string
	card   Card
	logger providers.Logger
}

func DefaultCard() Card {
	return Card{
		Name:        "Your Name",
		Title:       "Your Title",
		Company:     "Your Company",
		Website:     "https://example.com",
		Email:       "you@example.com",
		Description: "A short introduction goes here.",
	}
}

// NewCardService loads the card document. A missing file falls back to
// the default card; a corrupt file is a boot error.
func NewCardService(conf *structures.Config, logger providers.Logger) (CardServiceInterface, error) {
	s := &CardService{path: conf.Card.FilePath, logger: logger}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read card config %s: %w", s.path, err)
		}
		logger.Infof(providers.TypeApp, "Card config %s missing, using defaults", s.path)
		s.card = DefaultCard()
		return s, nil
	}

	if err := json.Unmarshal(data, &s.card); err != nil {
		return nil, fmt.Errorf("parse card config %s: %w", s.path, err)
	}
	return s, nil
}

// PublicCard filters the document for anonymous visitors: empty fields
// are dropped and only enabled social links are included.
func (s *CardService) PublicCard() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]interface{})
	fields := map[string]string{
		"name":        s.card.Name,
		"title":       s.card.Title,
		"company":     s.card.Company,
		"website":     s.card.Website,
		"email":       s.card.Email,
		"description": s.card.Description,
	}
	for k, v := range fields {
		if v != "" {
			out[k] = v
		}
	}

	links := make([]SocialLink, 0)
	for _, l := range s.card.SocialLinks {
		if l.Enabled && l.URL != "" {
			links = append(links, l)
		}
	}
	if len(links) > 0 {
		out["social_links"] = links
	}

	return out
}

func (s *CardService) FullCard() Card {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.card
}

// Save replaces the document and persists it atomically (tmp file, sync,
// rename), so a crash mid-write never leaves a truncated config behind.
func (s *CardService) Save(card Card) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(card, "", "  ")
	if err != nil {
		return err
	}

	tmpFile := s.path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	if _, err = file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}
	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}
	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}
	if err = os.Rename(tmpFile, s.path); err != nil {
		os.Remove(tmpFile)
		return err
	}

	s.card = card
	return nil
}
