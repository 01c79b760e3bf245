package store

import (
	"strings"

	"github.com/fekuna/omnipos-register/internal/model"
)

func (s *Store) Settings() model.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.settings
}

func (s *Store) UpdateSiteName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Invalidf("site name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.SiteName = name
	return nil
}

func (s *Store) UpdateCurrency(symbol string) error {
	if !model.IsSupportedCurrency(symbol) {
		return model.Invalidf("unsupported currency %q", symbol)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.Currency = symbol
	return nil
}
