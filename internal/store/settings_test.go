package store

import (
	"testing"

	"github.com/fekuna/omnipos-register/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings(t *testing.T) {
	s := New()
	assert.Equal(t, model.Settings{SiteName: "EPOS System", Currency: "$"}, s.Settings())

	require.NoError(t, s.UpdateSiteName("  Corner Shop "))
	require.NoError(t, s.UpdateCurrency("€"))
	assert.Equal(t, model.Settings{SiteName: "Corner Shop", Currency: "€"}, s.Settings())

	assert.ErrorIs(t, s.UpdateSiteName(""), model.ErrInvalid)
	assert.ErrorIs(t, s.UpdateCurrency("¥"), model.ErrInvalid)
	assert.Equal(t, "€", s.Settings().Currency)
}

func TestWithSettings(t *testing.T) {
	s := New(WithSettings(model.Settings{SiteName: "Kiosk", Currency: "£"}))
	assert.Equal(t, "Kiosk", s.Settings().SiteName)
}
