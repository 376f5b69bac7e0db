package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyplan-backend/internal/tasks"
)

func TestResolveColorsEmptyReturnsDefaults(t *testing.T) {
	assert.Equal(t, DefaultPriorityColors(), ResolveColors(nil))
	assert.Equal(t, DefaultPriorityColors(), ResolveColors(PriorityColors{}))
}

func TestResolveColorsPartialOverride(t *testing.T) {
	override := ColorSet{Background: "#000000", Border: "#111111", Badge: "#222222", BadgeText: "#333333"}

	got := ResolveColors(PriorityColors{tasks.PriorityHigh: override})

	assert.Equal(t, override, got[tasks.PriorityHigh])
	assert.Equal(t, DefaultPriorityColors()[tasks.PriorityMedium], got[tasks.PriorityMedium])
	assert.Equal(t, DefaultPriorityColors()[tasks.PriorityLow], got[tasks.PriorityLow])
}

func TestResolveColorsDropsUnknownKeys(t *testing.T) {
	got := ResolveColors(PriorityColors{
		tasks.Priority("urgent"): {Badge: "#ff0000"},
	})
	assert.Equal(t, DefaultPriorityColors(), got)
}

func TestDefaultPriorityColorsValues(t *testing.T) {
	d := DefaultPriorityColors()
	require.NoError(t, d.Validate())

	assert.Equal(t, ColorSet{Background: "#fef2f2", Border: "#fecaca", Badge: "#ef4444", BadgeText: "#ffffff"}, d[tasks.PriorityHigh])
	assert.Equal(t, ColorSet{Background: "#fefce8", Border: "#fef08a", Badge: "#eab308", BadgeText: "#1e293b"}, d[tasks.PriorityMedium])
	assert.Equal(t, ColorSet{Background: "#f0fdf4", Border: "#bbf7d0", Badge: "#22c55e", BadgeText: "#ffffff"}, d[tasks.PriorityLow])
}

func TestDefaultPriorityColorsIsACopy(t *testing.T) {
	d := DefaultPriorityColors()
	d[tasks.PriorityHigh] = ColorSet{}
	assert.NotEqual(t, d[tasks.PriorityHigh], DefaultPriorityColors()[tasks.PriorityHigh])
}

func TestPriorityColorsValidate(t *testing.T) {
	full := DefaultPriorityColors()
	assert.NoError(t, full.Validate())

	partial := PriorityColors{tasks.PriorityHigh: {}}
	assert.Error(t, partial.Validate())

	stray := DefaultPriorityColors()
	stray[tasks.Priority("urgent")] = ColorSet{}
	assert.Error(t, stray.Validate())
}
