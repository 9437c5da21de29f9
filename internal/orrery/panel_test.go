package orrery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMusic struct {
	paused []bool
}

func (m *fakeMusic) SetPaused(p bool) {
	m.paused = append(m.paused, p)
}

func TestPanelCameraActions(t *testing.T) {
	sc, err := Build(mustVariant(t, "solar-atmosphere"), testOptions())
	require.NoError(t, err)
	require.NotNil(t, sc.Panel)

	var labels []string
	for _, a := range sc.Panel.Actions {
		labels = append(labels, a.Label)
	}
	assert.Equal(t, []string{"View Overview", "View Earth", "View Mars"}, labels)

	require.NoError(t, sc.Panel.Trigger("View Earth"))
	assert.Equal(t, "earth-camera", sc.Rig.ActiveName())
	require.NoError(t, sc.Panel.Trigger("View Overview"))
	assert.Equal(t, OverviewCamera, sc.Rig.ActiveName())

	assert.Error(t, sc.Panel.Trigger("View Pluto"))
}

func TestPanelOrbitToggles(t *testing.T) {
	sc, err := Build(mustVariant(t, "solar-atmosphere"), testOptions())
	require.NoError(t, err)

	orbit := sc.Orbit("earth")
	require.NotNil(t, orbit)

	require.NoError(t, sc.Panel.SetToggle("Show Earth orbit", false))
	assert.Equal(t, OrbitDimColor, orbit.Material.Color)
	assert.False(t, sc.Panel.Toggle("Show Earth orbit").Value)

	require.NoError(t, sc.Panel.SetToggle("Show Earth orbit", true))
	assert.Equal(t, OrbitVisibleColor, orbit.Material.Color)

	assert.Error(t, sc.Panel.SetToggle("Show Pluto orbit", true))
	assert.Len(t, sc.Panel.Toggles, 4)
	assert.Empty(t, sc.Panel.Info, "info rows come with the full variant")
}

func TestPanelMusicAndInfo(t *testing.T) {
	music := &fakeMusic{}
	opts := testOptions()
	opts.Music = music
	sc, err := Build(mustVariant(t, "solar-full"), opts)
	require.NoError(t, err)

	require.NoError(t, sc.Panel.SetToggle("Music", false))
	require.NoError(t, sc.Panel.SetToggle("Music", false))
	require.NoError(t, sc.Panel.SetToggle("Music", true))
	assert.Equal(t, []bool{true, false}, music.paused, "unchanged values do not notify")

	require.Len(t, sc.Panel.Info, 6)
	assert.Equal(t, "Sun", sc.Panel.Info[0].Title)
	earth := sc.Panel.Info[3]
	assert.Equal(t, "Earth", earth.Title)
	assert.Contains(t, earth.Rows, InfoRow{Label: "Diameter", Value: "12,742 km"})
}

func TestNoPanelWithoutFeature(t *testing.T) {
	sc, err := Build(mustVariant(t, "solar-textured"), testOptions())
	require.NoError(t, err)
	assert.Nil(t, sc.Panel)
	assert.Equal(t, []string{OverviewCamera}, sc.Rig.Names())
}
