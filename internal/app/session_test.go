package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/orrery/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Data.AssetDir = t.TempDir()
	return cfg
}

func TestNewSessionUnknownVariant(t *testing.T) {
	cfg := testConfig(t)
	cfg.Scene.Variant = "solar-extreme"

	_, err := NewSession(cfg)
	assert.ErrorContains(t, err, "unknown variant")
}

func TestSessionMusicOnlyForMusicVariant(t *testing.T) {
	cfg := testConfig(t)
	cfg.Scene.Variant = "solar-basic"
	s, err := NewSession(cfg)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	assert.Nil(t, s.Music)

	cfg = testConfig(t)
	cfg.Audio.Muted = true
	full, err := NewSession(cfg)
	require.NoError(t, err)
	t.Cleanup(full.Close)
	require.NotNil(t, full.Music)
	assert.True(t, full.Music.Muted())
}

func TestSessionBuildsSceneFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.Scene.Variant = "solar-textured"
	cfg.Scene.File = filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(cfg.Scene.File, []byte(`
sun: {name: star, radius: 4}
planets:
  - {name: rock, radius: 0.5, distance: 3, orbit: {visible: true}}
`), 0644))

	s, err := NewSession(cfg)
	require.NoError(t, err)
	t.Cleanup(s.Close)

	sc, err := s.Build(nil, nil, 640, 480)
	require.NoError(t, err)
	require.NotNil(t, sc.System.Body("rock"))
	assert.Equal(t, "star", sc.System.Sun.Name)
	assert.NotNil(t, sc.Orbit("rock"))
}

func TestSessionRejectsBadSceneFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.Scene.File = filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(cfg.Scene.File, []byte("sun: {name: star, radius: 4, glow: 3}\n"), 0644))

	_, err := NewSession(cfg)
	assert.ErrorContains(t, err, "scene file")
}

func TestFontPath(t *testing.T) {
	cfg := testConfig(t)
	s, err := NewSession(cfg)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	assert.Equal(t, filepath.Join(cfg.Data.AssetDir, "fonts/regular.ttf"), s.FontPath())
}
