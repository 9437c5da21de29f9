package orrery

import (
	"math/rand/v2"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Faultbox/orrery/internal/assets"
	"github.com/Faultbox/orrery/internal/engine/camera"
	"github.com/Faultbox/orrery/internal/engine/scenegraph"
)

type recordingRenderer struct {
	frames  int
	cameras []*camera.Perspective
}

func (r *recordingRenderer) Render(_ *scenegraph.Scene, cam *camera.Perspective) {
	r.frames++
	r.cameras = append(r.cameras, cam)
}

type sizeRecorder struct {
	w, h  int
	calls int
}

func (s *sizeRecorder) Resize(w, h int) {
	s.w, s.h = w, h
	s.calls++
}

func mustVariant(t *testing.T, name string) Variant {
	t.Helper()
	v, err := VariantByName(name)
	require.NoError(t, err)
	return v
}

func testOptions() Options {
	return Options{Width: 800, Height: 600, Rand: rand.New(rand.NewPCG(1, 2))}
}

func newLoader(t *testing.T, fsys fstest.MapFS) *assets.Loader {
	t.Helper()
	l := assets.NewLoader(assets.NewManager(fsys), 2)
	t.Cleanup(l.Close)
	return l
}

// drain polls until the loader has nothing pending.
func drain(t *testing.T, l *assets.Loader) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for l.Pending() > 0 {
		l.Poll()
		if time.Now().After(deadline) {
			t.Fatalf("%d loads still pending", l.Pending())
		}
		time.Sleep(time.Millisecond)
	}
}
