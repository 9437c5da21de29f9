package orrery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResizeUpdatesEveryCameraAndTarget(t *testing.T) {
	target := &sizeRecorder{}
	opts := testOptions()
	opts.Target = target
	sc, err := Build(mustVariant(t, "solar-full"), opts)
	require.NoError(t, err)

	require.Greater(t, len(sc.Rig.Cameras()), 1)
	assert.Equal(t, 800, target.w)
	assert.Equal(t, 600, target.h)

	sc.Viewport.Resize(1920, 1080)

	for _, c := range sc.Rig.Cameras() {
		assert.InDelta(t, 1920.0/1080.0, c.Aspect, 1e-6, c.Name())
	}
	assert.Equal(t, 1920, target.w)
	assert.Equal(t, 1080, target.h)
	w, h := sc.Viewport.Size()
	assert.Equal(t, [2]int{1920, 1080}, [2]int{w, h})
}

func TestResizeIgnoresDegenerateSize(t *testing.T) {
	target := &sizeRecorder{}
	rig := NewRig()
	v := NewViewport(rig, target, 640, 480)
	calls := target.calls

	v.Resize(0, 480)
	v.Resize(640, -1)

	assert.Equal(t, calls, target.calls)
	assert.InDelta(t, 640.0/480.0, v.Aspect(), 1e-6)
}

func TestSetTarget(t *testing.T) {
	v := NewViewport(NewRig(), nil, 300, 200)
	target := &sizeRecorder{}
	v.SetTarget(target)
	assert.Equal(t, 300, target.w)
	assert.Equal(t, 200, target.h)
}
