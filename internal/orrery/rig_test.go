package orrery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/orrery/internal/engine/camera"
	"github.com/Faultbox/orrery/internal/engine/scenegraph"
	"github.com/Faultbox/orrery/pkg/math"
)

func TestActivateIsIdempotent(t *testing.T) {
	rig := NewRig()
	overview := camera.NewPerspective("overview", 75, 1, 0.1, 1000)
	chase := camera.NewPerspective("earth-camera", 75, 1, 0.1, 1000)
	require.NoError(t, rig.Add("overview", overview))
	require.NoError(t, rig.Add("earth-camera", chase))

	assert.Same(t, overview, rig.Active(), "first camera starts active")

	require.NoError(t, rig.Activate("earth-camera"))
	once := rig.Active()
	require.NoError(t, rig.Activate("earth-camera"))
	assert.Same(t, once, rig.Active())
	assert.Same(t, chase, rig.Active())
	assert.Equal(t, "earth-camera", rig.ActiveName())
}

func TestRigErrors(t *testing.T) {
	rig := NewRig()
	cam := camera.NewPerspective("a", 75, 1, 0.1, 1000)
	require.NoError(t, rig.Add("a", cam))

	assert.Error(t, rig.Add("a", cam))
	assert.Error(t, rig.Activate("missing"))
	assert.Same(t, cam, rig.Active(), "failed activation keeps the active camera")
	assert.Equal(t, []string{"a"}, rig.Names())
}

func TestChaseCameraAimsAtPivotOnce(t *testing.T) {
	root := scenegraph.New("system")
	pivot := scenegraph.New("earth-orbit")
	pivot.Position = math.V3(40, 0, 0)
	root.Add(pivot)

	cam := NewChaseCamera("earth-camera", pivot, math.V3(0, 1, 3), 75, 1)

	assert.Same(t, pivot, cam.Node.Parent())
	fwd := cam.Node.WorldMatrix().TransformDir(math.V3(0, 0, -1)).Normalize()
	want := pivot.WorldPosition().Sub(cam.Position()).Normalize()
	assert.True(t, fwd.ApproxEqual(want, 1e-4), "forward %v, want %v", fwd, want)

	// Moving the pivot carries the camera along without re-aiming it.
	rotation := cam.Node.Rotation
	pivot.Position = math.V3(60, 0, 0)
	assert.Equal(t, rotation, cam.Node.Rotation)
	assert.True(t, cam.Position().ApproxEqual(math.V3(60, 1, 3), 1e-4))
}

func TestChaseCameraDoesNotSpinWithBody(t *testing.T) {
	sc, err := Build(mustVariant(t, "solar-full"), testOptions())
	require.NoError(t, err)

	cam := sc.Rig.Camera("earth-camera")
	require.NotNil(t, cam)
	before := cam.Node.WorldMatrix()

	for i := 0; i < 50; i++ {
		sc.Frame()
	}
	assert.NotEqual(t, math.Vec3{}, sc.Scene.Find("earth").Rotation)
	assert.Equal(t, before, cam.Node.WorldMatrix())
}

func TestRigNextWraps(t *testing.T) {
	r := NewRig()
	assert.Equal(t, "", r.Next())

	for _, n := range []string{"a", "b", "c"} {
		require.NoError(t, r.Add(n, camera.NewPerspective(n, 60, 1, 0.1, 10)))
	}
	assert.Equal(t, "b", r.Next())
	assert.Equal(t, "c", r.Next())
	assert.Equal(t, "a", r.Next())
	assert.Same(t, r.Camera("a"), r.Active())
}
