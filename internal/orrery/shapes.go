package orrery

import (
	"fmt"
	"image/color"

	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/engine/camera"
	"github.com/Faultbox/orrery/internal/engine/geometry"
	"github.com/Faultbox/orrery/internal/engine/material"
	"github.com/Faultbox/orrery/internal/engine/scenegraph"
	"github.com/Faultbox/orrery/internal/engine/text"
	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/pkg/math"
)

// LabelText is the string the shapes demo loads a font to draw.
const LabelText = "Oof"

// shapeSpin is the per-tick rotation of the i-th shape; later shapes turn
// faster.
func shapeSpin(i int) math.Vec3 {
	r := 0.01 * (1 + float32(i)*0.1)
	return math.V3(r, r, 0)
}

func (sc *SceneContext) buildShapes(opts Options) error {
	aspect := float32(opts.Width) / float32(opts.Height)
	cam := camera.NewPerspective(OverviewCamera, opts.FOV, aspect, 0.1, 1000)
	cam.Node.Position = math.V3(0, 0, 10)
	sc.Scene.Add(cam.Node)
	if err := sc.Rig.Add(OverviewCamera, cam); err != nil {
		return err
	}

	light := scenegraph.NewLight("light", scenegraph.DirectionalLight, math.Hex(0xffffff), 1)
	light.Position = math.V3(-1, 2, 4)
	sc.Scene.Add(light)
	sc.Scene.Ambient = math.Color{}

	box := geometry.Box(1, 1, 1)
	index := 0
	add := func(n *scenegraph.Node, x, y float32) {
		n.Position = math.V3(x, y, 0)
		sc.Scene.Add(n)
		sc.Driver.Track(n, shapeSpin(index))
		index++
	}

	for i, x := range []float32{0, 2, -2} {
		add(scenegraph.NewMesh(boxName(i), box, randomMaterial(opts)), x, 0)
	}

	edges := scenegraph.New("edges")
	edges.Line = &scenegraph.Line{
		Points:   geometry.BoxEdges(1, 1, 1),
		Segments: true,
		Material: &material.Line{Color: math.Hex(0x000000)},
	}
	add(edges, 4, 0)

	if opts.Loader == nil || opts.FontPath == "" {
		return nil
	}
	log := logger.Named("shapes")
	opts.Loader.LoadFont(opts.FontPath).Then(func(f *text.Font) {
		label, err := f.Rasterize(LabelText, 128, color.White, 8)
		if err != nil {
			log.Debug("label not drawn", zap.Error(err))
			return
		}
		const height = 2
		mat := randomMaterial(opts)
		mat.SetTexture(material.Map, label.Image)
		mat.Transparent = true
		mat.DepthWrite = false

		// The label is centred inside a parent so it spins around its middle.
		parent := scenegraph.New("label")
		parent.Add(scenegraph.NewMesh("label-text", geometry.Plane(height*label.Aspect, height), mat))
		add(parent, 0, 4)
	})
	return nil
}

func boxName(i int) string {
	return fmt.Sprintf("box-%d", i)
}

func randomMaterial(opts Options) *material.Material {
	m := material.New(math.HSL(opts.Rand.Float32(), 1, 0.5))
	m.Side = material.DoubleSide
	return m
}
