// Package orrery builds and animates the demo scenes: a shapes demo and a
// family of solar-system variants sharing one parameterized scene model.
package orrery

import (
	"fmt"
	"math/rand/v2"

	"golang.org/x/text/language"

	"github.com/Faultbox/orrery/internal/assets"
	"github.com/Faultbox/orrery/internal/engine/camera"
	"github.com/Faultbox/orrery/internal/engine/material"
	"github.com/Faultbox/orrery/internal/engine/scenegraph"
	"github.com/Faultbox/orrery/internal/engine/text"
	"github.com/Faultbox/orrery/internal/engine/texture"
	"github.com/Faultbox/orrery/pkg/math"
)

// OverviewCamera is the name of the camera looking at the whole scene.
const OverviewCamera = "overview"

// StarFieldName is the background sphere's node name.
const StarFieldName = "stars"

const starFieldTexture = "textures/stars_milky_way.jpg"

// AssetLoader is what a scene build needs from the asset loader.
type AssetLoader interface {
	TextureLoader
	LoadFont(name string) *assets.Future[*text.Font]
	// Poll applies finished loads on the calling goroutine.
	Poll() int
}

// MusicPlayer pauses and resumes background music.
type MusicPlayer interface {
	SetPaused(paused bool)
}

// Options carries the collaborators and settings of a build.
type Options struct {
	// Loader may be nil; textures and the label are then never applied.
	Loader   AssetLoader
	Renderer Renderer
	Target   RenderTarget
	Music    MusicPlayer

	Width, Height int
	FOV           float32 // degrees
	OrbitSegments int

	// System replaces the variant's built-in system when set.
	System   *SystemSpec
	FontPath string
	Language language.Tag
	Rand     *rand.Rand
}

func (o *Options) defaults() {
	if o.Width <= 0 || o.Height <= 0 {
		o.Width, o.Height = 1280, 720
	}
	if o.FOV <= 0 {
		o.FOV = 75
	}
	if o.OrbitSegments < 3 {
		o.OrbitSegments = 128
	}
	if o.Language == language.Und {
		o.Language = language.English
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
}

// SceneContext owns everything one running scene needs. Nothing in the
// package keeps scene state outside it.
type SceneContext struct {
	Variant  Variant
	Scene    *scenegraph.Scene
	Rig      *Rig
	Controls *camera.OrbitControls // nil unless the variant has orbit controls
	System   *System               // nil for the shapes demo
	Orbits   []*OrbitPath
	Panel    *Panel // nil unless the variant has a panel
	Driver   *Driver
	Viewport *Viewport

	loader AssetLoader
}

// Build constructs the scene for v and starts its driver.
func Build(v Variant, opts Options) (*SceneContext, error) {
	opts.defaults()

	sc := &SceneContext{
		Variant: v,
		Scene:   scenegraph.NewScene(v.Background),
		Rig:     NewRig(),
		loader:  opts.Loader,
	}
	sc.Driver = NewDriver(sc.Scene, sc.Rig, opts.Renderer, v.Spin)

	var err error
	if v.Shapes {
		err = sc.buildShapes(opts)
	} else {
		err = sc.buildSolar(opts)
	}
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", v.Name, err)
	}

	sc.Viewport = NewViewport(sc.Rig, opts.Target, opts.Width, opts.Height)
	sc.Driver.Start()
	return sc, nil
}

// Frame applies finished asset loads, then runs one driver tick.
func (sc *SceneContext) Frame() {
	if sc.loader != nil {
		sc.loader.Poll()
	}
	sc.Driver.Tick()
}

// Orbit returns the orbit path of a body, or nil.
func (sc *SceneContext) Orbit(body string) *OrbitPath {
	for _, o := range sc.Orbits {
		if o.Name == orbitPathName(body) {
			return o
		}
	}
	return nil
}

func (sc *SceneContext) buildSolar(opts Options) error {
	spec := opts.System
	if spec == nil {
		spec = DefaultSystemSpec(sc.Variant)
	}
	if err := spec.Validate(); err != nil {
		return err
	}
	v := sc.Variant
	aspect := float32(opts.Width) / float32(opts.Height)

	overview := camera.NewPerspective(OverviewCamera, opts.FOV, aspect, 0.1, 1000)
	if v.Textures {
		overview.Node.Position = math.V3(0, 30, 100)
	} else {
		overview.Node.Position = math.V3(0, 0, 80)
	}
	sc.Scene.Add(overview.Node)
	overview.Node.LookAt(math.Vec3{})
	if err := sc.Rig.Add(OverviewCamera, overview); err != nil {
		return err
	}
	if v.OrbitControls {
		sc.Controls = camera.NewOrbitControls(overview, math.Vec3{})
		sc.Controls.MaxDistance = 450
	}

	sc.Scene.Add(scenegraph.NewLight("sunlight", scenegraph.PointLight, math.Hex(0xffffff), 1))
	if v.Textures {
		sc.Scene.Ambient = math.Hex(0x222222)
	} else {
		sc.Scene.Ambient = math.Color{}
	}

	var loader TextureLoader
	if opts.Loader != nil {
		loader = opts.Loader
	}
	sc.System = BuildSystem(loader, sc.Scene.Root, spec)

	if v.SpinAll() {
		// Every node spins, pivots included, so the system root carries
		// everything around the sun.
		sc.System.Root.Walk(func(n *scenegraph.Node) bool {
			sc.Driver.Track(n, v.SpinDelta)
			return true
		})
	} else {
		for _, p := range sc.System.Bodies {
			sc.Driver.Track(p.Body.Node, v.SpinDelta)
		}
	}

	if v.StarField {
		sc.addStarField(loader)
	}

	for _, p := range spec.Planets {
		if v.OrbitPaths && p.Orbit != nil {
			r := spec.Sun.Radius + p.Distance
			flatten := p.Orbit.Flatten
			if flatten <= 0 {
				flatten = 1
			}
			o := NewOrbitPath(sc.Scene.Root, orbitPathName(p.Name), math.Vec3{}, r, r*flatten, opts.OrbitSegments, p.Orbit.Visible)
			sc.Orbits = append(sc.Orbits, o)
		}
		if v.ChaseCameras && p.Camera != nil {
			pivot := sc.System.Pivots[p.Name]
			cam := NewChaseCamera(p.Name+"-camera", pivot, p.Camera.Offset, opts.FOV, aspect)
			if err := sc.Rig.Add(cam.Name(), cam); err != nil {
				return err
			}
		}
	}

	if v.Panel {
		sc.buildPanel(spec, opts)
	}
	return nil
}

func (sc *SceneContext) buildPanel(spec *SystemSpec, opts Options) {
	p := NewPanel("Solar System")
	titles := map[string]string{OverviewCamera: "Overview"}
	for _, pl := range spec.Planets {
		titles[pl.Name+"-camera"] = pl.DisplayName()
	}

	for _, name := range sc.Rig.Names() {
		p.AddAction("View "+titles[name], func() error {
			return sc.Rig.Activate(name)
		})
	}
	for _, pl := range spec.Planets {
		o := sc.Orbit(pl.Name)
		if o == nil {
			continue
		}
		p.AddToggle("Show "+pl.DisplayName()+" orbit", o.Visible(), o.SetVisible)
	}
	if sc.Variant.Music && opts.Music != nil {
		music := opts.Music
		p.AddToggle("Music", true, func(on bool) { music.SetPaused(!on) })
	}
	if sc.Variant.Info {
		for _, pl := range sc.System.Bodies {
			if pl.Spec.Facts == nil {
				continue
			}
			p.AddInfo(InfoBlock{Title: pl.Spec.DisplayName(), Rows: pl.Spec.Facts.Rows(opts.Language)})
		}
	}
	sc.Panel = p
}

// addStarField surrounds the scene with a black sphere that turns into a
// star map once its texture arrives.
func (sc *SceneContext) addStarField(loader TextureLoader) {
	unlit := true
	stars := NewBody(nil, BodyOptions{
		Name:     StarFieldName,
		Radius:   500,
		Parent:   sc.Scene.Root,
		Material: material.Overrides{Unlit: &unlit},
	})
	if loader != nil {
		loader.LoadTexture(starFieldTexture).Then(func(img *texture.Image) {
			stars.Material.SetTexture(material.Map, img)
			stars.Material.Color = math.Hex(0xffffff)
		})
	}
	sc.Driver.Track(stars.Node, sc.Variant.SpinDelta)
}

func orbitPathName(body string) string {
	return body + "-path"
}
