package orrery

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/orrery/internal/engine/material"
	"github.com/Faultbox/orrery/internal/engine/scenegraph"
	"github.com/Faultbox/orrery/pkg/math"
)

// BodySpec describes one sphere of the system.
type BodySpec struct {
	Name       string              `yaml:"name"`
	Title      string              `yaml:"title"` // display name, defaults to Name
	Radius     float32             `yaml:"radius"`
	Color      *math.Color         `yaml:"color"` // white when unset
	Textures   material.TextureSet `yaml:"textures"`
	Material   material.Overrides  `yaml:"material"`
	Atmosphere *AtmosphereSpec     `yaml:"atmosphere"`
	Facts      *Facts              `yaml:"facts"`
}

// AtmosphereSpec describes a translucent shell.
type AtmosphereSpec struct {
	RadiusDelta float32             `yaml:"radius_delta"`
	Textures    material.TextureSet `yaml:"textures"`
	Material    material.Overrides  `yaml:"material"`
}

// PlanetSpec is a body orbiting the sun.
type PlanetSpec struct {
	BodySpec `yaml:",inline"`

	// Distance is measured from the sun's surface. The orbital radius is
	// the sun's radius plus Distance.
	Distance float32 `yaml:"distance"`
	// NoPivot places the planet directly under the system root.
	NoPivot bool `yaml:"no_pivot"`

	Orbit      *OrbitSpec      `yaml:"orbit"`
	Camera     *ChaseSpec      `yaml:"camera"`
	Satellites []SatelliteSpec `yaml:"satellites"`
}

// SatelliteSpec is a body placed next to its primary inside the primary's pivot.
type SatelliteSpec struct {
	BodySpec `yaml:",inline"`

	// Distance is measured from the primary's surface.
	Distance float32 `yaml:"distance"`
}

// OrbitSpec requests an orbit path for a planet.
type OrbitSpec struct {
	Visible bool `yaml:"visible"`
	// Flatten scales the Z radius; 1 draws a circle.
	Flatten float32 `yaml:"flatten"`
}

// ChaseSpec requests a camera riding the planet's pivot.
type ChaseSpec struct {
	Offset math.Vec3 `yaml:"offset"`
}

// SystemSpec is the full description of a solar system scene.
type SystemSpec struct {
	Sun     BodySpec     `yaml:"sun"`
	Planets []PlanetSpec `yaml:"planets"`
	// EmptyPivots are extra pivots with nothing attached.
	EmptyPivots []string `yaml:"empty_pivots"`
}

// Validate checks body and pivot names are unique and every body has a
// positive radius.
func (s *SystemSpec) Validate() error {
	seen := map[string]bool{}
	var errs []error
	check := func(b BodySpec) {
		switch {
		case b.Name == "":
			errs = append(errs, errors.New("body with empty name"))
		case seen[b.Name]:
			errs = append(errs, fmt.Errorf("duplicate body name %q", b.Name))
		}
		seen[b.Name] = true
		if b.Radius <= 0 {
			errs = append(errs, fmt.Errorf("body %q: radius must be positive", b.Name))
		}
		if b.Atmosphere != nil && b.Atmosphere.RadiusDelta < 0 {
			errs = append(errs, fmt.Errorf("body %q: negative atmosphere radius_delta", b.Name))
		}
	}
	check(s.Sun)
	for _, p := range s.Planets {
		check(p.BodySpec)
		if p.NoPivot && len(p.Satellites) > 0 {
			errs = append(errs, fmt.Errorf("planet %q: satellites need a pivot", p.Name))
		}
		if p.NoPivot && p.Camera != nil {
			errs = append(errs, fmt.Errorf("planet %q: chase camera needs a pivot", p.Name))
		}
		for _, m := range p.Satellites {
			check(m.BodySpec)
		}
	}

	pivots := map[string]bool{}
	for _, p := range s.Planets {
		if !p.NoPivot {
			pivots[p.Name] = true
		}
	}
	for _, name := range s.EmptyPivots {
		switch {
		case name == "":
			errs = append(errs, errors.New("empty pivot with empty name"))
		case pivots[name]:
			errs = append(errs, fmt.Errorf("duplicate pivot name %q", name))
		}
		pivots[name] = true
	}
	return errors.Join(errs...)
}

// LoadSystemSpec reads a YAML system description. Unknown keys, including
// misspelled material properties, are rejected.
func LoadSystemSpec(path string) (*SystemSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	spec, err := ParseSystemSpec(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}

// ParseSystemSpec decodes and validates a YAML system description.
func ParseSystemSpec(data []byte) (*SystemSpec, error) {
	var spec SystemSpec
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty system description")
		}
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Placement records where a body was put.
type Placement struct {
	Body *Body
	// Pivot is nil for bodies placed directly under the system root.
	Pivot *scenegraph.Node
	// OrbitalRadius is the pivot's (or body's) distance from the system origin.
	OrbitalRadius float32
	Spec          BodySpec
	Primary       string // set for satellites
}

// System is a built solar system.
type System struct {
	Root   *scenegraph.Node
	Sun    *Body
	Bodies []*Placement // sun first, then in declaration order
	Pivots map[string]*scenegraph.Node
}

// Body returns the placement of a body by name.
func (s *System) Body(name string) *Placement {
	for _, p := range s.Bodies {
		if p.Body.Name == name {
			return p
		}
	}
	return nil
}

// BuildSystem builds spec under parent: a "system" root holding the sun at
// the origin and one pivot per planet at the planet's orbital radius along
// +X. Each planet sits at the centre of its pivot; satellites sit beside it
// in the same pivot.
func BuildSystem(loader TextureLoader, parent *scenegraph.Node, spec *SystemSpec) *System {
	root := scenegraph.New("system")
	parent.Add(root)

	sys := &System{Root: root, Pivots: map[string]*scenegraph.Node{}}

	sys.Sun = NewBody(loader, bodyOptions(spec.Sun, root, math.Vec2{}))
	sys.Bodies = append(sys.Bodies, &Placement{Body: sys.Sun, Spec: spec.Sun})

	for _, p := range spec.Planets {
		radius := spec.Sun.Radius + p.Distance

		if p.NoPivot {
			b := NewBody(loader, bodyOptions(p.BodySpec, root, math.Vec2{X: radius}))
			sys.Bodies = append(sys.Bodies, &Placement{Body: b, OrbitalRadius: radius, Spec: p.BodySpec})
			continue
		}

		pivot := scenegraph.New(PivotName(p.Name))
		pivot.Position = math.V3(radius, 0, 0)
		root.Add(pivot)
		sys.Pivots[p.Name] = pivot

		b := NewBody(loader, bodyOptions(p.BodySpec, pivot, math.Vec2{}))
		sys.Bodies = append(sys.Bodies, &Placement{Body: b, Pivot: pivot, OrbitalRadius: radius, Spec: p.BodySpec})

		for _, m := range p.Satellites {
			offset := math.Vec2{X: p.Radius + m.Distance}
			sb := NewBody(loader, bodyOptions(m.BodySpec, pivot, offset))
			sys.Bodies = append(sys.Bodies, &Placement{
				Body:          sb,
				Pivot:         pivot,
				OrbitalRadius: radius,
				Spec:          m.BodySpec,
				Primary:       p.Name,
			})
		}
	}

	for _, name := range spec.EmptyPivots {
		pivot := scenegraph.New(PivotName(name))
		root.Add(pivot)
		sys.Pivots[name] = pivot
	}
	return sys
}

// PivotName returns the node name of a planet's pivot.
func PivotName(body string) string {
	return body + "-orbit"
}

func bodyOptions(b BodySpec, parent *scenegraph.Node, offset math.Vec2) BodyOptions {
	color := math.Hex(0xffffff)
	if b.Color != nil {
		color = *b.Color
	}
	opts := BodyOptions{
		Name:     b.Name,
		Radius:   b.Radius,
		Offset:   offset,
		Parent:   parent,
		Color:    color,
		Textures: b.Textures,
		Material: b.Material,
	}
	if b.Atmosphere != nil {
		opts.Atmosphere = &AtmosphereOptions{
			RadiusDelta: b.Atmosphere.RadiusDelta,
			Textures:    b.Atmosphere.Textures,
			Material:    b.Atmosphere.Material,
		}
	}
	return opts
}

// DisplayName returns Title, or Name when Title is empty.
func (b BodySpec) DisplayName() string {
	if b.Title != "" {
		return b.Title
	}
	return b.Name
}
