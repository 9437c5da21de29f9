package orrery

import (
	"github.com/Faultbox/orrery/internal/engine/material"
	"github.com/Faultbox/orrery/pkg/math"
)

// Sizes and distances are hand-tuned scene units, not physical values.
const (
	SunRadius     = 25
	EarthRadius   = SunRadius / 109.0
	MoonRadius    = EarthRadius / 3.7
	MercuryRadius = EarthRadius / 2.6235
	VenusRadius   = EarthRadius / 1.052
	MarsRadius    = EarthRadius / 1.88

	MercuryDistance = 5.791
	VenusDistance   = 10.82
	EarthDistance   = 14.96
	MarsDistance    = 22.79
	MoonDistance    = 0.03844
)

// DefaultSystemSpec returns the built-in system for a variant.
func DefaultSystemSpec(v Variant) *SystemSpec {
	if !v.Textures {
		return basicSystem()
	}

	sun := BodySpec{
		Name:     "sun",
		Title:    "Sun",
		Radius:   SunRadius,
		Textures: material.TextureSet{Map: "textures/sun.jpg"},
		Material: material.Overrides{Unlit: ptr(true)},
	}
	mercury := PlanetSpec{
		BodySpec: BodySpec{
			Name:     "mercury",
			Title:    "Mercury",
			Radius:   MercuryRadius,
			Textures: material.TextureSet{Map: "textures/mercury.jpg", BumpMap: "textures/mercury_bump.jpg"},
			Material: material.Overrides{BumpScale: ptr[float32](0.02)},
		},
		Distance: MercuryDistance,
	}
	venus := PlanetSpec{
		BodySpec: BodySpec{
			Name:     "venus",
			Title:    "Venus",
			Radius:   VenusRadius,
			Textures: material.TextureSet{Map: "textures/venus.jpg"},
		},
		Distance: VenusDistance,
	}
	earth := PlanetSpec{
		BodySpec: BodySpec{
			Name:   "earth",
			Title:  "Earth",
			Radius: EarthRadius,
			Textures: material.TextureSet{
				Map:         "textures/earth_daymap.jpg",
				BumpMap:     "textures/earth_bump.jpg",
				SpecularMap: "textures/earth_specular.jpg",
			},
			Material: material.Overrides{
				Specular:  ptr(math.Hex(0x333333)),
				Shininess: ptr[float32](15),
				BumpScale: ptr[float32](0.05),
			},
		},
		Distance: EarthDistance,
		Satellites: []SatelliteSpec{{
			BodySpec: BodySpec{
				Name:     "moon",
				Title:    "Moon",
				Radius:   MoonRadius,
				Textures: material.TextureSet{Map: "textures/moon.jpg", BumpMap: "textures/moon_bump.jpg"},
				Material: material.Overrides{BumpScale: ptr[float32](0.02)},
			},
			Distance: MoonDistance,
		}},
	}
	mars := PlanetSpec{
		BodySpec: BodySpec{
			Name:     "mars",
			Title:    "Mars",
			Radius:   MarsRadius,
			Textures: material.TextureSet{Map: "textures/mars.jpg", BumpMap: "textures/mars_bump.jpg"},
			Material: material.Overrides{BumpScale: ptr[float32](0.03)},
		},
		Distance: MarsDistance,
	}

	planets := []*PlanetSpec{&mercury, &venus, &earth, &mars}
	if v.OrbitPaths {
		for _, p := range planets {
			p.Orbit = &OrbitSpec{Visible: true, Flatten: 1}
		}
	}
	if v.Atmosphere {
		earth.Atmosphere = &AtmosphereSpec{
			RadiusDelta: EarthRadius * 0.02,
			Textures:    material.TextureSet{Map: "textures/earth_clouds.png"},
			Material:    material.Overrides{Opacity: ptr[float32](0.8), Transparent: ptr(true)},
		}
	}
	if v.ChaseCameras {
		earth.Camera = &ChaseSpec{Offset: math.V3(0, EarthRadius*2, EarthRadius*7)}
		mars.Camera = &ChaseSpec{Offset: math.V3(0, MarsRadius*2, MarsRadius*7)}
	}
	if v.Info {
		sun.Facts = &Facts{AgeYears: 4.6e9, DiameterKm: 1392700, DistanceKm: 0, TemperatureC: 5505}
		mercury.Facts = &Facts{AgeYears: 4.5e9, DiameterKm: 4879, DistanceKm: 57900000, TemperatureC: 167}
		venus.Facts = &Facts{AgeYears: 4.5e9, DiameterKm: 12104, DistanceKm: 108200000, TemperatureC: 464}
		earth.Facts = &Facts{AgeYears: 4.54e9, DiameterKm: 12742, DistanceKm: 149600000, TemperatureC: 15}
		earth.Satellites[0].Facts = &Facts{AgeYears: 4.53e9, DiameterKm: 3474, DistanceKm: 384400, TemperatureC: -20}
		mars.Facts = &Facts{AgeYears: 4.6e9, DiameterKm: 6779, DistanceKm: 227900000, TemperatureC: -65}
	}

	return &SystemSpec{
		Sun:     sun,
		Planets: []PlanetSpec{mercury, venus, earth, mars},
	}
}

// basicSystem is the untextured layout: mercury hangs off the system root
// and an empty mars pivot exists alongside earth's.
func basicSystem() *SystemSpec {
	return &SystemSpec{
		Sun: BodySpec{
			Name:     "sun",
			Radius:   SunRadius,
			Color:    ptr(math.Hex(0xffff00)),
			Material: material.Overrides{Emissive: ptr(math.Hex(0xffff00))},
		},
		Planets: []PlanetSpec{
			{
				BodySpec: BodySpec{Name: "mercury", Radius: MercuryRadius, Color: ptr(math.Hex(0xd3d3d3))},
				Distance: MercuryDistance,
				NoPivot:  true,
			},
			{
				BodySpec: BodySpec{Name: "earth", Radius: EarthRadius, Color: ptr(math.Hex(0x2233ff))},
				Distance: EarthDistance,
				Satellites: []SatelliteSpec{{
					BodySpec: BodySpec{Name: "moon", Radius: MoonRadius, Color: ptr(math.Hex(0x888888))},
					Distance: MoonDistance,
				}},
			},
		},
		EmptyPivots: []string{"mars"},
	}
}

func ptr[T any](v T) *T {
	return &v
}
