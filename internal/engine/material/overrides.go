package material

import "github.com/Faultbox/orrery/pkg/math"

// Overrides lists every material property a scene may set. Nil fields keep
// the material's current value.
type Overrides struct {
	Color             *math.Color `yaml:"color"`
	Emissive          *math.Color `yaml:"emissive"`
	EmissiveIntensity *float32    `yaml:"emissive_intensity"`
	Specular          *math.Color `yaml:"specular"`
	Shininess         *float32    `yaml:"shininess"`
	BumpScale         *float32    `yaml:"bump_scale"`
	Opacity           *float32    `yaml:"opacity"`
	Transparent       *bool       `yaml:"transparent"`
	DepthWrite        *bool       `yaml:"depth_write"`
	DoubleSided       *bool       `yaml:"double_sided"`
	Unlit             *bool       `yaml:"unlit"`
}

// Apply copies every set field onto m.
func (o Overrides) Apply(m *Material) {
	if o.Color != nil {
		m.Color = *o.Color
	}
	if o.Emissive != nil {
		m.Emissive = *o.Emissive
	}
	if o.EmissiveIntensity != nil {
		m.EmissiveIntensity = *o.EmissiveIntensity
	}
	if o.Specular != nil {
		m.Specular = *o.Specular
	}
	if o.Shininess != nil {
		m.Shininess = *o.Shininess
	}
	if o.BumpScale != nil {
		m.BumpScale = *o.BumpScale
	}
	if o.Opacity != nil {
		m.Opacity = *o.Opacity
	}
	if o.Transparent != nil {
		m.Transparent = *o.Transparent
	}
	if o.DepthWrite != nil {
		m.DepthWrite = *o.DepthWrite
	}
	if o.DoubleSided != nil {
		if *o.DoubleSided {
			m.Side = DoubleSide
		} else {
			m.Side = FrontSide
		}
	}
	if o.Unlit != nil {
		m.Unlit = *o.Unlit
	}
}
