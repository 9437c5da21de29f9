package math

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is a linear RGB colour with components in [0, 1].
type Color struct {
	R, G, B float32
}

// Hex converts a 0xRRGGBB value to a Color.
func Hex(rgb uint32) Color {
	return Color{
		R: float32((rgb>>16)&0xff) / 255,
		G: float32((rgb>>8)&0xff) / 255,
		B: float32(rgb&0xff) / 255,
	}
}

// HSL converts hue, saturation and lightness (all in [0, 1]) to a Color.
func HSL(h, s, l float32) Color {
	if s == 0 {
		return Color{l, l, l}
	}
	var q float32
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return Color{
		R: hueToRGB(p, q, h+1.0/3),
		G: hueToRGB(p, q, h),
		B: hueToRGB(p, q, h-1.0/3),
	}
}

func hueToRGB(p, q, t float32) float32 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// UnmarshalYAML accepts 0xRRGGBB integers, "#rrggbb" strings or [r, g, b] lists.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var rgb []float32
		if err := value.Decode(&rgb); err != nil {
			return err
		}
		if len(rgb) != 3 {
			return fmt.Errorf("line %d: colour list needs 3 components, got %d", value.Line, len(rgb))
		}
		*c = Color{rgb[0], rgb[1], rgb[2]}
		return nil
	case yaml.ScalarNode:
		var (
			v   uint64
			err error
		)
		if hex, ok := strings.CutPrefix(value.Value, "#"); ok {
			v, err = strconv.ParseUint(hex, 16, 32)
		} else {
			v, err = strconv.ParseUint(value.Value, 0, 32)
		}
		if err != nil {
			return fmt.Errorf("line %d: invalid colour %q", value.Line, value.Value)
		}
		*c = Hex(uint32(v))
		return nil
	}
	return fmt.Errorf("line %d: invalid colour", value.Line)
}
