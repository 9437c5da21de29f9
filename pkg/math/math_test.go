package math

import (
	"math"
	"testing"

	"gopkg.in/yaml.v3"
)

const eps = 1e-4

func TestVec3Cross(t *testing.T) {
	got := V3(1, 0, 0).Cross(V3(0, 1, 0))
	if got != V3(0, 0, 1) {
		t.Errorf("Cross() = %v, want (0,0,1)", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	if n := V3(3, 4, 0).Normalize(); math.Abs(float64(n.Length()-1)) > eps {
		t.Errorf("Normalize().Length() = %v, want 1", n.Length())
	}
	if n := (Vec3{}).Normalize(); n != (Vec3{}) {
		t.Errorf("zero Normalize() = %v, want zero", n)
	}
}

func TestHex(t *testing.T) {
	c := Hex(0xff8000)
	if c.R != 1 || c.B != 0 || math.Abs(float64(c.G-128.0/255)) > eps {
		t.Errorf("Hex(0xff8000) = %+v", c)
	}
}

func TestHSL(t *testing.T) {
	tests := []struct {
		h    float32
		want Color
	}{
		{0, Color{1, 0, 0}},
		{1.0 / 3, Color{0, 1, 0}},
		{2.0 / 3, Color{0, 0, 1}},
	}
	for _, tt := range tests {
		got := HSL(tt.h, 1, 0.5)
		if !V3(got.R, got.G, got.B).ApproxEqual(V3(tt.want.R, tt.want.G, tt.want.B), eps) {
			t.Errorf("HSL(%v, 1, 0.5) = %+v, want %+v", tt.h, got, tt.want)
		}
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(V3(1, 2, 3))
	if got := m.Mul(Identity()); got != m {
		t.Errorf("M * I = %v, want %v", got, m)
	}
}

func TestRotateY(t *testing.T) {
	got := RotateY(math.Pi / 2).TransformVec3(V3(1, 0, 0))
	if !got.ApproxEqual(V3(0, 0, -1), eps) {
		t.Errorf("RotateY(90) * X = %v, want (0,0,-1)", got)
	}
}

func TestCompose(t *testing.T) {
	m := Compose(V3(10, 0, 0), V3(0, math.Pi/2, 0), Splat(2))
	got := m.TransformVec3(V3(1, 0, 0))
	if !got.ApproxEqual(V3(10, 0, -2), eps) {
		t.Errorf("Compose point = %v, want (10,0,-2)", got)
	}
	if m.Translation() != V3(10, 0, 0) {
		t.Errorf("Translation() = %v", m.Translation())
	}
}

func TestInverse(t *testing.T) {
	m := Compose(V3(3, -2, 5), V3(0.3, 1.1, -0.4), V3(2, 2, 2))
	got := m.Mul(m.Inverse())
	id := Identity()
	for i := range got {
		if math.Abs(float64(got[i]-id[i])) > eps {
			t.Fatalf("M * M^-1 element %d = %f, want %f", i, got[i], id[i])
		}
	}
}

func TestInverseSingular(t *testing.T) {
	if got := Scale(V3(0, 1, 1)).Inverse(); got != Identity() {
		t.Errorf("singular Inverse() = %v, want identity", got)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(Radians(90), 2, 0.1, 100)
	if math.Abs(float64(m[0]-0.5)) > eps || math.Abs(float64(m[5]-1)) > eps {
		t.Errorf("Perspective focal terms = (%f, %f), want (0.5, 1)", m[0], m[5])
	}
	if m[11] != -1 {
		t.Errorf("Perspective m[11] = %f, want -1", m[11])
	}
}

func TestLookAtEuler(t *testing.T) {
	tests := []struct {
		name     string
		from, to Vec3
	}{
		{"down -z", V3(0, 0, 10), V3(0, 0, 0)},
		{"along +x", V3(0, 0, 0), V3(5, 0, 0)},
		{"pitched", V3(1, 4, 2), V3(-3, 0, 7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := LookAtEuler(tt.from, tt.to)
			m := Compose(Vec3{}, e, Splat(1))
			fwd := m.TransformDir(V3(0, 0, -1))
			want := tt.to.Sub(tt.from).Normalize()
			if !fwd.ApproxEqual(want, eps) {
				t.Errorf("forward = %v, want %v", fwd, want)
			}
		})
	}
}

func TestColorUnmarshalYAML(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"0xff0000", Color{1, 0, 0}, false},
		{`"#00ff00"`, Color{0, 1, 0}, false},
		{"[0, 0, 1]", Color{0, 0, 1}, false},
		{"[1, 2]", Color{}, true},
		{"blue", Color{}, true},
	}
	for _, tt := range tests {
		var c Color
		err := yaml.Unmarshal([]byte(tt.in), &c)
		if (err != nil) != tt.wantErr {
			t.Errorf("Unmarshal(%s) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && c != tt.want {
			t.Errorf("Unmarshal(%s) = %+v, want %+v", tt.in, c, tt.want)
		}
	}
}
