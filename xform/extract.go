// Package xform recovers a node's local transform from glTF (right-handed,
// Y-up) data in left-handed runtime space, whether the node stores a matrix
// or separate translation, rotation and scale.
//
// Everything here is pure and safe to call from any goroutine.
package xform

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	DefaultPosition = mgl64.Vec3{0, 0, 0}
	DefaultRotation = mgl32.QuatIdent()
	DefaultScale    = mgl32.Vec3{1, 1, 1}
)

// CanonicalTransform is a node's local transform in runtime space.
// Position is double precision so deep hierarchies do not drift.
type CanonicalTransform struct {
	Position mgl64.Vec3 `json:"position" yaml:"position,flow"`
	Rotation mgl32.Quat `json:"rotation" yaml:"rotation"`
	Scale    mgl32.Vec3 `json:"scale" yaml:"scale,flow"`
}

func Identity() CanonicalTransform {
	return CanonicalTransform{
		Position: DefaultPosition,
		Rotation: DefaultRotation,
		Scale:    DefaultScale,
	}
}

// Report carries non-fatal diagnostics of one extraction.
type Report struct {
	Path           Path    `json:"path" yaml:"path"`
	Mirrored       bool    `json:"mirrored,omitempty" yaml:"mirrored,omitempty"`
	DegenerateAxes [3]bool `json:"degenerateAxes" yaml:"degenerateAxes,flow"`
}

func (r Report) Degenerate() bool {
	return r.DegenerateAxes[0] || r.DegenerateAxes[1] || r.DegenerateAxes[2]
}

func Extract(source NodeSource) (CanonicalTransform, error) {
	t, _, err := ExtractWithReport(source)
	return t, err
}

// ExtractWithReport is Extract that also returns what happened on the way.
// On error nothing is computed and the zero transform is returned.
func ExtractWithReport(source NodeSource) (CanonicalTransform, Report, error) {
	repr, err := source.resolve()
	if err != nil {
		return CanonicalTransform{}, Report{}, err
	}

	t, report := repr.extract()
	return t, report, nil
}

func (f matrixForm) extract() (CanonicalTransform, Report) {
	src := f.m
	d := Decompose(ConvertMatrix(src))

	t := CanonicalTransform{
		// read from the source matrix, the mirror lives in rotation and scale
		Position: mgl64.Vec3{src[12], src[13], src[14]},
		Rotation: quat32(d.Rotation),
		Scale:    mgl32.Vec3{float32(d.Scale[0]), float32(d.Scale[1]), float32(d.Scale[2])},
	}
	return t, Report{
		Path:           PathMatrix,
		Mirrored:       d.Mirrored,
		DegenerateAxes: d.DegenerateAxes,
	}
}

func (c componentsForm) extract() (CanonicalTransform, Report) {
	t := Identity()
	if c.translation != nil {
		t.Position = ConvertTranslation(*c.translation)
	}
	if c.rotation != nil {
		t.Rotation = quat32(normalizeQuat(ConvertRotation(*c.rotation)))
	}
	if c.scale != nil {
		t.Scale = mgl32.Vec3{float32(c.scale[0]), float32(c.scale[1]), float32(c.scale[2])}
	}
	return t, Report{Path: PathComponents}
}

// ToSource maps a transform back to glTF component fields.
// The sign flips of the component path are involutions, so
// ToSource(Extract(s)) gives s back for component sources.
func ToSource(t CanonicalTransform) NodeSource {
	p := ConvertTranslation(t.Position)
	r := ConvertRotation(quat64(t.Rotation))
	return NodeSource{
		Translation: []float64{p[0], p[1], p[2]},
		Rotation:    []float64{r.V[0], r.V[1], r.V[2], r.W},
		Scale:       []float64{float64(t.Scale[0]), float64(t.Scale[1]), float64(t.Scale[2])},
	}
}

// normalizeQuat scales by the largest component first, so a finite
// quaternion whose length overflows float64 keeps its direction.
func normalizeQuat(q mgl64.Quat) mgl64.Quat {
	largest := math.Max(math.Max(math.Abs(q.W), math.Abs(q.V[0])), math.Max(math.Abs(q.V[1]), math.Abs(q.V[2])))
	if largest == 0 {
		return mgl64.QuatIdent()
	}
	return mgl64.Quat{W: q.W / largest, V: q.V.Mul(1 / largest)}.Normalize()
}

func quat32(q mgl64.Quat) mgl32.Quat {
	return mgl32.Quat{
		W: float32(q.W),
		V: mgl32.Vec3{float32(q.V[0]), float32(q.V[1]), float32(q.V[2])},
	}.Normalize()
}

func quat64(q mgl32.Quat) mgl64.Quat {
	return mgl64.Quat{
		W: float64(q.W),
		V: mgl64.Vec3{float64(q.V[0]), float64(q.V[1]), float64(q.V[2])},
	}
}
