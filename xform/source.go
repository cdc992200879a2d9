package xform

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	MatrixLen      = 16
	TranslationLen = 3
	RotationLen    = 4
	ScaleLen       = 3
)

// NodeSource is the transform part of a glTF node as it comes from the asset
// layer. A nil slice means the field is absent. Matrix is column-major and,
// when present, masks the other three fields.
type NodeSource struct {
	Matrix      []float64 `json:"matrix,omitempty" yaml:"matrix,omitempty"`
	Translation []float64 `json:"translation,omitempty" yaml:"translation,omitempty"`
	Rotation    []float64 `json:"rotation,omitempty" yaml:"rotation,omitempty"`
	Scale       []float64 `json:"scale,omitempty" yaml:"scale,omitempty"`
}

type Path int

const (
	PathComponents Path = iota
	PathMatrix
)

func (p Path) String() string {
	if p == PathMatrix {
		return "matrix"
	}
	return "components"
}

func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// representation is either matrixForm or componentsForm
type representation interface {
	extract() (CanonicalTransform, Report)
}

type matrixForm struct {
	m mgl64.Mat4
}

type componentsForm struct {
	translation *mgl64.Vec3
	rotation    *mgl64.Quat
	scale       *mgl64.Vec3
}

// resolve validates the source and picks the representation.
// Nothing after this point looks at NodeSource fields again.
func (s NodeSource) resolve() (representation, error) {
	if s.Matrix != nil {
		if err := checkField("matrix", s.Matrix, MatrixLen); err != nil {
			return nil, err
		}
		var m mgl64.Mat4
		copy(m[:], s.Matrix)
		// scale comes out as column lengths in float32
		for col := 0; col < 3; col++ {
			if m.Col(col).Vec3().Len() > math.MaxFloat32 {
				return nil, tooLargeError("matrix", MatrixLen, col*4)
			}
		}
		return matrixForm{m: m}, nil
	}

	var c componentsForm
	if s.Translation != nil {
		if err := checkField("translation", s.Translation, TranslationLen); err != nil {
			return nil, err
		}
		t := mgl64.Vec3{s.Translation[0], s.Translation[1], s.Translation[2]}
		c.translation = &t
	}
	if s.Rotation != nil {
		if err := checkField("rotation", s.Rotation, RotationLen); err != nil {
			return nil, err
		}
		r := mgl64.Quat{W: s.Rotation[3], V: mgl64.Vec3{s.Rotation[0], s.Rotation[1], s.Rotation[2]}}
		c.rotation = &r
	}
	if s.Scale != nil {
		if err := checkField("scale", s.Scale, ScaleLen); err != nil {
			return nil, err
		}
		for i, v := range s.Scale {
			if math.Abs(v) > math.MaxFloat32 {
				return nil, tooLargeError("scale", ScaleLen, i)
			}
		}
		sc := mgl64.Vec3{s.Scale[0], s.Scale[1], s.Scale[2]}
		c.scale = &sc
	}
	return c, nil
}

func checkField(field string, values []float64, expected int) error {
	if len(values) != expected {
		return lengthError(field, expected, len(values))
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nonFiniteError(field, expected, i)
		}
	}
	return nil
}
