package xform

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Basis columns shorter than this are treated as a collapsed axis.
const DegenerateEpsilon = 1e-8

type Decomposition struct {
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
	Scale       mgl64.Vec3

	// Linear block had a negative determinant, X scale was negated
	Mirrored bool
	// Axes whose basis column collapsed; their scale is 0 and the rotation
	// basis vector is an arbitrary orthonormal completion
	DegenerateAxes [3]bool
}

func (d Decomposition) Degenerate() bool {
	return d.DegenerateAxes[0] || d.DegenerateAxes[1] || d.DegenerateAxes[2]
}

// Decompose splits an affine column-major matrix into translation, rotation
// and scale. Shear is not extracted: scale is the length of each basis column.
//
// A mirrored linear block always gets its sign on the X scale, so the
// rotation part stays a proper rotation (determinant +1).
func Decompose(m mgl64.Mat4) Decomposition {
	d := Decomposition{
		Translation: mgl64.Vec3{m[12], m[13], m[14]},
	}

	var basis [3]mgl64.Vec3
	collapsed := 0
	for i := 0; i < 3; i++ {
		col := m.Col(i).Vec3()
		length := col.Len()
		if length < DegenerateEpsilon || math.IsNaN(length) {
			d.DegenerateAxes[i] = true
			collapsed++
			continue
		}
		d.Scale[i] = length
		basis[i] = col.Mul(1 / length)
	}

	if collapsed == 0 {
		if mgl64.Mat3FromCols(basis[0], basis[1], basis[2]).Det() < 0 {
			d.Mirrored = true
			d.Scale[0] = -d.Scale[0]
			basis[0] = basis[0].Mul(-1)
		}
	} else {
		completeBasis(&basis, d.DegenerateAxes)
	}

	rotation := mgl64.Mat3FromCols(basis[0], basis[1], basis[2])
	d.Rotation = normalizeQuat(mgl64.Mat4ToQuat(rotation.Mat4()))
	return d
}

// completeBasis fills the missing columns so that the result is a
// right-handed orthonormal basis. Completion is cyclic: x = y*z, y = z*x,
// z = x*y.
func completeBasis(basis *[3]mgl64.Vec3, missing [3]bool) {
	present := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		if !missing[i] {
			present = append(present, i)
		}
	}

	if len(present) == 2 {
		i := 3 - present[0] - present[1]
		j, k := (i+1)%3, (i+2)%3
		c := basis[j].Cross(basis[k])
		if c.Len() >= DegenerateEpsilon {
			basis[i] = c.Normalize()
			return
		}
		// remaining columns are parallel, keep only one of them
		present = present[:1]
	}

	switch len(present) {
	case 1:
		g := present[0]
		j, k := (g+1)%3, (g+2)%3
		basis[j] = perpendicular(basis[g])
		basis[k] = basis[g].Cross(basis[j])
	case 0:
		basis[0] = mgl64.Vec3{1, 0, 0}
		basis[1] = mgl64.Vec3{0, 1, 0}
		basis[2] = mgl64.Vec3{0, 0, 1}
	}
}

// perpendicular returns a unit vector orthogonal to the unit vector v.
func perpendicular(v mgl64.Vec3) mgl64.Vec3 {
	axis := mgl64.Vec3{1, 0, 0}
	if math.Abs(v[0]) > 0.9 {
		axis = mgl64.Vec3{0, 1, 0}
	}
	return v.Cross(axis).Normalize()
}
