package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// QuatToEuler returns roll (X), pitch (Y) and yaw (Z) in degrees for a
// rotation applied as yaw, then pitch, then roll.
func QuatToEuler(q mgl32.Quat) (e mgl64.Vec3) {
	w, x, y, z := float64(q.W), float64(q.V[0]), float64(q.V[1]), float64(q.V[2])

	e[0] = math.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y))

	// clamp at gimbal lock
	sinp := 2 * (w*y - z*x)
	if math.Abs(sinp) >= 1 {
		e[1] = math.Copysign(math.Pi/2, sinp)
	} else {
		e[1] = math.Asin(sinp)
	}

	e[2] = math.Atan2(2*(w*z+x*y), 1-2*(y*y+z*z))

	for i := range e {
		e[i] = mgl64.RadToDeg(e[i])
	}
	return e
}

func FloatArray32to64(in []float32) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = float64(v)
	}
	return out
}
