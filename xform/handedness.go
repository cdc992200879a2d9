package xform

import "github.com/go-gl/mathgl/mgl64"

// glTF is right-handed Y-up, the runtime is left-handed Y-up.
// Switching between them mirrors the X axis.

// ConvertMatrix returns S*m*S with S = diag(-1, 1, 1, 1). Every element that
// has exactly one X index (row 0 or column 0, not both) changes sign.
func ConvertMatrix(m mgl64.Mat4) mgl64.Mat4 {
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			if (row == 0) != (col == 0) {
				m[col*4+row] = -m[col*4+row]
			}
		}
	}
	return m
}

// ConvertTranslation negates X. It is its own inverse.
func ConvertTranslation(t mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{-t[0], t[1], t[2]}
}

// ConvertRotation negates the X and Y imaginary parts and keeps Z and W.
// It is its own inverse.
func ConvertRotation(q mgl64.Quat) mgl64.Quat {
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{-q.V[0], -q.V[1], q.V[2]}}
}
