package config

// Add Euler angles in degrees next to quaternions when dumping
var eulerOutput bool

func GetEulerOutput() bool {
	return eulerOutput
}

func SetEulerOutput(v bool) {
	eulerOutput = v
}
