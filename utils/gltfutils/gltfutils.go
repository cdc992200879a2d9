package gltfutils

import (
	"io"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"

	"github.com/mogaika/gltf_node_xform/utils"
	"github.com/mogaika/gltf_node_xform/xform"
)

var (
	identityMatrix = [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	identityQuat   = [4]float32{0, 0, 0, 1}
	unitScale      = [3]float32{1, 1, 1}
	zeroMatrix     [16]float32
	zeroQuat       [4]float32
	zeroVec3       [3]float32
)

type NodeTransform struct {
	Index     int                      `json:"index" yaml:"index"`
	Name      string                   `json:"name,omitempty" yaml:"name,omitempty"`
	Source    xform.NodeSource         `json:"source" yaml:"source"`
	Transform xform.CanonicalTransform `json:"transform" yaml:"transform"`
	Report    xform.Report             `json:"report" yaml:"report"`
}

func Open(path string) (*gltf.Document, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to open gltf %q", path)
	}
	return doc, nil
}

func Decode(r io.Reader) (*gltf.Document, error) {
	var doc gltf.Document
	if err := gltf.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrapf(err, "Failed to decode gltf")
	}
	return &doc, nil
}

// NodeSource picks the fields of n that carry a transform.
// The gltf decoder fills absent matrix, rotation and scale with their
// defaults, so only those defaults read as absent and explicit zeros are
// kept. A node built in Go has a zero Matrix next to non-default TRS; its
// zero fields are unset, not zero. The one case this cannot tell apart is
// a Go node with zero Matrix and default TRS, which reads as a zero matrix.
func NodeSource(n *gltf.Node) xform.NodeSource {
	var s xform.NodeSource
	trsDefault := n.Translation == zeroVec3 && n.Rotation == identityQuat && n.Scale == unitScale
	builtInGo := n.Matrix == zeroMatrix && !trsDefault

	if !builtInGo && n.Matrix != identityMatrix {
		s.Matrix = utils.FloatArray32to64(n.Matrix[:])
		return s
	}
	if n.Translation != zeroVec3 {
		s.Translation = utils.FloatArray32to64(n.Translation[:])
	}
	// zero quaternion is not a rotation
	if n.Rotation != zeroQuat && n.Rotation != identityQuat {
		s.Rotation = utils.FloatArray32to64(n.Rotation[:])
	}
	if n.Scale != unitScale && !(builtInGo && n.Scale == zeroVec3) {
		s.Scale = utils.FloatArray32to64(n.Scale[:])
	}
	return s
}

func ExtractNode(doc *gltf.Document, index int) (*NodeTransform, error) {
	if index < 0 || index >= len(doc.Nodes) {
		return nil, errors.Errorf("Node %d out of range [0,%d)", index, len(doc.Nodes))
	}
	n := doc.Nodes[index]
	nt := &NodeTransform{
		Index:  index,
		Name:   n.Name,
		Source: NodeSource(n),
	}

	var err error
	nt.Transform, nt.Report, err = xform.ExtractWithReport(nt.Source)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to extract transform of node %d %q", index, n.Name)
	}
	return nt, nil
}

func ExtractNodes(doc *gltf.Document) ([]*NodeTransform, error) {
	result := make([]*NodeTransform, len(doc.Nodes))
	for i := range doc.Nodes {
		nt, err := ExtractNode(doc, i)
		if err != nil {
			return nil, err
		}
		result[i] = nt
	}
	return result, nil
}
