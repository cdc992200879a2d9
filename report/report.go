// Package report renders extracted node transforms for humans.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mogaika/gltf_node_xform/config"
	"github.com/mogaika/gltf_node_xform/utils"
	"github.com/mogaika/gltf_node_xform/utils/gltfutils"
)

type entry struct {
	gltfutils.NodeTransform `yaml:",inline"`
	Euler                   *mgl64.Vec3 `yaml:"euler,omitempty,flow"`
}

func Write(w io.Writer, nodes []*gltfutils.NodeTransform, format config.OutputFormat, euler bool) error {
	switch format {
	case config.FormatText:
		return writeText(w, nodes, euler)
	case config.FormatYAML:
		return writeYAML(w, nodes, euler)
	case config.FormatSpew:
		_, err := io.WriteString(w, utils.SDump(nodes))
		return err
	}
	return errors.Errorf("Unknown output format %q", format)
}

func writeText(w io.Writer, nodes []*gltfutils.NodeTransform, euler bool) error {
	for _, n := range nodes {
		if _, err := io.WriteString(w, FormatNode(n, euler)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func FormatNode(n *gltfutils.NodeTransform, euler bool) string {
	t := n.Transform
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %q %s pos=(%g, %g, %g) rot=(%g, %g, %g, %g) scale=(%g, %g, %g)",
		n.Index, n.Name, n.Report.Path,
		t.Position[0], t.Position[1], t.Position[2],
		t.Rotation.V[0], t.Rotation.V[1], t.Rotation.V[2], t.Rotation.W,
		t.Scale[0], t.Scale[1], t.Scale[2])
	if euler {
		e := utils.QuatToEuler(t.Rotation)
		fmt.Fprintf(&b, " euler=(%.3f, %.3f, %.3f)", e[0], e[1], e[2])
	}
	if n.Report.Mirrored {
		b.WriteString(" mirrored")
	}
	if n.Report.Degenerate() {
		axes := make([]string, 0, 3)
		for i, name := range []string{"x", "y", "z"} {
			if n.Report.DegenerateAxes[i] {
				axes = append(axes, name)
			}
		}
		fmt.Fprintf(&b, " degenerate=%s", strings.Join(axes, ","))
	}
	return b.String()
}

func writeYAML(w io.Writer, nodes []*gltfutils.NodeTransform, euler bool) error {
	entries := make([]entry, len(nodes))
	for i, n := range nodes {
		entries[i].NodeTransform = *n
		if euler {
			e := utils.QuatToEuler(n.Transform.Rotation)
			entries[i].Euler = &e
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return errors.Wrapf(err, "Failed to encode yaml")
	}
	return enc.Close()
}
