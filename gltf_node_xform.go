package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/mogaika/gltf_node_xform/config"
	"github.com/mogaika/gltf_node_xform/report"
	"github.com/mogaika/gltf_node_xform/utils"
	"github.com/mogaika/gltf_node_xform/utils/gltfutils"
	"github.com/mogaika/gltf_node_xform/web"
)

func main() {
	var addr, gltfpath, format string
	var euler, verbose bool
	flag.StringVar(&gltfpath, "gltf", "", "Path to .gltf or .glb file")
	flag.StringVar(&addr, "i", "", "Address of inspector server, print to stdout if empty")
	flag.StringVar(&format, "format", "text", "Output format: "+strings.Join(config.ListOutputFormats(), ", "))
	flag.BoolVar(&euler, "euler", false, "Print euler angles (degrees) next to rotations")
	flag.BoolVar(&verbose, "v", false, "Dump raw gltf nodes to log")
	flag.Parse()

	if gltfpath == "" {
		flag.PrintDefaults()
		return
	}

	if err := config.SetOutputFormat(format); err != nil {
		log.Fatal(err)
	}
	config.SetEulerOutput(euler)

	doc, err := gltfutils.Open(gltfpath)
	if err != nil {
		log.Fatal(err)
	}
	if verbose {
		utils.LogDump("[gltf] nodes", doc.Nodes)
	}

	nodes, err := gltfutils.ExtractNodes(doc)
	if err != nil {
		log.Fatal(err)
	}
	for _, n := range nodes {
		if n.Report.Degenerate() {
			log.Printf("[gltf] Node %d %q has collapsed axes %v, rotation on them is arbitrary",
				n.Index, n.Name, n.Report.DegenerateAxes)
		}
	}

	if addr != "" {
		if err := web.StartServer(addr, nodes); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := report.Write(os.Stdout, nodes, config.GetOutputFormat(), config.GetEulerOutput()); err != nil {
		log.Fatal(err)
	}
}
