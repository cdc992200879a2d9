package web

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/mogaika/gltf_node_xform/utils/gltfutils"
	"github.com/mogaika/gltf_node_xform/webutils"
	"github.com/mogaika/gltf_node_xform/xform"
)

// nodeHandlers serve a snapshot taken at start, it is never modified
type nodeHandlers struct {
	nodes []*gltfutils.NodeTransform
}

func (nh *nodeHandlers) HandlerNodes(w http.ResponseWriter, r *http.Request) {
	webutils.WriteJson(w, nh.nodes)
}

func (nh *nodeHandlers) HandlerNode(w http.ResponseWriter, r *http.Request) {
	param := mux.Vars(r)["id"]
	id, err := strconv.Atoi(param)
	if err != nil {
		webutils.WriteError(w, http.StatusBadRequest, errors.Errorf("param '%s' is not integer", param))
		return
	}
	if id < 0 || id >= len(nh.nodes) {
		webutils.WriteError(w, http.StatusNotFound, errors.Errorf("Node %d not found", id))
		return
	}
	webutils.WriteJson(w, nh.nodes[id])
}

type extractResult struct {
	Transform xform.CanonicalTransform `json:"transform"`
	Report    xform.Report             `json:"report"`
}

func HandlerExtract(w http.ResponseWriter, r *http.Request) {
	var src xform.NodeSource
	if err := webutils.ReadJson(r, &src); err != nil {
		webutils.WriteError(w, http.StatusBadRequest, err)
		return
	}

	t, report, err := xform.ExtractWithReport(src)
	if err != nil {
		status := http.StatusInternalServerError
		if xform.IsValidationError(err) {
			status = http.StatusUnprocessableEntity
		}
		webutils.WriteError(w, status, err)
		return
	}
	webutils.WriteJson(w, &extractResult{Transform: t, Report: report})
}
