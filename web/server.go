package web

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/mogaika/gltf_node_xform/utils/gltfutils"
)

func NewRouter(nodes []*gltfutils.NodeTransform) *mux.Router {
	nh := &nodeHandlers{nodes: nodes}

	r := mux.NewRouter()
	r.HandleFunc("/json/nodes", nh.HandlerNodes).Methods(http.MethodGet)
	r.HandleFunc("/json/nodes/{id}", nh.HandlerNode).Methods(http.MethodGet)
	r.HandleFunc("/json/extract", HandlerExtract).Methods(http.MethodPost)
	return r
}

func StartServer(addr string, nodes []*gltfutils.NodeTransform) error {
	r := NewRouter(nodes)

	h := handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(r)
	h = handlers.LoggingHandler(os.Stdout, h)

	log.Printf("[web] Starting server %v with %d nodes", addr, len(nodes))

	return http.ListenAndServe(addr, h)
}
