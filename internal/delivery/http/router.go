package http

import (
	"net/http"

	"therapy-booking/internal/delivery/graph"
	"therapy-booking/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
)

type Router struct {
	router         *mux.Router
	schema         *graphql.Schema
	corsMiddleware *middleware.CORSMiddleware
}

func NewRouter(schema *graphql.Schema, corsMiddleware *middleware.CORSMiddleware) *Router {
	return &Router{
		router:         mux.NewRouter(),
		schema:         schema,
		corsMiddleware: corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// The Authorization header travels into resolver context; the token
	// gate decides per-operation whether it is required.
	graphqlHandler := graph.WithAuthorizationHeader(&relay.Handler{Schema: r.schema})

	r.router.Handle("/graphql", graphqlHandler).Methods(http.MethodPost)
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
