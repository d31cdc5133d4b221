package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/kernel808/banknet/internal/adapter/http/middleware"
)

// PublicRouteRegistrar attaches routes served without authentication.
type PublicRouteRegistrar interface {
	RegisterPublicRoutes(router *mux.Router)
}

// RouteRegistrar attaches routes served behind the session middleware.
type RouteRegistrar interface {
	RegisterRoutes(router *mux.Router)
}

// New assembles the HTTP surface: swagger docs and the login route are
// public, everything else under /api requires a bearer token.
func New(parser middleware.TokenParser, allowedOrigins []string, public []PublicRouteRegistrar, protected []RouteRegistrar) http.Handler {
	root := mux.NewRouter()
	registerSwaggerRoutes(root)

	api := root.PathPrefix("/api").Subrouter()
	for _, registrar := range public {
		registrar.RegisterPublicRoutes(api)
	}

	authed := root.PathPrefix("/api").Subrouter()
	authed.Use(middleware.JWTAuth(parser))
	for _, registrar := range protected {
		registrar.RegisterRoutes(authed)
	}

	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(root)
}
