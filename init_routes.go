// Package main — HTTP route registration.
//
// initRoutes, tüm API endpoint'lerini mux'a bağlar.
// Middleware chain helper'ı burada tanımlıdır:
//   - auth: JWT token doğrulaması, caller id context'e yazılır
package main

import (
	"net/http"

	"github.com/akinalp/friendgraph/middleware"
	"github.com/akinalp/friendgraph/pkg"
	"github.com/akinalp/friendgraph/services"
)

// initRoutes, middleware chain'i kurar ve tüm endpoint'leri mux'a bağlar.
func initRoutes(mux *http.ServeMux, h *Handlers, authService services.AuthService) {
	authMw := middleware.NewAuthMiddleware(authService)

	auth := func(handler http.HandlerFunc) http.Handler {
		return authMw.Require(http.HandlerFunc(handler))
	}

	// Health check (public)
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		pkg.JSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "friendgraph"})
	})

	// My friends: caller'ın kabul edilmiş arkadaşının profili + sayılar
	mux.Handle("GET /api/my-friends/{friendUserId}", auth(h.MyFriend.GetByID))
}
