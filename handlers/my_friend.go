// Package handlers — MyFriendHandler: "my friend" HTTP endpoint'i.
//
// Thin handler prensibi: Parse → Service → Response.
//
// Route (init_routes.go'da bağlanır):
//
//	GET /api/my-friends/{friendUserId} → GetByID
package handlers

import (
	"net/http"
	"strconv"

	"github.com/akinalp/friendgraph/pkg"
	"github.com/akinalp/friendgraph/services"
)

// MyFriendHandler, arkadaş profili endpoint'ini yöneten struct.
type MyFriendHandler struct {
	myFriendService services.MyFriendService
}

// NewMyFriendHandler, constructor.
func NewMyFriendHandler(myFriendService services.MyFriendService) *MyFriendHandler {
	return &MyFriendHandler{myFriendService: myFriendService}
}

// GetByID godoc
// GET /api/my-friends/{friendUserId}
// Çağıranın kabul edilmiş arkadaşının profilini, toplam ve ortak arkadaş sayısıyla döner.
func (h *MyFriendHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	callerID, ok := CallerIDFromContext(r.Context())
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	friendUserID, err := strconv.ParseInt(r.PathValue("friendUserId"), 10, 64)
	if err != nil || friendUserID <= 0 {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "friend user id must be a positive integer")
		return
	}

	profile, err := h.myFriendService.GetByID(r.Context(), callerID, friendUserID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, profile)
}
