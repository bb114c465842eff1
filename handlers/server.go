package handlers

import (
	"fmt"
	"net/http"

	"github.com/akinalp/mqvi-directory/models"
	"github.com/akinalp/mqvi-directory/pkg"
	"github.com/akinalp/mqvi-directory/services"
)

// ServerHandler, sunucu listeleme/getirme endpoint'lerini yönetir.
type ServerHandler struct {
	serverService services.ServerService
}

// NewServerHandler, constructor.
func NewServerHandler(serverService services.ServerService) *ServerHandler {
	return &ServerHandler{serverService: serverService}
}

// List godoc
// GET /api/servers?category=<id|isim>&q=<n>&user=true
//
// Anonim istek de kabul edilir; user=true anonimken boş liste döner.
// q negatif veya sayı değilse 400.
func (h *ServerHandler) List(w http.ResponseWriter, r *http.Request) {
	query, err := models.ParseServerListQuery(r.URL.Query())
	if err != nil {
		pkg.Error(w, fmt.Errorf("%w: %v", pkg.ErrBadRequest, err))
		return
	}

	servers, err := h.serverService.ListServers(r.Context(), callerID(r.Context()), query)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, servers)
}

// Get godoc
// GET /api/servers/{serverId}
func (h *ServerHandler) Get(w http.ResponseWriter, r *http.Request) {
	server, err := h.serverService.GetServer(r.Context(), r.PathValue("serverId"))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, server)
}
