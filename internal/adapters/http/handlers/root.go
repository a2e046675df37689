package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RootHandler serves the service banner at the root path.
type RootHandler struct {
	name    string
	version string
}

// NewRootHandler creates a new root handler.
func NewRootHandler(name, version string) *RootHandler {
	return &RootHandler{
		name:    name,
		version: version,
	}
}

// bannerResponse identifies the service.
type bannerResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// Banner handles GET /.
func (h *RootHandler) Banner(c *gin.Context) {
	c.JSON(http.StatusOK, bannerResponse{
		Message: h.name + " API is running",
		Version: h.version,
	})
}

// RegisterRootRoutes registers the banner route on the engine.
func (h *RootHandler) RegisterRootRoutes(engine *gin.Engine) {
	engine.GET("/", h.Banner)
}
