package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pageza/cookmate/backend/internal/service"
)

type StaticHandler struct {
	assets *service.AssetService
}

func NewStaticHandler(assets *service.AssetService) *StaticHandler {
	return &StaticHandler{assets: assets}
}

// RegisterRoutes mounts /static/images from the bucket or disk and the
// rest of /static from disk.
func (h *StaticHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/static/*filepath", h.Serve)
}

func (h *StaticHandler) Serve(c *gin.Context) {
	const imagesPrefix = "/images/"
	p := c.Param("filepath")

	if name, ok := strings.CutPrefix(p, imagesPrefix); ok {
		h.serveImage(c, name)
		return
	}

	// http.Dir rejects paths that escape the root
	fs := http.Dir(h.assets.StaticDir())
	f, err := fs.Open(p)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	info, err := f.Stat()
	_ = f.Close()
	if err != nil || info.IsDir() {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	c.FileFromFS(p, fs)
}

func (h *StaticHandler) serveImage(c *gin.Context, name string) {
	loc, err := h.assets.ResolveImage(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, service.ErrImageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		internalError(c, "StaticHandler", err)
		return
	}
	if loc.RedirectURL != "" {
		c.Redirect(http.StatusFound, loc.RedirectURL)
		return
	}
	c.File(loc.LocalPath)
}
