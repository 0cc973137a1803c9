package handler

import (
	"os"
	"path"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/cypu/rulebook-api/internal/apperror"
)

// StaticHandler serves the built UI.  Paths that are not files fall back to
// index.html so the client router can take over.
type StaticHandler struct {
	Dir string
}

func NewStaticHandler(dir string) *StaticHandler { return &StaticHandler{Dir: dir} }

// Serve is mounted behind the page-rights middleware.
func (h *StaticHandler) Serve(c echo.Context) error {
	if h.Dir == "" {
		return apperror.NotFound("Page")
	}
	clean := path.Clean("/" + c.Request().URL.Path)
	file := filepath.Join(h.Dir, filepath.FromSlash(clean))
	if info, err := os.Stat(file); err == nil && !info.IsDir() {
		return c.File(file)
	}
	index := filepath.Join(h.Dir, "index.html")
	if _, err := os.Stat(index); err != nil {
		return apperror.NotFound("Page")
	}
	return c.File(index)
}
