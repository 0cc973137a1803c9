package router

import (
	"github.com/labstack/echo/v4"

	"github.com/cypu/rulebook-api/internal/handler"
	"github.com/cypu/rulebook-api/internal/middleware"
)

// crud is the route set every catalogue entity exposes.
type crud interface {
	List(c echo.Context) error
	Single(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}

// ContentHandlers are the catalogue handlers: rule book content and the
// taxonomies.
type ContentHandlers struct {
	RuleBooks     *handler.RuleBookHandler
	Chapters      *handler.ChapterHandler
	Pages         *handler.PageHandler
	Notions       *handler.NotionHandler
	Nodes         *handler.NodeHandler
	ItemModifiers *handler.ItemModifierHandler
	Rarities      *handler.NamedTypeHandler
	PageTypes     *handler.NamedTypeHandler
	RuleBookTypes *handler.NamedTypeHandler
	ChapterTypes  *handler.NamedTypeHandler
}

// registerCRUD mounts the entity routes under prefix.  A non-nil page answers
// browser navigations to the list URL, so the list routes carry their read
// middleware inside htmlOr rather than on the route.
func registerCRUD(e *echo.Echo, prefix string, h crud, page echo.HandlerFunc, read, write []echo.MiddlewareFunc) *echo.Group {
	g := e.Group(prefix)
	list := htmlOr(page, wrap(h.List, read...))
	g.GET("", list)
	g.GET("/", list)
	g.GET("/single", h.Single, read...)
	g.POST("/create", h.Create, write...)
	g.POST("/update", h.Update, write...)
	g.POST("/delete", h.Delete, write...)
	return g
}

// RegisterContent registers the catalogue.  Reads are public and cached;
// writes need an admin and purge the cache once they succeed.
func RegisterContent(e *echo.Echo, h ContentHandlers, mw Middlewares) {
	read := chain(mw.Cache)
	write := chain(middleware.AdminNeeded(), mw.Purge)

	registerCRUD(e, "/rulebooks", h.RuleBooks, nil, read, write)
	chapters := registerCRUD(e, "/chapters", h.Chapters, nil, read, write)
	chapters.POST("/update-order", h.Chapters.UpdateOrder, write...)
	pages := registerCRUD(e, "/pages", h.Pages, nil, read, write)
	pages.POST("/update-order", h.Pages.UpdateOrder, write...)
	registerCRUD(e, "/notions", h.Notions, nil, read, write)

	registerCRUD(e, "/nodes", h.Nodes, nil, read, write)
	registerCRUD(e, "/itemmodifiers", h.ItemModifiers, nil, read, write)
	registerCRUD(e, "/rarities", h.Rarities, nil, read, write)
	registerCRUD(e, "/pagetypes", h.PageTypes, nil, read, write)
	registerCRUD(e, "/rulebooktypes", h.RuleBookTypes, nil, read, write)
	registerCRUD(e, "/chaptertypes", h.ChapterTypes, nil, read, write)
}
