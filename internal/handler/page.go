package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cypu/rulebook-api/internal/apperror"
	"github.com/cypu/rulebook-api/internal/i18n"
	"github.com/cypu/rulebook-api/internal/kafka/notifier"
	"github.com/cypu/rulebook-api/internal/model"
	"github.com/cypu/rulebook-api/internal/repository"
)

// PageHandler serves /pages.
type PageHandler struct {
	Base
	Pages repository.PageStore
}

func NewPageHandler(base Base, pages repository.PageStore) *PageHandler {
	return &PageHandler{Base: base, Pages: pages}
}

type pageRequest struct {
	ID      string   `json:"id"`
	Title   *string  `json:"title"`
	Content *string  `json:"content"`
	Chapter string   `json:"chapter"`
	Type    *string  `json:"type"`
	I18n    i18n.Map `json:"i18n"`
}

func (r pageRequest) apply(p *model.Page) {
	set(&p.Title, r.Title)
	if r.Content != nil {
		p.Content = *r.Content
	}
	setRef(&p.TypeID, r.Type)
	p.I18n = r.I18n
}

// List handles GET /pages/?chapterId=...
func (h *PageHandler) List(c echo.Context) error {
	chapterID, err := queryID(c, "chapterId")
	if err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	pages, err := h.Pages.ListByChapter(ctx, chapterID)
	if err != nil {
		return storeError(err, "Page", "")
	}
	return c.JSON(http.StatusOK, pages)
}

// Single handles GET /pages/single?pageId=...
func (h *PageHandler) Single(c echo.Context) error {
	id, err := queryID(c, "pageId")
	if err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	p, err := h.Pages.GetByID(ctx, id)
	if err != nil {
		return storeError(err, "Page", "")
	}
	return c.JSON(http.StatusOK, p)
}

// Create handles POST /pages/create.  The page is appended after the last
// page of its chapter.
func (h *PageHandler) Create(c echo.Context) error {
	var req pageRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	chapterID, err := required("chapter", req.Chapter)
	if err != nil {
		return err
	}
	p := &model.Page{ChapterID: chapterID}
	req.apply(p)
	if _, err := required("title", p.Title); err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	created, err := h.Pages.Create(ctx, p)
	if err != nil {
		return storeError(err, "Chapter", "type")
	}
	h.notify(ctx, notifier.KindPage, notifier.ChangeCreated, created.ID, created.ChapterID)
	return c.JSON(http.StatusCreated, created)
}

// Update handles POST /pages/update.
func (h *PageHandler) Update(c echo.Context) error {
	var req pageRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	id, err := required("id", req.ID)
	if err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	p, err := h.Pages.GetByID(ctx, id)
	if err != nil {
		return storeError(err, "Page", "")
	}
	if ch := strings.TrimSpace(req.Chapter); ch != "" && ch != p.ChapterID {
		return apperror.InvalidField("chapter")
	}
	req.apply(p)
	if _, err := required("title", p.Title); err != nil {
		return err
	}
	updated, err := h.Pages.Update(ctx, p)
	if err != nil {
		return storeError(err, "Page", "type")
	}
	h.notify(ctx, notifier.KindPage, notifier.ChangeUpdated, updated.ID, updated.ChapterID)
	return c.JSON(http.StatusOK, updated)
}

// Delete handles POST /pages/delete.
func (h *PageHandler) Delete(c echo.Context) error {
	var req idRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	id, err := required("id", req.ID)
	if err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	p, err := h.Pages.GetByID(ctx, id)
	if err != nil {
		return storeError(err, "Page", "")
	}
	if err := h.Pages.Delete(ctx, id); err != nil {
		return storeError(err, "Page", "")
	}
	h.notify(ctx, notifier.KindPage, notifier.ChangeDeleted, id, p.ChapterID)
	return c.JSON(http.StatusOK, echo.Map{"message": "Page deleted", "_id": id})
}

// UpdateOrder handles POST /pages/update-order.
func (h *PageHandler) UpdateOrder(c echo.Context) error {
	var req orderRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	pages, err := h.Pages.Reorder(ctx, req.Order)
	if err != nil {
		return orderError(err, "Page")
	}
	if len(pages) > 0 {
		h.notify(ctx, notifier.KindPage, notifier.ChangeReordered, "", pages[0].ChapterID)
	}
	return c.JSON(http.StatusOK, pages)
}
