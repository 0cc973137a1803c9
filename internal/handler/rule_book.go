package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cypu/rulebook-api/internal/i18n"
	"github.com/cypu/rulebook-api/internal/kafka/notifier"
	"github.com/cypu/rulebook-api/internal/model"
	"github.com/cypu/rulebook-api/internal/repository"
)

// RuleBookHandler serves /rulebooks.
type RuleBookHandler struct {
	Base
	Books repository.RuleBookStore
}

func NewRuleBookHandler(base Base, books repository.RuleBookStore) *RuleBookHandler {
	return &RuleBookHandler{Base: base, Books: books}
}

type ruleBookRequest struct {
	ID       string   `json:"id"`
	Title    *string  `json:"title"`
	Summary  *string  `json:"summary"`
	Type     *string  `json:"type"`
	Draft    *bool    `json:"draft"`
	Archived *bool    `json:"archived"`
	I18n     i18n.Map `json:"i18n"`
}

func (r ruleBookRequest) apply(b *model.RuleBook) {
	set(&b.Title, r.Title)
	set(&b.Summary, r.Summary)
	setRef(&b.TypeID, r.Type)
	if r.Draft != nil {
		b.Draft = *r.Draft
	}
	if r.Archived != nil {
		b.Archived = *r.Archived
	}
	b.I18n = r.I18n
}

// List handles GET /rulebooks/.
func (h *RuleBookHandler) List(c echo.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()
	books, err := h.Books.List(ctx)
	if err != nil {
		return storeError(err, "RuleBook", "")
	}
	return c.JSON(http.StatusOK, books)
}

// Single handles GET /rulebooks/single?ruleBookId=... and returns the book
// with its chapters and pages in position order.
func (h *RuleBookHandler) Single(c echo.Context) error {
	id, err := queryID(c, "ruleBookId")
	if err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	book, err := h.Books.GetWithChapters(ctx, id)
	if err != nil {
		return storeError(err, "RuleBook", "")
	}
	return c.JSON(http.StatusOK, book)
}

// Create handles POST /rulebooks/create.
func (h *RuleBookHandler) Create(c echo.Context) error {
	var req ruleBookRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	b := &model.RuleBook{Draft: true}
	req.apply(b)
	if _, err := required("title", b.Title); err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	created, err := h.Books.Create(ctx, b)
	if err != nil {
		return storeError(err, "RuleBook", "type")
	}
	h.notify(ctx, notifier.KindRuleBook, notifier.ChangeCreated, created.ID, "")
	return c.JSON(http.StatusCreated, created)
}

// Update handles POST /rulebooks/update.  Absent fields keep their value and
// i18n is merged per language.
func (h *RuleBookHandler) Update(c echo.Context) error {
	var req ruleBookRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	id, err := required("id", req.ID)
	if err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	b, err := h.Books.GetByID(ctx, id)
	if err != nil {
		return storeError(err, "RuleBook", "")
	}
	req.apply(b)
	if _, err := required("title", b.Title); err != nil {
		return err
	}
	updated, err := h.Books.Update(ctx, b)
	if err != nil {
		return storeError(err, "RuleBook", "type")
	}
	h.notify(ctx, notifier.KindRuleBook, notifier.ChangeUpdated, updated.ID, "")
	return c.JSON(http.StatusOK, updated)
}

// Delete handles POST /rulebooks/delete.  Notions, chapters and pages of the
// book go with it.
func (h *RuleBookHandler) Delete(c echo.Context) error {
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
	if err := h.Books.Delete(ctx, id); err != nil {
		return storeError(err, "RuleBook", "")
	}
	h.notify(ctx, notifier.KindRuleBook, notifier.ChangeDeleted, id, "")
	return c.JSON(http.StatusOK, echo.Map{"message": "RuleBook deleted", "_id": id})
}
