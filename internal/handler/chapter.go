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

// ChapterHandler serves /chapters.
type ChapterHandler struct {
	Base
	Chapters repository.ChapterStore
}

func NewChapterHandler(base Base, chapters repository.ChapterStore) *ChapterHandler {
	return &ChapterHandler{Base: base, Chapters: chapters}
}

// RuleBook is only read on create; a chapter never changes book.
type chapterRequest struct {
	ID       string   `json:"id"`
	Title    *string  `json:"title"`
	Summary  *string  `json:"summary"`
	RuleBook string   `json:"ruleBook"`
	Type     *string  `json:"type"`
	I18n     i18n.Map `json:"i18n"`
}

func (r chapterRequest) apply(ch *model.Chapter) {
	set(&ch.Title, r.Title)
	set(&ch.Summary, r.Summary)
	setRef(&ch.TypeID, r.Type)
	ch.I18n = r.I18n
}

// List handles GET /chapters/?ruleBookId=...
func (h *ChapterHandler) List(c echo.Context) error {
	bookID, err := queryID(c, "ruleBookId")
	if err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	chapters, err := h.Chapters.ListByRuleBook(ctx, bookID)
	if err != nil {
		return storeError(err, "Chapter", "")
	}
	return c.JSON(http.StatusOK, chapters)
}

// Single handles GET /chapters/single?chapterId=... and returns the chapter
// with its pages and rule book.
func (h *ChapterHandler) Single(c echo.Context) error {
	id, err := queryID(c, "chapterId")
	if err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	ch, err := h.Chapters.GetWithPagesAndRuleBook(ctx, id)
	if err != nil {
		return storeError(err, "Chapter", "")
	}
	return c.JSON(http.StatusOK, ch)
}

// Create handles POST /chapters/create.  The chapter is appended after the
// last chapter of its rule book.
func (h *ChapterHandler) Create(c echo.Context) error {
	var req chapterRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	bookID, err := required("ruleBook", req.RuleBook)
	if err != nil {
		return err
	}
	ch := &model.Chapter{RuleBookID: bookID}
	req.apply(ch)
	if _, err := required("title", ch.Title); err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	created, err := h.Chapters.Create(ctx, ch)
	if err != nil {
		return storeError(err, "RuleBook", "type")
	}
	h.notify(ctx, notifier.KindChapter, notifier.ChangeCreated, created.ID, created.RuleBookID)
	return c.JSON(http.StatusCreated, created)
}

// Update handles POST /chapters/update.
func (h *ChapterHandler) Update(c echo.Context) error {
	var req chapterRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	id, err := required("id", req.ID)
	if err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	ch, err := h.Chapters.GetByID(ctx, id)
	if err != nil {
		return storeError(err, "Chapter", "")
	}
	if rb := strings.TrimSpace(req.RuleBook); rb != "" && rb != ch.RuleBookID {
		return apperror.InvalidField("ruleBook")
	}
	req.apply(ch)
	if _, err := required("title", ch.Title); err != nil {
		return err
	}
	updated, err := h.Chapters.Update(ctx, ch)
	if err != nil {
		return storeError(err, "Chapter", "type")
	}
	h.notify(ctx, notifier.KindChapter, notifier.ChangeUpdated, updated.ID, updated.RuleBookID)
	return c.JSON(http.StatusOK, updated)
}

// Delete handles POST /chapters/delete.  Pages of the chapter are removed and
// the remaining chapters close the gap.
func (h *ChapterHandler) Delete(c echo.Context) error {
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
	ch, err := h.Chapters.GetByID(ctx, id)
	if err != nil {
		return storeError(err, "Chapter", "")
	}
	if err := h.Chapters.Delete(ctx, id); err != nil {
		return storeError(err, "Chapter", "")
	}
	h.notify(ctx, notifier.KindChapter, notifier.ChangeDeleted, id, ch.RuleBookID)
	return c.JSON(http.StatusOK, echo.Map{"message": "Chapter deleted", "_id": id})
}

// UpdateOrder handles POST /chapters/update-order.  The body must list every
// chapter of one rule book with its new position; anything less is rejected
// without touching the store.
func (h *ChapterHandler) UpdateOrder(c echo.Context) error {
	var req orderRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	chapters, err := h.Chapters.Reorder(ctx, req.Order)
	if err != nil {
		return orderError(err, "Chapter")
	}
	if len(chapters) > 0 {
		h.notify(ctx, notifier.KindChapter, notifier.ChangeReordered, "", chapters[0].RuleBookID)
	}
	return c.JSON(http.StatusOK, chapters)
}
