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

// NotionHandler serves /notions.
type NotionHandler struct {
	Base
	Notions repository.NotionStore
}

func NewNotionHandler(base Base, notions repository.NotionStore) *NotionHandler {
	return &NotionHandler{Base: base, Notions: notions}
}

type notionRequest struct {
	ID       string   `json:"id"`
	Title    *string  `json:"title"`
	Short    *string  `json:"short"`
	Text     *string  `json:"text"`
	RuleBook string   `json:"ruleBook"`
	I18n     i18n.Map `json:"i18n"`
}

func (r notionRequest) apply(n *model.Notion) {
	set(&n.Title, r.Title)
	set(&n.Short, r.Short)
	if r.Text != nil {
		n.Text = *r.Text
	}
	n.I18n = r.I18n
}

// List handles GET /notions/, optionally narrowed with ?ruleBookId=...
func (h *NotionHandler) List(c echo.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()
	notions, err := h.Notions.List(ctx, strings.TrimSpace(c.QueryParam("ruleBookId")))
	if err != nil {
		return storeError(err, "Notion", "")
	}
	return c.JSON(http.StatusOK, notions)
}

// Single handles GET /notions/single?notionId=...
func (h *NotionHandler) Single(c echo.Context) error {
	id, err := queryID(c, "notionId")
	if err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	n, err := h.Notions.GetByID(ctx, id)
	if err != nil {
		return storeError(err, "Notion", "")
	}
	return c.JSON(http.StatusOK, n)
}

// Create handles POST /notions/create.
func (h *NotionHandler) Create(c echo.Context) error {
	var req notionRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	bookID, err := required("ruleBook", req.RuleBook)
	if err != nil {
		return err
	}
	n := &model.Notion{RuleBookID: bookID}
	req.apply(n)
	if _, err := required("title", n.Title); err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	created, err := h.Notions.Create(ctx, n)
	if err != nil {
		return storeError(err, "RuleBook", "ruleBook")
	}
	h.notify(ctx, notifier.KindNotion, notifier.ChangeCreated, created.ID, created.RuleBookID)
	return c.JSON(http.StatusCreated, created)
}

// Update handles POST /notions/update.
func (h *NotionHandler) Update(c echo.Context) error {
	var req notionRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	id, err := required("id", req.ID)
	if err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	n, err := h.Notions.GetByID(ctx, id)
	if err != nil {
		return storeError(err, "Notion", "")
	}
	if rb := strings.TrimSpace(req.RuleBook); rb != "" && rb != n.RuleBookID {
		return apperror.InvalidField("ruleBook")
	}
	req.apply(n)
	if _, err := required("title", n.Title); err != nil {
		return err
	}
	updated, err := h.Notions.Update(ctx, n)
	if err != nil {
		return storeError(err, "Notion", "")
	}
	h.notify(ctx, notifier.KindNotion, notifier.ChangeUpdated, updated.ID, updated.RuleBookID)
	return c.JSON(http.StatusOK, updated)
}

// Delete handles POST /notions/delete.
func (h *NotionHandler) Delete(c echo.Context) error {
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
	if err := h.Notions.Delete(ctx, id); err != nil {
		return storeError(err, "Notion", "")
	}
	h.notify(ctx, notifier.KindNotion, notifier.ChangeDeleted, id, "")
	return c.JSON(http.StatusOK, echo.Map{"message": "Notion deleted", "_id": id})
}
