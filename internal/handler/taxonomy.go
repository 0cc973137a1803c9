package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cypu/rulebook-api/internal/i18n"
	"github.com/cypu/rulebook-api/internal/kafka/notifier"
	"github.com/cypu/rulebook-api/internal/model"
	"github.com/cypu/rulebook-api/internal/repository"
)

// NodeHandler serves /nodes.
type NodeHandler struct {
	Base
	Nodes repository.NodeStore
}

func NewNodeHandler(base Base, nodes repository.NodeStore) *NodeHandler {
	return &NodeHandler{Base: base, Nodes: nodes}
}

type nodeRequest struct {
	ID      string   `json:"id"`
	Title   *string  `json:"title"`
	Summary *string  `json:"summary"`
	Rank    *int     `json:"rank"`
	I18n    i18n.Map `json:"i18n"`
}

func (r nodeRequest) apply(n *model.Node) {
	set(&n.Title, r.Title)
	set(&n.Summary, r.Summary)
	if r.Rank != nil {
		n.Rank = *r.Rank
	}
	n.I18n = r.I18n
}

func (h *NodeHandler) List(c echo.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()
	nodes, err := h.Nodes.List(ctx)
	if err != nil {
		return storeError(err, "Node", "")
	}
	return c.JSON(http.StatusOK, nodes)
}

func (h *NodeHandler) Single(c echo.Context) error {
	id, err := queryID(c, "nodeId")
	if err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	n, err := h.Nodes.GetByID(ctx, id)
	if err != nil {
		return storeError(err, "Node", "")
	}
	return c.JSON(http.StatusOK, n)
}

func (h *NodeHandler) Create(c echo.Context) error {
	var req nodeRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	n := &model.Node{}
	req.apply(n)
	if _, err := required("title", n.Title); err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	created, err := h.Nodes.Create(ctx, n)
	if err != nil {
		return storeError(err, "Node", "title")
	}
	h.notify(ctx, notifier.KindNode, notifier.ChangeCreated, created.ID, "")
	return c.JSON(http.StatusCreated, created)
}

func (h *NodeHandler) Update(c echo.Context) error {
	var req nodeRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	id, err := required("id", req.ID)
	if err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	n, err := h.Nodes.GetByID(ctx, id)
	if err != nil {
		return storeError(err, "Node", "")
	}
	req.apply(n)
	if _, err := required("title", n.Title); err != nil {
		return err
	}
	updated, err := h.Nodes.Update(ctx, n)
	if err != nil {
		return storeError(err, "Node", "title")
	}
	h.notify(ctx, notifier.KindNode, notifier.ChangeUpdated, updated.ID, "")
	return c.JSON(http.StatusOK, updated)
}

func (h *NodeHandler) Delete(c echo.Context) error {
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
	if err := h.Nodes.Delete(ctx, id); err != nil {
		return storeError(err, "Node", "")
	}
	h.notify(ctx, notifier.KindNode, notifier.ChangeDeleted, id, "")
	return c.JSON(http.StatusOK, echo.Map{"message": "Node deleted", "_id": id})
}

// ItemModifierHandler serves /itemmodifiers.  modifierId is unique across
// all modifiers.
type ItemModifierHandler struct {
	Base
	Modifiers repository.ItemModifierStore
}

func NewItemModifierHandler(base Base, modifiers repository.ItemModifierStore) *ItemModifierHandler {
	return &ItemModifierHandler{Base: base, Modifiers: modifiers}
}

type itemModifierRequest struct {
	ID         string   `json:"id"`
	Title      *string  `json:"title"`
	Summary    *string  `json:"summary"`
	ModifierID *string  `json:"modifierId"`
	I18n       i18n.Map `json:"i18n"`
}

func (r itemModifierRequest) apply(m *model.ItemModifier) {
	set(&m.Title, r.Title)
	set(&m.Summary, r.Summary)
	set(&m.ModifierID, r.ModifierID)
	m.I18n = r.I18n
}

func checkItemModifier(m *model.ItemModifier) error {
	if _, err := required("title", m.Title); err != nil {
		return err
	}
	_, err := required("modifierId", m.ModifierID)
	return err
}

func (h *ItemModifierHandler) List(c echo.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()
	mods, err := h.Modifiers.List(ctx)
	if err != nil {
		return storeError(err, "ItemModifier", "")
	}
	return c.JSON(http.StatusOK, mods)
}

func (h *ItemModifierHandler) Single(c echo.Context) error {
	id, err := queryID(c, "itemModifierId")
	if err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	m, err := h.Modifiers.GetByID(ctx, id)
	if err != nil {
		return storeError(err, "ItemModifier", "")
	}
	return c.JSON(http.StatusOK, m)
}

func (h *ItemModifierHandler) Create(c echo.Context) error {
	var req itemModifierRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	m := &model.ItemModifier{}
	req.apply(m)
	if err := checkItemModifier(m); err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	created, err := h.Modifiers.Create(ctx, m)
	if err != nil {
		return storeError(err, "ItemModifier", "modifierId")
	}
	h.notify(ctx, notifier.KindItemModifier, notifier.ChangeCreated, created.ID, "")
	return c.JSON(http.StatusCreated, created)
}

// Update keeps a modifier's own modifierId without tripping the uniqueness
// check; taking another modifier's code is a Duplicate.
func (h *ItemModifierHandler) Update(c echo.Context) error {
	var req itemModifierRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	id, err := required("id", req.ID)
	if err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	m, err := h.Modifiers.GetByID(ctx, id)
	if err != nil {
		return storeError(err, "ItemModifier", "")
	}
	req.apply(m)
	if err := checkItemModifier(m); err != nil {
		return err
	}
	updated, err := h.Modifiers.Update(ctx, m)
	if err != nil {
		return storeError(err, "ItemModifier", "modifierId")
	}
	h.notify(ctx, notifier.KindItemModifier, notifier.ChangeUpdated, updated.ID, "")
	return c.JSON(http.StatusOK, updated)
}

func (h *ItemModifierHandler) Delete(c echo.Context) error {
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
	if err := h.Modifiers.Delete(ctx, id); err != nil {
		return storeError(err, "ItemModifier", "")
	}
	h.notify(ctx, notifier.KindItemModifier, notifier.ChangeDeleted, id, "")
	return c.JSON(http.StatusOK, echo.Map{"message": "ItemModifier deleted", "_id": id})
}

// NamedTypeHandler serves one of the name-keyed taxonomies: rarities, page
// types, rule book types and chapter types.
type NamedTypeHandler struct {
	Base
	Types repository.NamedTypeStore
	// Entity names the taxonomy in errors ("Rarity", "PageType", ...).
	Entity string
	// Param is the query parameter of the single route ("rarityId", ...).
	Param string
}

func NewNamedTypeHandler(base Base, types repository.NamedTypeStore, entity, param string) *NamedTypeHandler {
	return &NamedTypeHandler{Base: base, Types: types, Entity: entity, Param: param}
}

type namedTypeRequest struct {
	ID   string   `json:"id"`
	Name *string  `json:"name"`
	I18n i18n.Map `json:"i18n"`
}

func (h *NamedTypeHandler) List(c echo.Context) error {
	ctx, cancel := h.ctx(c)
	defer cancel()
	types, err := h.Types.List(ctx)
	if err != nil {
		return storeError(err, h.Entity, "")
	}
	return c.JSON(http.StatusOK, types)
}

func (h *NamedTypeHandler) Single(c echo.Context) error {
	id, err := queryID(c, h.Param)
	if err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	t, err := h.Types.GetByID(ctx, id)
	if err != nil {
		return storeError(err, h.Entity, "")
	}
	return c.JSON(http.StatusOK, t)
}

func (h *NamedTypeHandler) Create(c echo.Context) error {
	var req namedTypeRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	t := &model.NamedType{I18n: req.I18n}
	set(&t.Name, req.Name)
	if _, err := required("name", t.Name); err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	created, err := h.Types.Create(ctx, t)
	if err != nil {
		return storeError(err, h.Entity, "name")
	}
	h.notify(ctx, notifier.KindNamedType, notifier.ChangeCreated, created.ID, "")
	return c.JSON(http.StatusCreated, created)
}

func (h *NamedTypeHandler) Update(c echo.Context) error {
	var req namedTypeRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	id, err := required("id", req.ID)
	if err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	t, err := h.Types.GetByID(ctx, id)
	if err != nil {
		return storeError(err, h.Entity, "")
	}
	set(&t.Name, req.Name)
	t.I18n = req.I18n
	if _, err := required("name", t.Name); err != nil {
		return err
	}
	updated, err := h.Types.Update(ctx, t)
	if err != nil {
		return storeError(err, h.Entity, "name")
	}
	h.notify(ctx, notifier.KindNamedType, notifier.ChangeUpdated, updated.ID, "")
	return c.JSON(http.StatusOK, updated)
}

func (h *NamedTypeHandler) Delete(c echo.Context) error {
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
	if err := h.Types.Delete(ctx, id); err != nil {
		return storeError(err, h.Entity, "")
	}
	h.notify(ctx, notifier.KindNamedType, notifier.ChangeDeleted, id, "")
	return c.JSON(http.StatusOK, echo.Map{"message": h.Entity + " deleted", "_id": id})
}
