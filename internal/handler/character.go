package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cypu/rulebook-api/internal/apperror"
	"github.com/cypu/rulebook-api/internal/model"
	"github.com/cypu/rulebook-api/internal/repository"
)

// CharacterHandler serves /characters.  A sheet is read and changed by its
// player; admins may read any sheet.
type CharacterHandler struct {
	Base
	Characters repository.CharacterStore
	Campaigns  repository.CampaignStore
}

func NewCharacterHandler(base Base, characters repository.CharacterStore, campaigns repository.CampaignStore) *CharacterHandler {
	return &CharacterHandler{Base: base, Characters: characters, Campaigns: campaigns}
}

type characterReq struct {
	ID       string  `json:"id"`
	Name     *string `json:"name"`
	Campaign *string `json:"campaign"`
}

type characterNodeReq struct {
	ID   string `json:"id"`
	Node string `json:"node"`
}

// List handles GET /characters/: the caller's sheets.
func (h *CharacterHandler) List(c echo.Context) error {
	me, err := caller(c)
	if err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	chars, err := h.Characters.ListForPlayer(ctx, me.ID)
	if err != nil {
		return storeError(err, "Character", "")
	}
	return c.JSON(http.StatusOK, chars)
}

// Single handles GET /characters/single?characterId=...
func (h *CharacterHandler) Single(c echo.Context) error {
	me, err := caller(c)
	if err != nil {
		return err
	}
	id, err := queryID(c, "characterId")
	if err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	ch, err := h.Characters.GetByID(ctx, id)
	if err != nil {
		return storeError(err, "Character", "")
	}
	if ch.PlayerID != me.ID && !me.IsAdmin() {
		return apperror.NotAllowed()
	}
	return c.JSON(http.StatusOK, ch)
}

// Create handles POST /characters/create.  A campaign, when given, must be
// one the caller belongs to.
func (h *CharacterHandler) Create(c echo.Context) error {
	me, err := caller(c)
	if err != nil {
		return err
	}
	var req characterReq
	if err := bind(c, &req); err != nil {
		return err
	}
	ch := &model.Character{PlayerID: me.ID, CreatedBy: me.ID}
	set(&ch.Name, req.Name)
	setRef(&ch.CampaignID, req.Campaign)
	if _, err := required("name", ch.Name); err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	if err := h.checkCampaign(ctx, ch.CampaignID, me.ID); err != nil {
		return err
	}
	created, err := h.Characters.Create(ctx, ch)
	if err != nil {
		return storeError(err, "Character", "campaign")
	}
	return c.JSON(http.StatusCreated, created)
}

// Update handles POST /characters/update.
func (h *CharacterHandler) Update(c echo.Context) error {
	me, err := caller(c)
	if err != nil {
		return err
	}
	var req characterReq
	if err := bind(c, &req); err != nil {
		return err
	}
	id, err := required("id", req.ID)
	if err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	ch, err := h.owned(ctx, id, me.ID)
	if err != nil {
		return err
	}
	set(&ch.Name, req.Name)
	if _, err := required("name", ch.Name); err != nil {
		return err
	}
	if req.Campaign != nil {
		setRef(&ch.CampaignID, req.Campaign)
		if err := h.checkCampaign(ctx, ch.CampaignID, me.ID); err != nil {
			return err
		}
	}
	updated, err := h.Characters.Update(ctx, ch)
	if err != nil {
		return storeError(err, "Character", "campaign")
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles POST /characters/delete.
func (h *CharacterHandler) Delete(c echo.Context) error {
	me, err := caller(c)
	if err != nil {
		return err
	}
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
	if _, err := h.owned(ctx, id, me.ID); err != nil {
		return err
	}
	if err := h.Characters.Delete(ctx, id); err != nil {
		return storeError(err, "Character", "")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Character deleted", "_id": id})
}

// AddNode handles POST /characters/addnode.
func (h *CharacterHandler) AddNode(c echo.Context) error {
	return h.changeNode(c, h.Characters.AddNode)
}

// RemoveNode handles POST /characters/removenode.
func (h *CharacterHandler) RemoveNode(c echo.Context) error {
	return h.changeNode(c, h.Characters.RemoveNode)
}

type nodeChange func(ctx context.Context, characterID, nodeID string) (*model.Character, error)

func (h *CharacterHandler) changeNode(c echo.Context, change nodeChange) error {
	me, err := caller(c)
	if err != nil {
		return err
	}
	var req characterNodeReq
	if err := bind(c, &req); err != nil {
		return err
	}
	id, err := required("id", req.ID)
	if err != nil {
		return err
	}
	nodeID, err := required("node", req.Node)
	if err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	if _, err := h.owned(ctx, id, me.ID); err != nil {
		return err
	}
	ch, err := change(ctx, id, nodeID)
	if err != nil {
		return storeError(err, "Node", "node")
	}
	return c.JSON(http.StatusOK, ch)
}

// owned loads a character the user plays.
func (h *CharacterHandler) owned(ctx context.Context, id, userID string) (*model.Character, error) {
	ch, err := h.Characters.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Character", "")
	}
	if ch.PlayerID != userID {
		return nil, apperror.NotAllowed()
	}
	return ch, nil
}

func (h *CharacterHandler) checkCampaign(ctx context.Context, campaignID *string, userID string) error {
	if campaignID == nil {
		return nil
	}
	ok, err := h.Campaigns.IsMember(ctx, *campaignID, userID)
	if err != nil {
		return storeError(err, "Campaign", "campaign")
	}
	if !ok {
		return apperror.NotAllowed()
	}
	return nil
}
