package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cypu/rulebook-api/internal/apperror"
	"github.com/cypu/rulebook-api/internal/middleware"
	"github.com/cypu/rulebook-api/internal/model"
	"github.com/cypu/rulebook-api/internal/repository"
)

// CampaignHandler serves /campaigns.  Every route acts for the caller.
type CampaignHandler struct {
	Base
	Campaigns repository.CampaignStore
}

func NewCampaignHandler(base Base, campaigns repository.CampaignStore) *CampaignHandler {
	return &CampaignHandler{Base: base, Campaigns: campaigns}
}

type campaignReq struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type joinReq struct {
	Code string `json:"code"`
}

func caller(c echo.Context) (*model.User, error) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, apperror.Unauthorized()
	}
	return u, nil
}

// List handles GET /campaigns/: campaigns the caller owns or plays in.
func (h *CampaignHandler) List(c echo.Context) error {
	me, err := caller(c)
	if err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	campaigns, err := h.Campaigns.ListForUser(ctx, me.ID)
	if err != nil {
		return storeError(err, "Campaign", "")
	}
	return c.JSON(http.StatusOK, campaigns)
}

// Single handles GET /campaigns/single?campaignId=...  Only members and
// admins may read a campaign.
func (h *CampaignHandler) Single(c echo.Context) error {
	me, err := caller(c)
	if err != nil {
		return err
	}
	id, err := queryID(c, "campaignId")
	if err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	camp, err := h.Campaigns.GetByID(ctx, id)
	if err != nil {
		return storeError(err, "Campaign", "")
	}
	if !camp.HasMember(me.ID) && !me.IsAdmin() {
		return apperror.NotAllowed()
	}
	return c.JSON(http.StatusOK, camp)
}

// Create handles POST /campaigns/create.  The caller owns the campaign and a
// join code is generated.
func (h *CampaignHandler) Create(c echo.Context) error {
	me, err := caller(c)
	if err != nil {
		return err
	}
	var req campaignReq
	if err := bind(c, &req); err != nil {
		return err
	}
	name, err := required("name", req.Name)
	if err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	camp := &model.Campaign{Name: name, Owner: model.UserRef{ID: me.ID}}
	if err := h.Campaigns.Create(ctx, camp); err != nil {
		return storeError(err, "User", "owner")
	}
	return c.JSON(http.StatusCreated, camp)
}

// Join handles POST /campaigns/join with a join code.
func (h *CampaignHandler) Join(c echo.Context) error {
	me, err := caller(c)
	if err != nil {
		return err
	}
	var req joinReq
	if err := bind(c, &req); err != nil {
		return err
	}
	code, err := required("code", req.Code)
	if err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	camp, err := h.Campaigns.Join(ctx, strings.ToUpper(code), me.ID)
	if err != nil {
		return storeError(err, "Campaign", "code")
	}
	return c.JSON(http.StatusOK, camp)
}

// Update handles POST /campaigns/update.  Only the owner may rename.
func (h *CampaignHandler) Update(c echo.Context) error {
	me, err := caller(c)
	if err != nil {
		return err
	}
	var req campaignReq
	if err := bind(c, &req); err != nil {
		return err
	}
	id, err := required("id", req.ID)
	if err != nil {
		return err
	}
	name, err := required("name", req.Name)
	if err != nil {
		return err
	}
	ctx, cancel := h.ctx(c)
	defer cancel()
	camp, err := h.Campaigns.Update(ctx, id, me.ID, name)
	if err != nil {
		return storeError(err, "Campaign", "")
	}
	return c.JSON(http.StatusOK, camp)
}

// Delete handles POST /campaigns/delete.  Only the owner may delete.
func (h *CampaignHandler) Delete(c echo.Context) error {
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
	if err := h.Campaigns.Delete(ctx, id, me.ID); err != nil {
		return storeError(err, "Campaign", "")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Campaign deleted", "_id": id})
}
