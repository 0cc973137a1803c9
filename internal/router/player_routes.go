package router

import (
	"github.com/labstack/echo/v4"

	"github.com/cypu/rulebook-api/internal/handler"
	"github.com/cypu/rulebook-api/internal/middleware"
)

// RegisterPlayer registers campaign and character routes.  All of them need
// a signed-in caller; ownership is checked in the handlers.  Browsers opening
// /campaigns or /characters get the UI page, guarded by the rights table.
func RegisterPlayer(e *echo.Echo, page echo.HandlerFunc, campaigns *handler.CampaignHandler, characters *handler.CharacterHandler) {
	logged := []echo.MiddlewareFunc{middleware.LoggedNeeded()}

	cg := registerCRUD(e, "/campaigns", campaigns, page, logged, logged)
	cg.POST("/join", campaigns.Join, logged...)

	chg := registerCRUD(e, "/characters", characters, page, logged, logged)
	chg.POST("/addnode", characters.AddNode, logged...)
	chg.POST("/removenode", characters.RemoveNode, logged...)
}
