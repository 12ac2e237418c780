package controllers

import (
	"net/http"

	"cinevault/internal/models/db_models"
	"cinevault/internal/models/request_models"
	"cinevault/internal/services"
	"cinevault/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MediaListController serves the favorites, watchlist and watch-later
// endpoints through one handler pair; the list kind is fixed per route at
// registration time.
type MediaListController struct {
	listService services.MediaListServiceInterface
}

func NewMediaListController(listService services.MediaListServiceInterface) *MediaListController {
	return &MediaListController{
		listService: listService,
	}
}

// List godoc
// @Summary List entries of one media list
// @Description Returns the account's entries split into movies and series
// @Tags Lists
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /favorites [get]
func (m *MediaListController) List(kind db_models.ListKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := m.listService.List(c.Request.Context(), c.GetString("user_id"), kind)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}

		utils.RespondSuccess(c, result, "List fetched successfully")
	}
}

// Toggle godoc
// @Summary Toggle an entry on one media list
// @Description Removes the entry when present, adds it otherwise
// @Tags Lists
// @Accept json
// @Produce json
// @Param request body request_models.ToggleListRequest true "Toggle payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /favorites [post]
func (m *MediaListController) Toggle(kind db_models.ListKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request_models.ToggleListRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
			return
		}

		result, err := m.listService.Toggle(c.Request.Context(), c.GetString("user_id"), kind, req)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}

		utils.RespondSuccess(c, result, "List updated")
	}
}
