package controllers

import (
	"errors"
	"net/http"

	"cinevault/internal/models/request_models"
	"cinevault/internal/services"
	"cinevault/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PlaylistController struct {
	playlistService services.PlaylistServiceInterface
}

func NewPlaylistController(playlistService services.PlaylistServiceInterface) *PlaylistController {
	return &PlaylistController{
		playlistService: playlistService,
	}
}

// ListPlaylists godoc
// @Summary List playlists
// @Description Without userId: the caller's playlists. With ?userId=: that
// @Description user's public playlists.
// @Tags Playlists
// @Produce json
// @Param userId query string false "Owner account id (public playlists only)"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Security BearerAuth
// @Router /playlists [get]
func (p *PlaylistController) ListPlaylists(c *gin.Context) {
	ownerID := c.Query("userId")
	requesterID := c.GetString("user_id")

	if ownerID != "" && ownerID != requesterID {
		playlists, err := p.playlistService.ListPublicByOwner(c.Request.Context(), ownerID)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, playlists, "Playlists fetched successfully")
		return
	}

	if requesterID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	playlists, err := p.playlistService.ListMine(c.Request.Context(), requesterID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, playlists, "Playlists fetched successfully")
}

// CreatePlaylist godoc
// @Summary Create a playlist
// @Tags Playlists
// @Accept json
// @Produce json
// @Param request body request_models.CreatePlaylistRequest true "Playlist payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /playlists [post]
func (p *PlaylistController) CreatePlaylist(c *gin.Context) {
	var req request_models.CreatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Title is required")
		return
	}

	playlist, err := p.playlistService.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, playlist, "Playlist created")
}

// GetPlaylist godoc
// @Summary Get one playlist
// @Description Public playlists are open; private ones require ownership
// @Tags Playlists
// @Produce json
// @Param id path string true "Playlist ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /playlists/{id} [get]
func (p *PlaylistController) GetPlaylist(c *gin.Context) {
	requesterID := c.GetString("user_id")

	playlist, err := p.playlistService.Get(c.Request.Context(), c.Param("id"), requesterID)
	if err != nil {
		// A private playlist looks like a login wall to anonymous callers.
		if errors.Is(err, utils.ErrForbidden) && requesterID == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, playlist, "Playlist fetched successfully")
}

// UpdatePlaylist godoc
// @Summary Update a playlist (owner only)
// @Tags Playlists
// @Accept json
// @Produce json
// @Param id path string true "Playlist ID"
// @Param request body request_models.UpdatePlaylistRequest true "Update payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /playlists/{id} [put]
func (p *PlaylistController) UpdatePlaylist(c *gin.Context) {
	var req request_models.UpdatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	playlist, err := p.playlistService.Update(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, playlist, "Playlist updated")
}

// DeletePlaylist godoc
// @Summary Delete a playlist (owner only)
// @Tags Playlists
// @Produce json
// @Param id path string true "Playlist ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /playlists/{id} [delete]
func (p *PlaylistController) DeletePlaylist(c *gin.Context) {
	if err := p.playlistService.Delete(c.Request.Context(), c.Param("id"), c.GetString("user_id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Playlist deleted")
}

// ToggleItem godoc
// @Summary Toggle an item on a playlist (owner only)
// @Tags Playlists
// @Accept json
// @Produce json
// @Param id path string true "Playlist ID"
// @Param request body request_models.PlaylistItemRequest true "Item payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /playlists/{id}/items [post]
func (p *PlaylistController) ToggleItem(c *gin.Context) {
	var req request_models.PlaylistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	result, err := p.playlistService.ToggleItem(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Playlist updated")
}

// RemoveItem godoc
// @Summary Remove one item from a playlist (owner only)
// @Tags Playlists
// @Produce json
// @Param id path string true "Playlist ID"
// @Param itemId query string true "Item ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /playlists/{id}/items [delete]
func (p *PlaylistController) RemoveItem(c *gin.Context) {
	itemID := c.Query("itemId")
	if itemID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Item ID required")
		return
	}

	if err := p.playlistService.RemoveItem(c.Request.Context(), c.Param("id"), c.GetString("user_id"), itemID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Item removed")
}
