package controllers

import (
	"net/http"
	"strconv"

	"cinevault/internal/services"
	"cinevault/pkg/utils"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

func language(c *gin.Context) string {
	return c.DefaultQuery("lang", "en-US")
}

func mediaID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid media id")
		return 0, false
	}
	return id, true
}

// Trending godoc
// @Summary Weekly trending titles
// @Tags Catalog
// @Produce json
// @Param type query string false "movie|tv|all" default(all)
// @Success 200 {object} utils.APIResponse
// @Router /catalog/trending [get]
func (cc *CatalogController) Trending(c *gin.Context) {
	items, err := cc.catalogService.Trending(c.Request.Context(), c.DefaultQuery("type", "all"), language(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Trending fetched successfully")
}

// Search godoc
// @Summary Search movies and TV shows
// @Tags Catalog
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /catalog/search [get]
func (cc *CatalogController) Search(c *gin.Context) {
	items, err := cc.catalogService.Search(c.Request.Context(), c.Query("q"), language(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Search results fetched")
}

// Details godoc
// @Summary Details for one movie or TV show
// @Tags Catalog
// @Produce json
// @Param type path string true "movie|tv"
// @Param id path int true "External media id"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /catalog/{type}/{id} [get]
func (cc *CatalogController) Details(c *gin.Context) {
	id, ok := mediaID(c)
	if !ok {
		return
	}

	item, err := cc.catalogService.Details(c.Request.Context(), c.Param("type"), id, language(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, item, "Details fetched successfully")
}

// Recommendations godoc
// @Summary Titles related to one movie or TV show
// @Tags Catalog
// @Produce json
// @Param type path string true "movie|tv"
// @Param id path int true "External media id"
// @Success 200 {object} utils.APIResponse
// @Router /catalog/{type}/{id}/recommendations [get]
func (cc *CatalogController) Recommendations(c *gin.Context) {
	id, ok := mediaID(c)
	if !ok {
		return
	}

	items, err := cc.catalogService.Recommendations(c.Request.Context(), c.Param("type"), id, language(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Recommendations fetched successfully")
}

// Videos godoc
// @Summary Trailers and teasers for one movie or TV show
// @Tags Catalog
// @Produce json
// @Param type path string true "movie|tv"
// @Param id path int true "External media id"
// @Success 200 {object} utils.APIResponse
// @Router /catalog/{type}/{id}/videos [get]
func (cc *CatalogController) Videos(c *gin.Context) {
	id, ok := mediaID(c)
	if !ok {
		return
	}

	videos, err := cc.catalogService.Videos(c.Request.Context(), c.Param("type"), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, videos, "Videos fetched successfully")
}
