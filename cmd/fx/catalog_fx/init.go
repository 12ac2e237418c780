package catalog_fx

import (
	"cinevault/internal/services"
	"cinevault/pkg/utils"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	utils.NewTMDBClient,
	provideCatalogService)

func provideCatalogService(tmdb *utils.TMDBClient) services.CatalogServiceInterface {
	return services.NewCatalogService(tmdb)
}
