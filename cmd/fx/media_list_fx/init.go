package media_list_fx

import (
	"cinevault/internal/repositories"
	"cinevault/internal/services"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideMediaListRepo, provideMediaListService)

func provideMediaListRepo(db *gorm.DB) repositories.MediaListRepository {
	return repositories.NewMediaListRepository(db)
}

func provideMediaListService(listRepo repositories.MediaListRepository, accountRepo repositories.AccountRepository) services.MediaListServiceInterface {
	return services.NewMediaListService(listRepo, accountRepo)
}
