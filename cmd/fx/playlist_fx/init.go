package playlist_fx

import (
	"cinevault/internal/repositories"
	"cinevault/internal/services"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	providePlaylistRepo, providePlaylistService)

func providePlaylistRepo(db *gorm.DB) repositories.PlaylistRepository {
	return repositories.NewPlaylistRepository(db)
}

func providePlaylistService(playlistRepo repositories.PlaylistRepository, accountRepo repositories.AccountRepository) services.PlaylistServiceInterface {
	return services.NewPlaylistService(playlistRepo, accountRepo)
}
