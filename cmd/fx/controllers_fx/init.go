package controllers_fx

import (
	"cinevault/internal/api/controllers"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewSubscriptionController),
	fx.Provide(controllers.NewMediaListController),
	fx.Provide(controllers.NewPlaylistController),
	fx.Provide(controllers.NewCatalogController))
