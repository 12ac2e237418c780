package main

import (
	"context"
	"log"
	"os"

	"cinevault/cmd/fx/account_fx"
	"cinevault/cmd/fx/catalog_fx"
	"cinevault/cmd/fx/controllers_fx"
	"cinevault/cmd/fx/db_fx"
	"cinevault/cmd/fx/entitlement_fx"
	"cinevault/cmd/fx/mail_fx"
	"cinevault/cmd/fx/media_list_fx"
	"cinevault/cmd/fx/memcache_fx"
	"cinevault/cmd/fx/plan_fx"
	"cinevault/cmd/fx/playlist_fx"
	"cinevault/internal/api/controllers"
	"cinevault/internal/infra"
	"cinevault/internal/models/db_models"
	"cinevault/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		account_fx.Module,
		entitlement_fx.Module,
		plan_fx.Module,
		media_list_fx.Module,
		playlist_fx.Module,
		catalog_fx.Module,
		controllers_fx.Module,

		fx.Invoke(infra.Migrate),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	subscriptionController *controllers.SubscriptionController,
	mediaListController *controllers.MediaListController,
	playlistController *controllers.PlaylistController,
	catalogController *controllers.CatalogController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, subscriptionController, mediaListController, playlistController, catalogController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	subscriptionController *controllers.SubscriptionController,
	mediaListController *controllers.MediaListController,
	playlistController *controllers.PlaylistController,
	catalogController *controllers.CatalogController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.POST("/forgot-password", accountController.ForgotPassword)
	accounts.POST("/reset-password", accountController.ResetPassword)

	accountsAuthed := accounts.Group("")
	accountsAuthed.Use(middleware.JWTAuthMiddleware())
	accountsAuthed.POST("/setup", accountController.CompleteSetup)
	accountsAuthed.GET("/check-setup", accountController.CheckSetup)
	accountsAuthed.GET("/me", accountController.GetProfile)

	subscription := r.Group("/subscription")
	subscription.GET("/plans", subscriptionController.GetPlans)

	subscriptionAuthed := subscription.Group("")
	subscriptionAuthed.Use(middleware.JWTAuthMiddleware())
	subscriptionAuthed.GET("", subscriptionController.GetSubscription)
	subscriptionAuthed.POST("", subscriptionController.ManageSubscription)
	subscriptionAuthed.GET("/check", subscriptionController.CheckAccess)

	lists := r.Group("")
	lists.Use(middleware.JWTAuthMiddleware())
	lists.GET("/favorites", mediaListController.List(db_models.ListFavorites))
	lists.POST("/favorites", mediaListController.Toggle(db_models.ListFavorites))
	lists.GET("/watchlist", mediaListController.List(db_models.ListWatchlist))
	lists.POST("/watchlist", mediaListController.Toggle(db_models.ListWatchlist))
	lists.GET("/watch-later", mediaListController.List(db_models.ListWatchLater))
	lists.POST("/watch-later", mediaListController.Toggle(db_models.ListWatchLater))

	playlists := r.Group("/playlists")
	// Reads tolerate anonymous callers so public playlists stay shareable.
	playlists.GET("", middleware.OptionalAuthMiddleware(), playlistController.ListPlaylists)
	playlists.GET("/:id", middleware.OptionalAuthMiddleware(), playlistController.GetPlaylist)

	playlistsAuthed := playlists.Group("")
	playlistsAuthed.Use(middleware.JWTAuthMiddleware())
	playlistsAuthed.POST("", playlistController.CreatePlaylist)
	playlistsAuthed.PUT("/:id", playlistController.UpdatePlaylist)
	playlistsAuthed.DELETE("/:id", playlistController.DeletePlaylist)
	playlistsAuthed.POST("/:id/items", playlistController.ToggleItem)
	playlistsAuthed.DELETE("/:id/items", playlistController.RemoveItem)

	catalog := r.Group("/catalog")
	catalog.GET("/trending", catalogController.Trending)
	catalog.GET("/search", catalogController.Search)
	catalog.GET("/:type/:id", catalogController.Details)
	catalog.GET("/:type/:id/recommendations", catalogController.Recommendations)
	catalog.GET("/:type/:id/videos", catalogController.Videos)
}
