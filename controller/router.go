package controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"swap-backend/pkg/geo"
	"swap-backend/usecase"
)

// NewRouter builds the HTTP API over the given repositories.
func NewRouter(repos usecase.Repositories, geocoder geo.Geocoder, jwtSecret []byte, logger *log.Logger) *gin.Engine {
	items := NewItemController(usecase.NewItemUsecase(repos), logger)
	catalog := NewCatalogController(usecase.NewCatalogUsecase(repos), logger)
	offers := NewOfferController(usecase.NewOfferUsecase(repos), usecase.NewNoteUsecase(repos), logger)
	users := NewUserController(usecase.NewUserUsecase(repos, geocoder), jwtSecret, logger)
	messages := NewMessageController(usecase.NewMessageUsecase(repos), logger)

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery(), RequestLogger(logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api", Authenticate(jwtSecret))
	auth := RequireAuth()
	// every registration costs a geocoding call
	registrations := newRateLimiter(10, time.Minute)

	api.GET("/items", items.List)
	api.POST("/items", auth, items.Create)
	api.GET("/items/:id", items.Get)
	api.PUT("/items/:id", auth, items.Update)
	api.PATCH("/items/:id", auth, items.Update)
	api.DELETE("/items/:id", auth, items.Delete)
	api.GET("/items/:id/comments", messages.Comments)
	api.POST("/items/:id/comments", auth, messages.Comment)

	api.GET("/categories", catalog.ListCategories)
	api.GET("/categories/:id", catalog.GetCategory)

	api.GET("/likes", catalog.ListLikes)
	api.POST("/likes", auth, catalog.Like)
	api.GET("/likes/:id", catalog.GetLike)
	api.DELETE("/likes/:id", auth, catalog.Unlike)

	api.POST("/images", auth, catalog.AddImage)
	api.DELETE("/images/:id", auth, catalog.RemoveImage)

	api.POST("/offers", auth, offers.Create)
	api.GET("/offers/:id", auth, offers.Get)
	api.PUT("/offers/:id", auth, offers.Update)
	api.PATCH("/offers/:id", auth, offers.Update)
	api.DELETE("/offers/:id", auth, offers.Delete)

	api.POST("/notes", auth, offers.CreateNote)
	api.GET("/notes/:id", auth, offers.GetNote)
	api.PUT("/notes/:id", auth, offers.UpdateNote)

	api.POST("/users", registrations.Middleware(), users.Register)
	api.GET("/users/:username", users.Profile)
	api.GET("/account", auth, users.Account)
	api.PUT("/account/location", auth, users.UpdateLocation)
	api.PUT("/account/categories", auth, users.SetInterests)

	api.GET("/messages", auth, messages.Inbox)
	api.POST("/messages", auth, messages.Send)
	api.GET("/messages/:id", auth, messages.Get)

	return r
}
