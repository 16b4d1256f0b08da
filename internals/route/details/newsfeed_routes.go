// file: internals/route/details/newsfeed_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	modservice "talenthub_backend/internals/features/newsfeed/moderation/service"
	pubCtl "talenthub_backend/internals/features/newsfeed/publications/controller"
	middlewares "talenthub_backend/internals/middlewares"
)

// User-facing newsfeed routes (mounted under the authenticated group).
func NewsfeedUserRoutes(r fiber.Router, db *gorm.DB, dict *modservice.Dictionary) {
	pub := pubCtl.NewPublicationController(db, dict)
	feed := pubCtl.NewFeedController(db)

	r.Get("/newsfeed", feed.List)

	publications := r.Group("/publications")
	publications.Post("/", middlewares.PublishRateLimiter(), pub.Create)
	publications.Get("/:id", pub.GetByID)
	publications.Patch("/:id", pub.Update)
	publications.Delete("/:id", pub.Delete)
	publications.Post("/:id/like", pub.ToggleLike)
}
