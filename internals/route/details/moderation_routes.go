// file: internals/route/details/moderation_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	modCtl "talenthub_backend/internals/features/newsfeed/moderation/controller"
	modservice "talenthub_backend/internals/features/newsfeed/moderation/service"
)

// Admin-only moderation queue & dictionary routes.
func ModerationAdminRoutes(r fiber.Router, db *gorm.DB, dict *modservice.Dictionary) {
	mod := modCtl.NewModerationAdminController(db, dict)

	violations := r.Group("/moderation/violations")
	violations.Get("/pending", mod.ListPending)
	violations.Post("/:id/decide", mod.Decide)

	r.Post("/moderation/dictionary/reload", mod.ReloadDictionary)
}
