// file: internals/route/details/relationship_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	relCtl "talenthub_backend/internals/features/newsfeed/relationships/controller"
)

func RelationshipUserRoutes(r fiber.Router, db *gorm.DB) {
	rel := relCtl.NewRelationshipController(db)

	blocks := r.Group("/blocks")
	blocks.Get("/", rel.ListBlocks)
	blocks.Post("/:user_id", rel.Block)
	blocks.Delete("/:user_id", rel.Unblock)

	r.Put("/profile/discreet-mode", rel.SetDiscreetMode)
}
