// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	modservice "talenthub_backend/internals/features/newsfeed/moderation/service"
	authMiddleware "talenthub_backend/internals/middlewares/auth"
	routeDetails "talenthub_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, dict *modservice.Dictionary) {
	BaseRoutes(app, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthJWT())

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a", authMiddleware.AuthJWT(), authMiddleware.RequireAdmin())

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Newsfeed routes...")
	routeDetails.NewsfeedUserRoutes(private, db, dict)

	log.Println("[INFO] Mounting Relationship routes...")
	routeDetails.RelationshipUserRoutes(private, db)

	log.Println("[INFO] Mounting Moderation routes...")
	routeDetails.ModerationAdminRoutes(admin, db, dict)
}
