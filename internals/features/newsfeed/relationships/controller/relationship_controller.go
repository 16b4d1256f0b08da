// file: internals/features/newsfeed/relationships/controller/relationship_controller.go
package controller

import (
	"errors"
	"log"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"talenthub_backend/internals/features/newsfeed/errs"
	dto "talenthub_backend/internals/features/newsfeed/relationships/dto"
	service "talenthub_backend/internals/features/newsfeed/relationships/service"
	helper "talenthub_backend/internals/helpers"
)

/* ==============================
   Blocks & discreet mode
============================== */

type RelationshipController struct {
	Graph     *service.Graph
	Validator *validator.Validate
}

func NewRelationshipController(db *gorm.DB) *RelationshipController {
	return &RelationshipController{
		Graph:     service.NewGraph(db),
		Validator: validator.New(),
	}
}

// POST /blocks/:user_id
func (h *RelationshipController) Block(c *fiber.Ctx) error {
	blockerID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	blockedID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	if err := h.Graph.Block(c.UserContext(), blockerID, blockedID); err != nil {
		if errors.Is(err, errs.ErrPolicyRejected) {
			return helper.JsonError(c, fiber.StatusBadRequest, "You cannot block yourself")
		}
		log.Printf("[ERROR] block %s -> %s: %v", blockerID, blockedID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create block")
	}
	return helper.JsonOK(c, "User blocked", nil)
}

// DELETE /blocks/:user_id
func (h *RelationshipController) Unblock(c *fiber.Ctx) error {
	blockerID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	blockedID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	if err := h.Graph.Unblock(c.UserContext(), blockerID, blockedID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Block not found")
		}
		log.Printf("[ERROR] unblock %s -> %s: %v", blockerID, blockedID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to remove block")
	}
	return helper.JsonOK(c, "User unblocked", nil)
}

// GET /blocks
func (h *RelationshipController) ListBlocks(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	edges, err := h.Graph.ListBlocks(c.UserContext(), userID)
	if err != nil {
		log.Printf("[ERROR] list blocks %s: %v", userID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list blocks")
	}
	return helper.JsonOK(c, "", edges)
}

// PUT /profile/discreet-mode
func (h *RelationshipController) SetDiscreetMode(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.SetDiscreetModeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := h.Graph.SetDiscreetMode(c.UserContext(), userID, req.Enabled, req.EmployerID, req.Name()); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Profile not found")
		}
		log.Printf("[ERROR] discreet mode %s: %v", userID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update discreet mode")
	}
	return helper.JsonOK(c, "Discreet mode updated", nil)
}
