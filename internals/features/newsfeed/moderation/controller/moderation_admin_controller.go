// file: internals/features/newsfeed/moderation/controller/moderation_admin_controller.go
package controller

import (
	"errors"
	"log"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"talenthub_backend/internals/features/newsfeed/errs"
	dto "talenthub_backend/internals/features/newsfeed/moderation/dto"
	service "talenthub_backend/internals/features/newsfeed/moderation/service"
	helper "talenthub_backend/internals/helpers"
)

/* ==============================
   Admin moderation queue
============================== */

type ModerationAdminController struct {
	Ledger    *service.Ledger
	Dict      *service.Dictionary
	Validator *validator.Validate
}

func NewModerationAdminController(db *gorm.DB, dict *service.Dictionary) *ModerationAdminController {
	return &ModerationAdminController{
		Ledger:    service.NewLedger(db),
		Dict:      dict,
		Validator: validator.New(),
	}
}

// GET /moderation/violations/pending
func (h *ModerationAdminController) ListPending(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	items, total, err := h.Ledger.PendingViolations(c.UserContext(), paging.Limit, paging.Offset)
	if err != nil {
		log.Printf("[ERROR] moderation queue list: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load moderation queue")
	}

	return helper.JsonList(c, "", items,
		helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit, len(items)))
}

// POST /moderation/violations/:id/decide
func (h *ModerationAdminController) Decide(c *fiber.Ctx) error {
	adminID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	violationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid violation id")
	}

	var req dto.DecideViolationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := h.Ledger.Decide(c.UserContext(), violationID, adminID, req.Approve()); err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Violation not found")
		case errors.Is(err, errs.ErrAlreadyDecided):
			return helper.JsonError(c, fiber.StatusConflict, "Violation already decided")
		default:
			log.Printf("[ERROR] moderation decide %s: %v", violationID, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record decision")
		}
	}
	return helper.JsonOK(c, "Decision recorded", nil)
}

// POST /moderation/dictionary/reload — coarse invalidation after dictionary edits
func (h *ModerationAdminController) ReloadDictionary(c *fiber.Ctx) error {
	if err := h.Dict.Reload(); err != nil {
		log.Printf("[ERROR] dictionary reload: %v", err)
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Dictionary reload failed")
	}
	return helper.JsonOK(c, "Dictionary reloaded", nil)
}
