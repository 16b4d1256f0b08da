// file: internals/features/newsfeed/publications/controller/publication_controller.go
package controller

import (
	"errors"

	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"talenthub_backend/internals/features/newsfeed/errs"
	modservice "talenthub_backend/internals/features/newsfeed/moderation/service"
	dto "talenthub_backend/internals/features/newsfeed/publications/dto"
	service "talenthub_backend/internals/features/newsfeed/publications/service"
	relservice "talenthub_backend/internals/features/newsfeed/relationships/service"
	helper "talenthub_backend/internals/helpers"
)

/* ==============================
   Controller
============================== */

type PublicationController struct {
	Publish   *service.PublishService
	Likes     *service.LikeService
	Validator *validator.Validate
}

func NewPublicationController(db *gorm.DB, dict *modservice.Dictionary) *PublicationController {
	graph := relservice.NewGraph(db)
	return &PublicationController{
		Publish:   service.NewPublishService(db, dict, graph),
		Likes:     service.NewLikeService(db, graph),
		Validator: validator.New(),
	}
}

// POST /publications
func (h *PublicationController) Create(c *fiber.Ctx) error {
	authorID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreatePublicationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	pub := req.ToModel(authorID)
	warning, err := h.Publish.Create(c.UserContext(), pub)
	if err != nil {
		return translateServiceError(c, err)
	}

	return helper.JsonCreated(c, "Publication created", dto.PublicationResponse{
		Publication:       *pub,
		ModerationWarning: warning,
	})
}

// PATCH /publications/:id
func (h *PublicationController) Update(c *fiber.Ctx) error {
	authorID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	publicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid publication id")
	}

	var req dto.UpdatePublicationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	pub, warning, err := h.Publish.Update(c.UserContext(), publicationID, authorID, req.Content(), req.PublicationVisibility)
	if err != nil {
		return translateServiceError(c, err)
	}

	return helper.JsonOK(c, "Publication updated", dto.PublicationResponse{
		Publication:       *pub,
		ModerationWarning: warning,
	})
}

// DELETE /publications/:id
func (h *PublicationController) Delete(c *fiber.Ctx) error {
	requesterID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	publicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid publication id")
	}

	if err := h.Publish.SoftDelete(c.UserContext(), publicationID, requesterID, helper.IsAdminFromLocals(c)); err != nil {
		return translateServiceError(c, err)
	}
	return helper.JsonOK(c, "Publication deleted", nil)
}

// GET /publications/:id
func (h *PublicationController) GetByID(c *fiber.Ctx) error {
	viewerID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	publicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid publication id")
	}

	pub, err := h.Publish.GetByID(c.UserContext(), publicationID, viewerID,
		helper.GetEmployerIDFromLocals(c), helper.IsAdminFromLocals(c))
	if err != nil {
		return translateServiceError(c, err)
	}
	return helper.JsonOK(c, "", pub)
}

// POST /publications/:id/like
func (h *PublicationController) ToggleLike(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	publicationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid publication id")
	}

	result, err := h.Likes.ToggleLike(c.UserContext(), publicationID, userID, helper.GetEmployerIDFromLocals(c))
	if err != nil {
		return translateServiceError(c, err)
	}
	return helper.JsonOK(c, "", result)
}

/* ==============================
   Error translation (request boundary)
============================== */

func translateServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Publication not found")
	case errors.Is(err, errs.ErrPolicyRejected):
		return helper.JsonError(c, fiber.StatusForbidden, "This action is not available for this content")
	case errors.Is(err, errs.ErrAlreadyDecided):
		return helper.JsonError(c, fiber.StatusConflict, "Violation already decided")
	case errors.Is(err, errs.ErrStoreUnavailable):
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Storage temporarily unavailable")
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
}
