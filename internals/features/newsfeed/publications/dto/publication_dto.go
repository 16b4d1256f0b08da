// file: internals/features/newsfeed/publications/dto/publication_dto.go
package dto

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "talenthub_backend/internals/features/newsfeed/publications/model"
	service "talenthub_backend/internals/features/newsfeed/publications/service"
)

/* ==============================
   CREATE (POST /publications)
============================== */

type CreatePublicationRequest struct {
	PublicationContent  string  `json:"publication_content" validate:"required,max=5000"`
	PublicationImageURL *string `json:"publication_image_url" validate:"omitempty,url"`

	PublicationCategory      *string  `json:"publication_category" validate:"omitempty,max=40"`
	PublicationIsAchievement *bool    `json:"publication_is_achievement" validate:"omitempty"`
	PublicationHashtags      []string `json:"publication_hashtags" validate:"omitempty,max=20,dive,max=60"`

	PublicationVisibility *model.PublicationVisibility `json:"publication_visibility" validate:"omitempty,oneof=public restricted"`
}

func (r *CreatePublicationRequest) ToModel(authorID uuid.UUID) *model.PublicationModel {
	visibility := model.PublicationVisibilityPublic
	if r.PublicationVisibility != nil {
		visibility = *r.PublicationVisibility
	}

	var hashtags datatypes.JSON
	if len(r.PublicationHashtags) > 0 {
		if raw, err := json.Marshal(normalizeHashtags(r.PublicationHashtags)); err == nil {
			hashtags = datatypes.JSON(raw)
		}
	}

	return &model.PublicationModel{
		PublicationAuthorID:      authorID,
		PublicationContent:       strings.TrimSpace(r.PublicationContent),
		PublicationImageURL:      trimPtr(r.PublicationImageURL),
		PublicationCategory:      trimPtr(r.PublicationCategory),
		PublicationIsAchievement: r.PublicationIsAchievement != nil && *r.PublicationIsAchievement,
		PublicationHashtags:      hashtags,
		PublicationVisibility:    visibility,
	}
}

/* ==============================
   UPDATE (PATCH /publications/:id) — content & visibility only
============================== */

type UpdatePublicationRequest struct {
	PublicationContent    *string                      `json:"publication_content" validate:"omitempty,max=5000"`
	PublicationVisibility *model.PublicationVisibility `json:"publication_visibility" validate:"omitempty,oneof=public restricted"`
}

func (r *UpdatePublicationRequest) Content() *string {
	if r.PublicationContent == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.PublicationContent)
	return &trimmed
}

/* ==============================
   RESPONSES
============================== */

type PublicationResponse struct {
	Publication       model.PublicationModel     `json:"publication"`
	ModerationWarning *service.ModerationWarning `json:"moderation_warning,omitempty"`
}

/* ==============================
   Small helpers
============================== */

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func normalizeHashtags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(t, "#")))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
