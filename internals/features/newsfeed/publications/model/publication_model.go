// file: internals/features/newsfeed/publications/model/publication_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================================================
   ENUM: PublicationVisibility
   ========================================================= */

type PublicationVisibility string

const (
	PublicationVisibilityPublic     PublicationVisibility = "public"
	PublicationVisibilityRestricted PublicationVisibility = "restricted"
)

func (v PublicationVisibility) Valid() bool {
	switch v {
	case PublicationVisibilityPublic, PublicationVisibilityRestricted:
		return true
	default:
		return false
	}
}

/* =========================================================
   ENUM: ModerationStatus / ProfanityStatus
   ========================================================= */

type ModerationStatus string

const (
	ModerationStatusPending  ModerationStatus = "pending"
	ModerationStatusApproved ModerationStatus = "approved"
	ModerationStatusRejected ModerationStatus = "rejected"
)

func (s ModerationStatus) Valid() bool {
	switch s {
	case ModerationStatusPending, ModerationStatusApproved, ModerationStatusRejected:
		return true
	default:
		return false
	}
}

type ProfanityStatus string

const (
	ProfanityStatusPending ProfanityStatus = "pending"
	ProfanityStatusChecked ProfanityStatus = "checked"
	ProfanityStatusFlagged ProfanityStatus = "flagged"
)

/* =========================================================
   MODEL: publications
   ========================================================= */

type PublicationModel struct {
	PublicationID       uuid.UUID `gorm:"type:uuid;primaryKey;column:publication_id" json:"publication_id"`
	PublicationAuthorID uuid.UUID `gorm:"type:uuid;not null;index;column:publication_author_id" json:"publication_author_id"`

	PublicationContent  string  `gorm:"type:text;not null;column:publication_content" json:"publication_content"`
	PublicationImageURL *string `gorm:"type:text;column:publication_image_url" json:"publication_image_url,omitempty"`

	PublicationCategory      *string        `gorm:"type:varchar(40);column:publication_category" json:"publication_category,omitempty"`
	PublicationIsAchievement bool           `gorm:"type:boolean;not null;default:false;column:publication_is_achievement" json:"publication_is_achievement"`
	PublicationHashtags      datatypes.JSON `gorm:"column:publication_hashtags" json:"publication_hashtags,omitempty"`

	PublicationVisibility PublicationVisibility `gorm:"type:varchar(16);not null;default:'public';column:publication_visibility" json:"publication_visibility"`

	// Soft-delete marker (deleted_at below carries the timestamp)
	// no column default: a zero-valued field with a default tag would be
	// omitted from the INSERT, and a flagged publication must persist as
	// inactive. ApplyScreenResult always sets this before the first write.
	PublicationIsActive bool `gorm:"type:boolean;not null;column:publication_is_active" json:"publication_is_active"`

	// Derived counters; reconciled against the like rows inside the same
	// transaction that mutates them
	PublicationLikeCount    int `gorm:"type:int;not null;default:0;column:publication_like_count" json:"publication_like_count"`
	PublicationCommentCount int `gorm:"type:int;not null;default:0;column:publication_comment_count" json:"publication_comment_count"`

	// Moderation state machine
	PublicationModerationStatus        ModerationStatus `gorm:"type:varchar(16);not null;default:'pending';index;column:publication_moderation_status" json:"publication_moderation_status"`
	PublicationProfanityStatus         ProfanityStatus  `gorm:"type:varchar(16);not null;default:'pending';column:publication_profanity_status" json:"publication_profanity_status"`
	PublicationHasUnmoderatedProfanity bool             `gorm:"type:boolean;not null;default:false;column:publication_has_unmoderated_profanity" json:"publication_has_unmoderated_profanity"`

	PublicationCreatedAt time.Time      `gorm:"not null;autoCreateTime;index;column:publication_created_at" json:"publication_created_at"`
	PublicationUpdatedAt time.Time      `gorm:"not null;autoUpdateTime;column:publication_updated_at" json:"publication_updated_at"`
	PublicationDeletedAt gorm.DeletedAt `gorm:"column:publication_deleted_at;index" json:"publication_deleted_at,omitempty"`
}

func (PublicationModel) TableName() string { return "publications" }

func (p *PublicationModel) BeforeCreate(tx *gorm.DB) error {
	if p.PublicationID == uuid.Nil {
		p.PublicationID = uuid.New()
	}
	return nil
}

/* =========================================================
   Moderation state → legal flag combinations

   The five flags (moderation status, profanity status, unmoderated flag,
   active, deleted) only have a handful of legal combinations. They are
   always derived from the screening/decision result through these helpers,
   never set independently.
   ========================================================= */

// ApplyScreenResult seeds the moderation state on create/edit.
func (p *PublicationModel) ApplyScreenResult(flagged bool) {
	if flagged {
		p.PublicationModerationStatus = ModerationStatusPending
		p.PublicationProfanityStatus = ProfanityStatusFlagged
		p.PublicationHasUnmoderatedProfanity = true
		p.PublicationIsActive = false
		return
	}
	p.PublicationModerationStatus = ModerationStatusApproved
	p.PublicationProfanityStatus = ProfanityStatusChecked
	p.PublicationHasUnmoderatedProfanity = false
	p.PublicationIsActive = true
}

// ModerationDecisionUpdates returns the column updates for an admin decision.
func ModerationDecisionUpdates(approved bool) map[string]any {
	if approved {
		return map[string]any{
			"publication_moderation_status":         ModerationStatusApproved,
			"publication_has_unmoderated_profanity": false,
			"publication_is_active":                 true,
		}
	}
	return map[string]any{
		"publication_moderation_status":         ModerationStatusRejected,
		"publication_has_unmoderated_profanity": false,
		"publication_is_active":                 false,
	}
}
