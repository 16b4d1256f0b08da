// file: internals/features/newsfeed/moderation/model/moderation_violation_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================================================
   ENUM: ViolationStatus
   ========================================================= */

type ViolationStatus string

const (
	ViolationStatusPending  ViolationStatus = "pending"
	ViolationStatusApproved ViolationStatus = "approved"
	ViolationStatusRejected ViolationStatus = "rejected"
)

func (s ViolationStatus) Valid() bool {
	switch s {
	case ViolationStatusPending, ViolationStatusApproved, ViolationStatusRejected:
		return true
	default:
		return false
	}
}

/* =========================================================
   MODEL: moderation_violations

   At most one pending violation exists per publication; a re-screen on edit
   supersedes the pending row instead of duplicating it. Approve/reject are
   terminal for the row.
   ========================================================= */

type ModerationViolationModel struct {
	ModerationViolationID            uuid.UUID `gorm:"type:uuid;primaryKey;column:moderation_violation_id" json:"moderation_violation_id"`
	// partial unique index backs the at-most-one-pending invariant at the
	// store level; concurrent screeners fall back to the surviving row
	ModerationViolationPublicationID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_moderation_violations_pending,where:moderation_violation_status = 'pending';column:moderation_violation_publication_id" json:"moderation_violation_publication_id"`
	ModerationViolationAuthorID      uuid.UUID `gorm:"type:uuid;not null;index;column:moderation_violation_author_id" json:"moderation_violation_author_id"`

	ModerationViolationCategory string `gorm:"type:varchar(40);not null;default:'profanity';column:moderation_violation_category" json:"moderation_violation_category"`

	// JSON array of matched dictionary terms, insertion order preserved
	ModerationViolationMatchedTerms datatypes.JSON `gorm:"column:moderation_violation_matched_terms" json:"moderation_violation_matched_terms"`

	ModerationViolationStatus ViolationStatus `gorm:"type:varchar(16);not null;default:'pending';index;column:moderation_violation_status" json:"moderation_violation_status"`

	// Audit trail of the admin decision
	ModerationViolationReviewedBy *uuid.UUID `gorm:"type:uuid;column:moderation_violation_reviewed_by" json:"moderation_violation_reviewed_by,omitempty"`
	ModerationViolationReviewedAt *time.Time `gorm:"column:moderation_violation_reviewed_at" json:"moderation_violation_reviewed_at,omitempty"`

	ModerationViolationCreatedAt time.Time `gorm:"not null;autoCreateTime;column:moderation_violation_created_at" json:"moderation_violation_created_at"`
}

func (ModerationViolationModel) TableName() string { return "moderation_violations" }

func (v *ModerationViolationModel) BeforeCreate(tx *gorm.DB) error {
	if v.ModerationViolationID == uuid.Nil {
		v.ModerationViolationID = uuid.New()
	}
	return nil
}
