// file: internals/features/users/profile/model/user_profile_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: user_profiles

   Consumed slice of the identity collaborator: the newsfeed core reads the
   employer id, the certification flag and the discreet-mode fields. Account
   data (credentials, avatar, CV, ...) lives elsewhere.
   ========================================================= */

type UserProfileModel struct {
	// 1:1 with the identity user, keyed by the user id itself
	UserProfileUserID uuid.UUID `gorm:"type:uuid;primaryKey;column:user_profile_user_id" json:"user_profile_user_id"`

	UserProfileFullName string `gorm:"type:varchar(120);not null;column:user_profile_full_name" json:"user_profile_full_name"`

	// Employer membership (nullable: candidates have none)
	UserProfileEmployerID *uuid.UUID `gorm:"type:uuid;column:user_profile_employer_id;index" json:"user_profile_employer_id,omitempty"`

	// Verified/certified author flag, set by the identity collaborator
	UserProfileIsCertified bool `gorm:"type:boolean;not null;default:false;column:user_profile_is_certified" json:"user_profile_is_certified"`

	// Discreet mode: hides the author's activity from one named employer.
	// Only meaningful when enabled AND a target employer is set.
	UserProfileDiscreetEnabled      bool       `gorm:"type:boolean;not null;default:false;column:user_profile_discreet_enabled" json:"user_profile_discreet_enabled"`
	UserProfileDiscreetEmployerID   *uuid.UUID `gorm:"type:uuid;column:user_profile_discreet_employer_id" json:"user_profile_discreet_employer_id,omitempty"`
	UserProfileDiscreetEmployerName *string    `gorm:"type:varchar(120);column:user_profile_discreet_employer_name" json:"user_profile_discreet_employer_name,omitempty"`

	UserProfileCreatedAt time.Time      `gorm:"not null;autoCreateTime;column:user_profile_created_at" json:"user_profile_created_at"`
	UserProfileUpdatedAt time.Time      `gorm:"not null;autoUpdateTime;column:user_profile_updated_at" json:"user_profile_updated_at"`
	UserProfileDeletedAt gorm.DeletedAt `gorm:"column:user_profile_deleted_at;index" json:"user_profile_deleted_at,omitempty"`
}

func (UserProfileModel) TableName() string { return "user_profiles" }

// DiscreetModeActive reports whether the discreet setting has any filtering
// effect (enabled with a target employer set).
func (p *UserProfileModel) DiscreetModeActive() bool {
	return p.UserProfileDiscreetEnabled && p.UserProfileDiscreetEmployerID != nil
}
