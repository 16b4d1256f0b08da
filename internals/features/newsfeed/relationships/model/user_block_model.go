// file: internals/features/newsfeed/relationships/model/user_block_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: user_blocks

   A single row hides both directions: whichever party created it, neither
   can see or interact with the other's content.
   ========================================================= */

type UserBlockModel struct {
	UserBlockID        uuid.UUID `gorm:"type:uuid;primaryKey;column:user_block_id" json:"user_block_id"`
	UserBlockBlockerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_user_blocks_pair;column:user_block_blocker_id" json:"user_block_blocker_id"`
	UserBlockBlockedID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_user_blocks_pair;index;column:user_block_blocked_id" json:"user_block_blocked_id"`

	UserBlockCreatedAt time.Time `gorm:"not null;autoCreateTime;column:user_block_created_at" json:"user_block_created_at"`
}

func (UserBlockModel) TableName() string { return "user_blocks" }

func (b *UserBlockModel) BeforeCreate(tx *gorm.DB) error {
	if b.UserBlockID == uuid.Nil {
		b.UserBlockID = uuid.New()
	}
	return nil
}
