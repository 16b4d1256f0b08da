// file: internals/features/newsfeed/relationships/model/user_follow_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Follows are managed by the connections subsystem; the relationship graph
// only touches them to purge the pair when a block is created.
type UserFollowModel struct {
	UserFollowID         uuid.UUID `gorm:"type:uuid;primaryKey;column:user_follow_id" json:"user_follow_id"`
	UserFollowFollowerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_user_follows_pair;column:user_follow_follower_id" json:"user_follow_follower_id"`
	UserFollowFollowedID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_user_follows_pair;column:user_follow_followed_id" json:"user_follow_followed_id"`

	UserFollowCreatedAt time.Time `gorm:"not null;autoCreateTime;column:user_follow_created_at" json:"user_follow_created_at"`
}

func (UserFollowModel) TableName() string { return "user_follows" }

func (f *UserFollowModel) BeforeCreate(tx *gorm.DB) error {
	if f.UserFollowID == uuid.Nil {
		f.UserFollowID = uuid.New()
	}
	return nil
}
