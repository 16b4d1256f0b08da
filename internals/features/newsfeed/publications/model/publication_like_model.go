// file: internals/features/newsfeed/publications/model/publication_like_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: publication_likes

   The (publication_id, user_id) unique index is the concurrency control
   primitive for like toggles: two concurrent toggles from the same user
   resolve on the constraint, not on an application lock.
   ========================================================= */

type PublicationLikeModel struct {
	PublicationLikeID            uuid.UUID `gorm:"type:uuid;primaryKey;column:publication_like_id" json:"publication_like_id"`
	PublicationLikePublicationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_publication_likes_pair;column:publication_like_publication_id" json:"publication_like_publication_id"`
	PublicationLikeUserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_publication_likes_pair;column:publication_like_user_id" json:"publication_like_user_id"`

	PublicationLikeCreatedAt time.Time `gorm:"not null;autoCreateTime;column:publication_like_created_at" json:"publication_like_created_at"`
}

func (PublicationLikeModel) TableName() string { return "publication_likes" }

func (l *PublicationLikeModel) BeforeCreate(tx *gorm.DB) error {
	if l.PublicationLikeID == uuid.Nil {
		l.PublicationLikeID = uuid.New()
	}
	return nil
}
