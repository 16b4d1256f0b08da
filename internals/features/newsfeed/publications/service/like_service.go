// file: internals/features/newsfeed/publications/service/like_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"talenthub_backend/internals/features/newsfeed/errs"
	model "talenthub_backend/internals/features/newsfeed/publications/model"
	relservice "talenthub_backend/internals/features/newsfeed/relationships/service"
)

/* ==============================
   Interaction Gate
============================== */

type LikeService struct {
	DB    *gorm.DB
	Graph *relservice.Graph
}

func NewLikeService(db *gorm.DB, graph *relservice.Graph) *LikeService {
	return &LikeService{DB: db, Graph: graph}
}

type ToggleResult struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"like_count"`
}

// ToggleLike flips the (publication, user) like row and reconciles the
// counter, all in one transaction. A publication the viewer could not legally
// see in their feed cannot be liked either, even when addressed directly by
// id: invisible-by-moderation reads as NotFound, blocked/discreet reads as an
// explicit policy rejection so the client can show feedback.
func (s *LikeService) ToggleLike(ctx context.Context, publicationID, userID uuid.UUID, userEmployerID *uuid.UUID) (ToggleResult, error) {
	var result ToggleResult

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pub model.PublicationModel
		if err := tx.Where("publication_id = ?", publicationID).First(&pub).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.ErrNotFound
			}
			return err
		}

		if !visibleByModeration(&pub, userID) {
			return errs.ErrNotFound
		}

		// same relationship rules as the feed filter, same component
		blocked, err := s.Graph.IsBlocked(ctx, pub.PublicationAuthorID, userID, tx)
		if err != nil {
			return err
		}
		hidden, err := s.Graph.IsHiddenByDiscreetMode(ctx, pub.PublicationAuthorID, userID, userEmployerID, tx)
		if err != nil {
			return err
		}
		if blocked || hidden {
			return errs.ErrPolicyRejected
		}

		// delete-first toggle; the unique pair index resolves concurrent
		// toggles from the same user
		res := tx.
			Where("publication_like_publication_id = ? AND publication_like_user_id = ?", publicationID, userID).
			Delete(&model.PublicationLikeModel{})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			like := model.PublicationLikeModel{
				PublicationLikePublicationID: publicationID,
				PublicationLikeUserID:        userID,
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error; err != nil {
				return err
			}
			result.Liked = true
		}

		// counter always equals the row count, reconciled in this transaction
		var count int64
		if err := tx.Model(&model.PublicationLikeModel{}).
			Where("publication_like_publication_id = ?", publicationID).
			Count(&count).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.PublicationModel{}).
			Where("publication_id = ?", publicationID).
			Update("publication_like_count", count).Error; err != nil {
			return err
		}
		result.LikeCount = int(count)
		return nil
	})
	if err != nil {
		return ToggleResult{}, err
	}
	return result, nil
}

// visibleByModeration mirrors the feed candidate rule as a point predicate:
// approved+active for everyone, still-pending only for the author.
func visibleByModeration(pub *model.PublicationModel, viewerID uuid.UUID) bool {
	if pub.PublicationIsActive && pub.PublicationModerationStatus == model.ModerationStatusApproved {
		return true
	}
	return pub.PublicationModerationStatus == model.ModerationStatusPending &&
		pub.PublicationAuthorID == viewerID
}
