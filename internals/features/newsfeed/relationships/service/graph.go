// file: internals/features/newsfeed/relationships/service/graph.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"talenthub_backend/internals/features/newsfeed/errs"
	model "talenthub_backend/internals/features/newsfeed/relationships/model"
	profilemodel "talenthub_backend/internals/features/users/profile/model"
)

/* ==============================
   Relationship Graph

   Single source of truth for the two privacy predicates. The feed filter and
   the interaction gate both consult this component — the point checks below
   for single targets, VisibleAuthorsScope for set filtering. No caching sits
   in front of it: staleness here is a privacy leak, not a perf nuisance.
============================== */

type Graph struct {
	DB *gorm.DB
}

func NewGraph(db *gorm.DB) *Graph { return &Graph{DB: db} }

// IsBlocked reports whether a block edge exists between a and b in either
// direction. tx may be nil → uses g.DB.
func (g *Graph) IsBlocked(ctx context.Context, a, b uuid.UUID, tx *gorm.DB) (bool, error) {
	if a == b {
		return false, nil
	}
	db := g.DB
	if tx != nil {
		db = tx
	}

	var n int64
	err := db.WithContext(ctx).Model(&model.UserBlockModel{}).
		Where("(user_block_blocker_id = ? AND user_block_blocked_id = ?) OR (user_block_blocker_id = ? AND user_block_blocked_id = ?)",
			a, b, b, a).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// IsHiddenByDiscreetMode reports whether the author hides their activity from
// the viewer's employer. The author's own publications are never hidden from
// the author; viewers without an employer are never filtered.
func (g *Graph) IsHiddenByDiscreetMode(ctx context.Context, authorID, viewerID uuid.UUID, viewerEmployerID *uuid.UUID, tx *gorm.DB) (bool, error) {
	if authorID == viewerID || viewerEmployerID == nil {
		return false, nil
	}
	db := g.DB
	if tx != nil {
		db = tx
	}

	var profile profilemodel.UserProfileModel
	err := db.WithContext(ctx).
		Select("user_profile_discreet_enabled", "user_profile_discreet_employer_id").
		Where("user_profile_user_id = ?", authorID).
		First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !profile.DiscreetModeActive() {
		return false, nil
	}
	return *profile.UserProfileDiscreetEmployerID == *viewerEmployerID, nil
}

// VisibleAuthorsScope applies the same two predicates as a query scope over
// the publications table, so feed filtering and the per-item gate can never
// drift apart.
func (g *Graph) VisibleAuthorsScope(viewerID uuid.UUID, viewerEmployerID *uuid.UUID) func(tx *gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		tx = tx.Where(`NOT EXISTS (
			SELECT 1 FROM user_blocks b
			WHERE (b.user_block_blocker_id = publications.publication_author_id AND b.user_block_blocked_id = ?)
			   OR (b.user_block_blocker_id = ? AND b.user_block_blocked_id = publications.publication_author_id)
		)`, viewerID, viewerID)

		if viewerEmployerID != nil {
			tx = tx.Where(`publications.publication_author_id = ? OR NOT EXISTS (
				SELECT 1 FROM user_profiles dp
				WHERE dp.user_profile_user_id = publications.publication_author_id
				  AND dp.user_profile_discreet_enabled = ?
				  AND dp.user_profile_discreet_employer_id = ?
			)`, viewerID, true, *viewerEmployerID)
		}
		return tx
	}
}

/* ==============================
   Mutations — effective immediately for all subsequent reads
============================== */

// Block creates the edge and purges any follow between the pair, one
// transaction. Idempotent on the pair constraint.
func (g *Graph) Block(ctx context.Context, blockerID, blockedID uuid.UUID) error {
	if blockerID == blockedID {
		return errs.ErrPolicyRejected
	}
	return g.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		edge := model.UserBlockModel{
			UserBlockBlockerID: blockerID,
			UserBlockBlockedID: blockedID,
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&edge).Error; err != nil {
			return err
		}
		// side effect: a block severs the follow/connection both ways
		return tx.
			Where("(user_follow_follower_id = ? AND user_follow_followed_id = ?) OR (user_follow_follower_id = ? AND user_follow_followed_id = ?)",
				blockerID, blockedID, blockedID, blockerID).
			Delete(&model.UserFollowModel{}).Error
	})
}

// Unblock removes the caller's own edge only; an edge created by the other
// party keeps hiding both sides.
func (g *Graph) Unblock(ctx context.Context, blockerID, blockedID uuid.UUID) error {
	res := g.DB.WithContext(ctx).
		Where("user_block_blocker_id = ? AND user_block_blocked_id = ?", blockerID, blockedID).
		Delete(&model.UserBlockModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (g *Graph) ListBlocks(ctx context.Context, userID uuid.UUID) ([]model.UserBlockModel, error) {
	var edges []model.UserBlockModel
	err := g.DB.WithContext(ctx).
		Where("user_block_blocker_id = ?", userID).
		Order("user_block_created_at DESC").
		Find(&edges).Error
	return edges, err
}

// SetDiscreetMode updates the author's discreet-mode fields. Disabling clears
// the target employer so a later re-enable cannot silently reuse a stale one.
func (g *Graph) SetDiscreetMode(ctx context.Context, userID uuid.UUID, enabled bool, employerID *uuid.UUID, employerName *string) error {
	updates := map[string]any{
		"user_profile_discreet_enabled":       enabled,
		"user_profile_discreet_employer_id":   employerID,
		"user_profile_discreet_employer_name": employerName,
	}
	if !enabled {
		updates["user_profile_discreet_employer_id"] = nil
		updates["user_profile_discreet_employer_name"] = nil
	}
	res := g.DB.WithContext(ctx).Model(&profilemodel.UserProfileModel{}).
		Where("user_profile_user_id = ?", userID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}
