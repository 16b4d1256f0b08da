// file: internals/features/newsfeed/moderation/service/ledger.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"talenthub_backend/internals/features/newsfeed/errs"
	model "talenthub_backend/internals/features/newsfeed/moderation/model"
	pubmodel "talenthub_backend/internals/features/newsfeed/publications/model"
)

/* ==============================
   Moderation Ledger
============================== */

type Ledger struct {
	DB *gorm.DB
}

func NewLedger(db *gorm.DB) *Ledger { return &Ledger{DB: db} }

// RecordViolation creates the pending violation for a flagged publication.
// Idempotent: if a pending violation already exists for the publication, its
// matched terms are superseded and the existing id is returned — at most one
// pending violation per publication at any time.
// tx may be nil → uses l.DB.
func (l *Ledger) RecordViolation(ctx context.Context, tx *gorm.DB, publicationID, authorID uuid.UUID, matchedTerms []string) (uuid.UUID, error) {
	db := l.DB
	if tx != nil {
		db = tx
	}
	db = db.WithContext(ctx)

	termsJSON, err := json.Marshal(matchedTerms)
	if err != nil {
		return uuid.Nil, err
	}

	var existing model.ModerationViolationModel
	err = db.
		Where("moderation_violation_publication_id = ? AND moderation_violation_status = ?",
			publicationID, model.ViolationStatusPending).
		First(&existing).Error
	if err == nil {
		// supersede, don't duplicate
		if uerr := db.Model(&existing).
			Update("moderation_violation_matched_terms", datatypes.JSON(termsJSON)).Error; uerr != nil {
			return uuid.Nil, uerr
		}
		return existing.ModerationViolationID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, err
	}

	violation := model.ModerationViolationModel{
		ModerationViolationPublicationID: publicationID,
		ModerationViolationAuthorID:      authorID,
		ModerationViolationMatchedTerms:  datatypes.JSON(termsJSON),
		ModerationViolationStatus:        model.ViolationStatusPending,
	}
	// the partial unique index on (publication_id) WHERE pending is the real
	// guard; a concurrent insert loses the conflict and adopts the winner
	res := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "moderation_violation_publication_id"}},
		TargetWhere: clause.Where{Exprs: []clause.Expression{
			clause.Eq{Column: "moderation_violation_status", Value: string(model.ViolationStatusPending)},
		}},
		DoNothing: true,
	}).Create(&violation)
	if res.Error != nil {
		return uuid.Nil, res.Error
	}
	if res.RowsAffected == 0 {
		var winner model.ModerationViolationModel
		if ferr := db.
			Where("moderation_violation_publication_id = ? AND moderation_violation_status = ?",
				publicationID, model.ViolationStatusPending).
			First(&winner).Error; ferr != nil {
			return uuid.Nil, ferr
		}
		if uerr := db.Model(&winner).
			Update("moderation_violation_matched_terms", datatypes.JSON(termsJSON)).Error; uerr != nil {
			return uuid.Nil, uerr
		}
		return winner.ModerationViolationID, nil
	}
	return violation.ModerationViolationID, nil
}

// Decide resolves a pending violation. Approve republishes the target
// publication; reject leaves it inactive. Both record the reviewing admin and
// are terminal for the violation. The violation row and the publication flags
// move in one transaction.
func (l *Ledger) Decide(ctx context.Context, violationID, adminID uuid.UUID, approve bool) error {
	return l.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var violation model.ModerationViolationModel
		if err := tx.
			Where("moderation_violation_id = ?", violationID).
			First(&violation).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.ErrNotFound
			}
			return err
		}
		if violation.ModerationViolationStatus != model.ViolationStatusPending {
			return errs.ErrAlreadyDecided
		}

		now := time.Now()
		newStatus := model.ViolationStatusRejected
		if approve {
			newStatus = model.ViolationStatusApproved
		}
		if err := tx.Model(&violation).Updates(map[string]any{
			"moderation_violation_status":      newStatus,
			"moderation_violation_reviewed_by": adminID,
			"moderation_violation_reviewed_at": now,
		}).Error; err != nil {
			return err
		}

		updates := pubmodel.ModerationDecisionUpdates(approve)
		if approve {
			updates["publication_profanity_status"] = pubmodel.ProfanityStatusChecked
		}
		res := tx.Model(&pubmodel.PublicationModel{}).
			Where("publication_id = ?", violation.ModerationViolationPublicationID).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// publication soft-deleted while queued; decision still audited
			return nil
		}
		return nil
	})
}

// PendingViolations lists the moderation queue, oldest first, with the target
// publication attached for review context.
func (l *Ledger) PendingViolations(ctx context.Context, limit, offset int) ([]PendingViolation, int64, error) {
	db := l.DB.WithContext(ctx)

	base := db.Model(&model.ModerationViolationModel{}).
		Where("moderation_violation_status = ?", model.ViolationStatusPending).
		Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var violations []model.ModerationViolationModel
	if err := base.
		Order("moderation_violation_created_at ASC, moderation_violation_id ASC").
		Limit(limit).Offset(offset).
		Find(&violations).Error; err != nil {
		return nil, 0, err
	}

	out := make([]PendingViolation, 0, len(violations))
	for _, v := range violations {
		pv := PendingViolation{Violation: v}
		var pub pubmodel.PublicationModel
		// Unscoped: the queue must still show soft-deleted targets for audit
		if err := db.Unscoped().
			Where("publication_id = ?", v.ModerationViolationPublicationID).
			First(&pub).Error; err == nil {
			pv.Publication = &pub
		}
		out = append(out, pv)
	}
	return out, total, nil
}

type PendingViolation struct {
	Violation   model.ModerationViolationModel `json:"violation"`
	Publication *pubmodel.PublicationModel     `json:"publication,omitempty"`
}
