// file: internals/features/newsfeed/publications/service/publish_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"talenthub_backend/internals/features/newsfeed/errs"
	modservice "talenthub_backend/internals/features/newsfeed/moderation/service"
	model "talenthub_backend/internals/features/newsfeed/publications/model"
	relservice "talenthub_backend/internals/features/newsfeed/relationships/service"
)

/* ==============================
   Publication write path
============================== */

type PublishService struct {
	DB     *gorm.DB
	Dict   *modservice.Dictionary
	Ledger *modservice.Ledger
	Graph  *relservice.Graph
}

func NewPublishService(db *gorm.DB, dict *modservice.Dictionary, graph *relservice.Graph) *PublishService {
	return &PublishService{
		DB:     db,
		Dict:   dict,
		Ledger: modservice.NewLedger(db),
		Graph:  graph,
	}
}

// ModerationWarning travels back to the author when their content was flagged
// and queued for review.
type ModerationWarning struct {
	Flagged      bool     `json:"flagged"`
	Severity     string   `json:"severity,omitempty"`
	MatchedTerms []string `json:"matched_terms,omitempty"`
}

// Create screens the content and persists the publication with the resulting
// moderation state. A flagged publication and its pending violation are
// written in the same transaction; it stays invisible to everyone but the
// author and the moderation queue until an admin approves it.
func (s *PublishService) Create(ctx context.Context, pub *model.PublicationModel) (*ModerationWarning, error) {
	screen := s.Dict.Screen(pub.PublicationContent)
	pub.ApplyScreenResult(screen.HasProfanity)

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(pub).Error; err != nil {
			return err
		}
		if screen.HasProfanity {
			if _, err := s.Ledger.RecordViolation(ctx, tx, pub.PublicationID, pub.PublicationAuthorID, screen.MatchedTerms); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !screen.HasProfanity {
		return nil, nil
	}
	return &ModerationWarning{
		Flagged:      true,
		Severity:     string(screen.Severity),
		MatchedTerms: screen.MatchedTerms,
	}, nil
}

// Update lets the owner change content and visibility only. Changed content
// is re-screened: a re-flag supersedes the pending violation instead of
// duplicating it, a clean re-screen clears the flag.
func (s *PublishService) Update(ctx context.Context, publicationID, authorID uuid.UUID, content *string, visibility *model.PublicationVisibility) (*model.PublicationModel, *ModerationWarning, error) {
	var pub model.PublicationModel
	var warning *ModerationWarning

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("publication_id = ?", publicationID).First(&pub).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.ErrNotFound
			}
			return err
		}
		if pub.PublicationAuthorID != authorID {
			return errs.ErrPolicyRejected
		}

		if visibility != nil {
			pub.PublicationVisibility = *visibility
		}

		if content != nil && *content != pub.PublicationContent {
			pub.PublicationContent = *content

			screen := s.Dict.Screen(pub.PublicationContent)
			pub.ApplyScreenResult(screen.HasProfanity)

			if screen.HasProfanity {
				if _, err := s.Ledger.RecordViolation(ctx, tx, pub.PublicationID, pub.PublicationAuthorID, screen.MatchedTerms); err != nil {
					return err
				}
				warning = &ModerationWarning{
					Flagged:      true,
					Severity:     string(screen.Severity),
					MatchedTerms: screen.MatchedTerms,
				}
			}
		}

		return tx.Save(&pub).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return &pub, warning, nil
}

// SoftDelete marks the publication deleted (owner or admin). The row stays
// behind its ledger references; nothing hard-deletes it.
func (s *PublishService) SoftDelete(ctx context.Context, publicationID, requesterID uuid.UUID, isAdmin bool) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pub model.PublicationModel
		if err := tx.Where("publication_id = ?", publicationID).First(&pub).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.ErrNotFound
			}
			return err
		}
		if !isAdmin && pub.PublicationAuthorID != requesterID {
			return errs.ErrPolicyRejected
		}

		if err := tx.Model(&pub).Update("publication_is_active", false).Error; err != nil {
			return err
		}
		return tx.Delete(&pub).Error
	})
}

// GetByID fetches one publication under the same rules the feed applies.
// Moderation-invisible content reads as NotFound for everyone but the author
// and admins; a block or discreet-mode boundary reads as a policy rejection,
// so "hidden from you" stays distinguishable from "never existed".
func (s *PublishService) GetByID(ctx context.Context, publicationID, viewerID uuid.UUID, viewerEmployerID *uuid.UUID, isAdmin bool) (*model.PublicationModel, error) {
	var pub model.PublicationModel
	if err := s.DB.WithContext(ctx).Where("publication_id = ?", publicationID).First(&pub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	if !visibleByModeration(&pub, viewerID) && !isAdmin {
		return nil, errs.ErrNotFound
	}

	// relationship boundaries are between members; a reviewing admin is not
	// a party to them
	if isAdmin {
		return &pub, nil
	}

	blocked, err := s.Graph.IsBlocked(ctx, pub.PublicationAuthorID, viewerID, nil)
	if err != nil {
		return nil, err
	}
	hidden, err := s.Graph.IsHiddenByDiscreetMode(ctx, pub.PublicationAuthorID, viewerID, viewerEmployerID, nil)
	if err != nil {
		return nil, err
	}
	if blocked || hidden {
		return nil, errs.ErrPolicyRejected
	}

	return &pub, nil
}
