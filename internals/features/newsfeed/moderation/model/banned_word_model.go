// file: internals/features/newsfeed/moderation/model/banned_word_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   ENUM: Severity
   ========================================================= */

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	default:
		return false
	}
}

// Rank orders severities so the screener can report the worst match.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

/* =========================================================
   MODEL: banned_words

   The dictionary is managed by the admin tooling (out of scope); this core
   only reads it. Terms are stored lowercase.
   ========================================================= */

type BannedWordModel struct {
	BannedWordID       uuid.UUID `gorm:"type:uuid;primaryKey;column:banned_word_id" json:"banned_word_id"`
	BannedWordTerm     string    `gorm:"type:varchar(80);not null;uniqueIndex;column:banned_word_term" json:"banned_word_term"`
	BannedWordSeverity Severity  `gorm:"type:varchar(8);not null;default:'medium';column:banned_word_severity" json:"banned_word_severity"`

	BannedWordCreatedAt time.Time `gorm:"not null;autoCreateTime;column:banned_word_created_at" json:"banned_word_created_at"`
}

func (BannedWordModel) TableName() string { return "banned_words" }

func (w *BannedWordModel) BeforeCreate(tx *gorm.DB) error {
	if w.BannedWordID == uuid.Nil {
		w.BannedWordID = uuid.New()
	}
	return nil
}
