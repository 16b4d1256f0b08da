// file: internals/features/newsfeed/moderation/service/screener.go
package service

import (
	"log"
	"strings"
	"sync"
	"time"
	"unicode"

	"gorm.io/gorm"

	model "talenthub_backend/internals/features/newsfeed/moderation/model"
)

/* ==============================
   Screen result
============================== */

type ScreenResult struct {
	HasProfanity bool           `json:"has_profanity"`
	Severity     model.Severity `json:"severity,omitempty"`
	MatchedTerms []string       `json:"matched_terms,omitempty"`
}

/* ==============================
   Dictionary cache

   The banned-word dictionary is read-only at request time and cached
   process-wide. Reload() is the coarse invalidation hook for admin edits;
   the refresh loop bounds staleness to seconds either way.
============================== */

type Dictionary struct {
	db *gorm.DB

	mu     sync.RWMutex
	terms  map[string]model.Severity
	loaded bool
}

func NewDictionary(db *gorm.DB) *Dictionary {
	return &Dictionary{db: db}
}

// Reload replaces the cached term set from the banned_words table.
func (d *Dictionary) Reload() error {
	var rows []model.BannedWordModel
	if err := d.db.Find(&rows).Error; err != nil {
		return err
	}

	terms := make(map[string]model.Severity, len(rows))
	for _, w := range rows {
		term := strings.ToLower(strings.TrimSpace(w.BannedWordTerm))
		if term == "" {
			continue
		}
		terms[term] = w.BannedWordSeverity
	}

	d.mu.Lock()
	d.terms = terms
	d.loaded = true
	d.mu.Unlock()
	return nil
}

func (d *Dictionary) StartRefreshLoop(interval time.Duration) {
	if err := d.Reload(); err != nil {
		log.Printf("[ERROR] banned-word dictionary load: %v", err)
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			if err := d.Reload(); err != nil {
				log.Printf("[ERROR] banned-word dictionary refresh: %v", err)
			}
		}
	}()
}

// Screen runs the profanity check against the cached dictionary. If the
// dictionary never loaded, the screener fails closed: no match, logged, so a
// dictionary outage never blocks the publication flow.
func (d *Dictionary) Screen(text string) ScreenResult {
	d.mu.RLock()
	terms, loaded := d.terms, d.loaded
	d.mu.RUnlock()

	if !loaded {
		if err := d.Reload(); err != nil {
			log.Printf("[WARN] profanity screen skipped, dictionary unavailable: %v", err)
			return ScreenResult{}
		}
		d.mu.RLock()
		terms = d.terms
		d.mu.RUnlock()
	}

	return ScreenText(text, terms)
}

/* ==============================
   Pure matcher
============================== */

// ScreenText is the pure, deterministic core: case-insensitive, whole-word
// matches only (substrings inside unrelated words do not count), matched
// terms reported once each in first-occurrence order.
func ScreenText(text string, dictionary map[string]model.Severity) ScreenResult {
	if len(dictionary) == 0 || text == "" {
		return ScreenResult{}
	}

	res := ScreenResult{}
	seen := make(map[string]struct{})
	worst := 0

	for _, word := range splitWords(text) {
		sev, banned := dictionary[word]
		if !banned {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		res.MatchedTerms = append(res.MatchedTerms, word)
		if r := sev.Rank(); r > worst {
			worst = r
			res.Severity = sev
		}
	}

	res.HasProfanity = len(res.MatchedTerms) > 0
	return res
}

// splitWords lowercases and cuts on anything that is not a letter or digit,
// so punctuation and spacing never hide a term.
func splitWords(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
