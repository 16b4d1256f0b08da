// file: internals/testutil/fixtures.go
package testutil

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	modmodel "talenthub_backend/internals/features/newsfeed/moderation/model"
	pubmodel "talenthub_backend/internals/features/newsfeed/publications/model"
	profilemodel "talenthub_backend/internals/features/users/profile/model"
)

// SeedProfile inserts a minimal user profile and returns its user id.
func SeedProfile(t *testing.T, db *gorm.DB, name string, employerID *uuid.UUID, certified bool) uuid.UUID {
	t.Helper()

	profile := profilemodel.UserProfileModel{
		UserProfileUserID:      uuid.New(),
		UserProfileFullName:    name,
		UserProfileEmployerID:  employerID,
		UserProfileIsCertified: certified,
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("seed profile %q: %v", name, err)
	}
	return profile.UserProfileUserID
}

// SeedDiscreetProfile inserts a profile with discreet mode aimed at employerID.
func SeedDiscreetProfile(t *testing.T, db *gorm.DB, name string, targetEmployerID uuid.UUID, targetEmployerName string) uuid.UUID {
	t.Helper()

	profile := profilemodel.UserProfileModel{
		UserProfileUserID:               uuid.New(),
		UserProfileFullName:             name,
		UserProfileDiscreetEnabled:      true,
		UserProfileDiscreetEmployerID:   &targetEmployerID,
		UserProfileDiscreetEmployerName: &targetEmployerName,
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("seed discreet profile %q: %v", name, err)
	}
	return profile.UserProfileUserID
}

// SeedPublication inserts an approved, active publication by authorID.
func SeedPublication(t *testing.T, db *gorm.DB, authorID uuid.UUID, content string) *pubmodel.PublicationModel {
	t.Helper()

	pub := pubmodel.PublicationModel{
		PublicationAuthorID: authorID,
		PublicationContent:  content,
	}
	pub.ApplyScreenResult(false)
	if err := db.Create(&pub).Error; err != nil {
		t.Fatalf("seed publication: %v", err)
	}
	return &pub
}

// SeedBannedWord inserts one dictionary term.
func SeedBannedWord(t *testing.T, db *gorm.DB, term string, severity modmodel.Severity) {
	t.Helper()

	word := modmodel.BannedWordModel{
		BannedWordTerm:     term,
		BannedWordSeverity: severity,
	}
	if err := db.Create(&word).Error; err != nil {
		t.Fatalf("seed banned word %q: %v", term, err)
	}
}
