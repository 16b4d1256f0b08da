// file: internals/features/newsfeed/publications/service/publish_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"talenthub_backend/internals/features/newsfeed/errs"
	modmodel "talenthub_backend/internals/features/newsfeed/moderation/model"
	modservice "talenthub_backend/internals/features/newsfeed/moderation/service"
	model "talenthub_backend/internals/features/newsfeed/publications/model"
	relservice "talenthub_backend/internals/features/newsfeed/relationships/service"
	"talenthub_backend/internals/testutil"
)

func newPublishService(t *testing.T, db *gorm.DB) *PublishService {
	t.Helper()
	testutil.SeedBannedWord(t, db, "merde", modmodel.SeverityMedium)
	testutil.SeedBannedWord(t, db, "connard", modmodel.SeverityHigh)

	dict := modservice.NewDictionary(db)
	if err := dict.Reload(); err != nil {
		t.Fatalf("load dictionary: %v", err)
	}
	return NewPublishService(db, dict, relservice.NewGraph(db))
}

func TestCreateCleanPublication(t *testing.T) {
	db := testutil.OpenTestDB(t)
	publish := newPublishService(t, db)
	ctx := context.Background()

	author := testutil.SeedProfile(t, db, "Author", nil, false)
	pub := model.PublicationModel{
		PublicationAuthorID: author,
		PublicationContent:  "started a new position today",
	}

	warning, err := publish.Create(ctx, &pub)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if warning != nil {
		t.Errorf("clean content should carry no warning, got %+v", warning)
	}
	if pub.PublicationModerationStatus != model.ModerationStatusApproved {
		t.Errorf("moderation status = %q, want approved", pub.PublicationModerationStatus)
	}
	if !pub.PublicationIsActive {
		t.Error("clean publication should go live immediately")
	}
	if pub.PublicationProfanityStatus != model.ProfanityStatusChecked {
		t.Errorf("profanity status = %q, want checked", pub.PublicationProfanityStatus)
	}

	// timestamps must round-trip through the store on every dialect the
	// models migrate under
	var stored model.PublicationModel
	if err := db.First(&stored, "publication_id = ?", pub.PublicationID).Error; err != nil {
		t.Fatalf("reload full row: %v", err)
	}
	if stored.PublicationCreatedAt.IsZero() || stored.PublicationUpdatedAt.IsZero() {
		t.Error("created/updated timestamps should be populated on read-back")
	}
}

func TestCreateFlaggedPublication(t *testing.T) {
	db := testutil.OpenTestDB(t)
	publish := newPublishService(t, db)
	ctx := context.Background()

	author := testutil.SeedProfile(t, db, "Author", nil, false)
	pub := model.PublicationModel{
		PublicationAuthorID: author,
		PublicationContent:  "my boss is a connard, merde",
	}

	warning, err := publish.Create(ctx, &pub)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if warning == nil || !warning.Flagged {
		t.Fatal("flagged content should return a moderation warning")
	}
	if warning.Severity != string(modmodel.SeverityHigh) {
		t.Errorf("warning severity = %q, want the worst matched term's", warning.Severity)
	}
	if len(warning.MatchedTerms) != 2 {
		t.Errorf("matched terms = %v, want both dictionary hits", warning.MatchedTerms)
	}

	if pub.PublicationModerationStatus != model.ModerationStatusPending {
		t.Errorf("moderation status = %q, want pending", pub.PublicationModerationStatus)
	}
	if pub.PublicationIsActive {
		t.Error("flagged publication must not go live")
	}
	if !pub.PublicationHasUnmoderatedProfanity {
		t.Error("unmoderated profanity flag should be set")
	}

	// the inactive flag must reach the store, not just the in-memory struct —
	// any consumer keying on publication_is_active alone must see false
	var stored model.PublicationModel
	if err := db.First(&stored, "publication_id = ?", pub.PublicationID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.PublicationIsActive {
		t.Error("stored publication_is_active = true for flagged content, want false")
	}
	if stored.PublicationModerationStatus != model.ModerationStatusPending {
		t.Errorf("stored moderation status = %q, want pending", stored.PublicationModerationStatus)
	}

	var violations int64
	db.Model(&modmodel.ModerationViolationModel{}).
		Where("moderation_violation_publication_id = ?", pub.PublicationID).
		Count(&violations)
	if violations != 1 {
		t.Errorf("violation rows = %d, want exactly 1", violations)
	}
}

func TestUpdateReflagSupersedesViolation(t *testing.T) {
	db := testutil.OpenTestDB(t)
	publish := newPublishService(t, db)
	ctx := context.Background()

	author := testutil.SeedProfile(t, db, "Author", nil, false)
	pub := model.PublicationModel{
		PublicationAuthorID: author,
		PublicationContent:  "merde",
	}
	if _, err := publish.Create(ctx, &pub); err != nil {
		t.Fatalf("create: %v", err)
	}

	var before modmodel.ModerationViolationModel
	if err := db.First(&before, "moderation_violation_publication_id = ?", pub.PublicationID).Error; err != nil {
		t.Fatalf("load violation: %v", err)
	}

	content := "still a connard"
	_, warning, err := publish.Update(ctx, pub.PublicationID, author, &content, nil)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if warning == nil || !warning.Flagged {
		t.Fatal("re-flagged edit should return a warning")
	}

	var rows int64
	db.Model(&modmodel.ModerationViolationModel{}).
		Where("moderation_violation_publication_id = ?", pub.PublicationID).
		Count(&rows)
	if rows != 1 {
		t.Errorf("violation rows after re-flag = %d, want 1 (superseded, not duplicated)", rows)
	}

	var after modmodel.ModerationViolationModel
	if err := db.First(&after, "moderation_violation_publication_id = ?", pub.PublicationID).Error; err != nil {
		t.Fatalf("reload violation: %v", err)
	}
	if after.ModerationViolationID != before.ModerationViolationID {
		t.Error("re-flag should reuse the pending violation id")
	}
}

func TestUpdateCleanEditClearsFlag(t *testing.T) {
	db := testutil.OpenTestDB(t)
	publish := newPublishService(t, db)
	ctx := context.Background()

	author := testutil.SeedProfile(t, db, "Author", nil, false)
	pub := model.PublicationModel{
		PublicationAuthorID: author,
		PublicationContent:  "merde",
	}
	if _, err := publish.Create(ctx, &pub); err != nil {
		t.Fatalf("create: %v", err)
	}

	content := "apologies, rough morning"
	updated, warning, err := publish.Update(ctx, pub.PublicationID, author, &content, nil)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if warning != nil {
		t.Errorf("clean edit should carry no warning, got %+v", warning)
	}
	if updated.PublicationModerationStatus != model.ModerationStatusApproved {
		t.Errorf("moderation status = %q, want approved after clean edit", updated.PublicationModerationStatus)
	}
	if !updated.PublicationIsActive {
		t.Error("publication should go live after the clean edit")
	}
	if updated.PublicationHasUnmoderatedProfanity {
		t.Error("unmoderated flag should be cleared by the clean edit")
	}
}

func TestUpdateOwnerOnly(t *testing.T) {
	db := testutil.OpenTestDB(t)
	publish := newPublishService(t, db)
	ctx := context.Background()

	author := testutil.SeedProfile(t, db, "Author", nil, false)
	stranger := testutil.SeedProfile(t, db, "Stranger", nil, false)
	pub := testutil.SeedPublication(t, db, author, "mine")

	content := "hijacked"
	_, _, err := publish.Update(ctx, pub.PublicationID, stranger, &content, nil)
	if !errors.Is(err, errs.ErrPolicyRejected) {
		t.Errorf("stranger edit err = %v, want ErrPolicyRejected", err)
	}
}

func TestSoftDelete(t *testing.T) {
	db := testutil.OpenTestDB(t)
	publish := newPublishService(t, db)
	ctx := context.Background()

	author := testutil.SeedProfile(t, db, "Author", nil, false)
	stranger := testutil.SeedProfile(t, db, "Stranger", nil, false)
	admin := testutil.SeedProfile(t, db, "Admin", nil, false)

	pub := testutil.SeedPublication(t, db, author, "ephemeral")

	err := publish.SoftDelete(ctx, pub.PublicationID, stranger, false)
	if !errors.Is(err, errs.ErrPolicyRejected) {
		t.Errorf("stranger delete err = %v, want ErrPolicyRejected", err)
	}

	if err := publish.SoftDelete(ctx, pub.PublicationID, author, false); err != nil {
		t.Fatalf("owner delete: %v", err)
	}

	// default scope no longer sees it, the row itself survives
	var gone model.PublicationModel
	err = db.First(&gone, "publication_id = ?", pub.PublicationID).Error
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("scoped lookup err = %v, want record not found", err)
	}
	var kept model.PublicationModel
	if err := db.Unscoped().First(&kept, "publication_id = ?", pub.PublicationID).Error; err != nil {
		t.Fatalf("unscoped lookup: %v", err)
	}
	if kept.PublicationIsActive {
		t.Error("deleted publication should be inactive")
	}

	// deleting again reads as gone
	err = publish.SoftDelete(ctx, pub.PublicationID, author, false)
	if !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("re-delete err = %v, want ErrNotFound", err)
	}

	// admins may delete others' publications
	other := testutil.SeedPublication(t, db, author, "admin target")
	if err := publish.SoftDelete(ctx, other.PublicationID, admin, true); err != nil {
		t.Errorf("admin delete: %v", err)
	}
}

func TestGetByIDVisibilityTaxonomy(t *testing.T) {
	db := testutil.OpenTestDB(t)
	publish := newPublishService(t, db)
	graph := relservice.NewGraph(db)
	ctx := context.Background()

	author := testutil.SeedProfile(t, db, "Author", nil, false)
	viewer := testutil.SeedProfile(t, db, "Viewer", nil, false)
	admin := testutil.SeedProfile(t, db, "Admin", nil, false)

	flagged := model.PublicationModel{
		PublicationAuthorID: author,
		PublicationContent:  "merde",
	}
	if _, err := publish.Create(ctx, &flagged); err != nil {
		t.Fatalf("create flagged: %v", err)
	}

	// moderation-invisible is 404 for strangers, readable for author and admin
	if _, err := publish.GetByID(ctx, flagged.PublicationID, viewer, nil, false); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("stranger read err = %v, want ErrNotFound", err)
	}
	if _, err := publish.GetByID(ctx, flagged.PublicationID, author, nil, false); err != nil {
		t.Errorf("author read err = %v, want nil", err)
	}
	if _, err := publish.GetByID(ctx, flagged.PublicationID, admin, nil, true); err != nil {
		t.Errorf("admin read err = %v, want nil", err)
	}

	// a block is an explicit policy rejection, not a 404
	open := testutil.SeedPublication(t, db, author, "visible")
	if err := graph.Block(ctx, author, viewer); err != nil {
		t.Fatalf("block: %v", err)
	}
	if _, err := publish.GetByID(ctx, open.PublicationID, viewer, nil, false); !errors.Is(err, errs.ErrPolicyRejected) {
		t.Errorf("blocked read err = %v, want ErrPolicyRejected", err)
	}

	// a block against a reviewing admin must not stop the review read
	if err := graph.Block(ctx, author, admin); err != nil {
		t.Fatalf("block admin: %v", err)
	}
	if _, err := publish.GetByID(ctx, open.PublicationID, admin, nil, true); err != nil {
		t.Errorf("blocked admin read err = %v, want nil", err)
	}

	if _, err := publish.GetByID(ctx, uuid.New(), viewer, nil, false); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("unknown id err = %v, want ErrNotFound", err)
	}
}
