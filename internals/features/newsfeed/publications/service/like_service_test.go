// file: internals/features/newsfeed/publications/service/like_service_test.go
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"talenthub_backend/internals/features/newsfeed/errs"
	model "talenthub_backend/internals/features/newsfeed/publications/model"
	relservice "talenthub_backend/internals/features/newsfeed/relationships/service"
	"talenthub_backend/internals/testutil"
)

func newLikeService(db *gorm.DB) *LikeService {
	return NewLikeService(db, relservice.NewGraph(db))
}

func TestToggleLikeRoundTrip(t *testing.T) {
	db := testutil.OpenTestDB(t)
	likes := newLikeService(db)
	ctx := context.Background()

	author := testutil.SeedProfile(t, db, "Author", nil, false)
	viewer := testutil.SeedProfile(t, db, "Viewer", nil, false)
	pub := testutil.SeedPublication(t, db, author, "likeable")

	first, err := likes.ToggleLike(ctx, pub.PublicationID, viewer, nil)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !first.Liked || first.LikeCount != 1 {
		t.Errorf("first toggle = %+v, want liked with count 1", first)
	}

	second, err := likes.ToggleLike(ctx, pub.PublicationID, viewer, nil)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if second.Liked || second.LikeCount != 0 {
		t.Errorf("second toggle = %+v, want unliked with count 0", second)
	}

	var got model.PublicationModel
	if err := db.First(&got, "publication_id = ?", pub.PublicationID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.PublicationLikeCount != 0 {
		t.Errorf("stored like count = %d, want 0 after round trip", got.PublicationLikeCount)
	}
}

func TestToggleLikeCounterMatchesRows(t *testing.T) {
	db := testutil.OpenTestDB(t)
	likes := newLikeService(db)
	ctx := context.Background()

	author := testutil.SeedProfile(t, db, "Author", nil, false)
	pub := testutil.SeedPublication(t, db, author, "popular")

	const voters = 10
	for i := 0; i < voters; i++ {
		voter := testutil.SeedProfile(t, db, fmt.Sprintf("Voter %d", i), nil, false)
		res, err := likes.ToggleLike(ctx, pub.PublicationID, voter, nil)
		if err != nil {
			t.Fatalf("voter %d: %v", i, err)
		}
		if res.LikeCount != i+1 {
			t.Errorf("after voter %d: count = %d, want %d", i, res.LikeCount, i+1)
		}
	}

	var rows int64
	db.Model(&model.PublicationLikeModel{}).
		Where("publication_like_publication_id = ?", pub.PublicationID).
		Count(&rows)
	var got model.PublicationModel
	if err := db.First(&got, "publication_id = ?", pub.PublicationID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if int64(got.PublicationLikeCount) != rows || rows != voters {
		t.Errorf("counter = %d, rows = %d, want both %d", got.PublicationLikeCount, rows, voters)
	}
}

func TestToggleLikeConcurrentUsersNoDrift(t *testing.T) {
	db := testutil.OpenTestDB(t)
	likes := newLikeService(db)
	ctx := context.Background()

	author := testutil.SeedProfile(t, db, "Author", nil, false)
	pub := testutil.SeedPublication(t, db, author, "contested")

	const voters = 10
	voterIDs := make([]uuid.UUID, voters)
	for i := range voterIDs {
		voterIDs[i] = testutil.SeedProfile(t, db, fmt.Sprintf("Voter %d", i), nil, false)
	}

	var wg sync.WaitGroup
	errCh := make(chan error, voters)
	for _, voter := range voterIDs {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			if _, err := likes.ToggleLike(ctx, pub.PublicationID, id, nil); err != nil {
				errCh <- err
			}
		}(voter)
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("concurrent toggle: %v", err)
	}

	var rows int64
	db.Model(&model.PublicationLikeModel{}).
		Where("publication_like_publication_id = ?", pub.PublicationID).
		Count(&rows)
	var got model.PublicationModel
	if err := db.First(&got, "publication_id = ?", pub.PublicationID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if rows != voters {
		t.Errorf("like rows = %d, want %d", rows, voters)
	}
	if int64(got.PublicationLikeCount) != rows {
		t.Errorf("counter = %d, rows = %d; counter must not drift", got.PublicationLikeCount, rows)
	}
}

func TestToggleLikeBlockedPairRejected(t *testing.T) {
	db := testutil.OpenTestDB(t)
	likes := newLikeService(db)
	graph := relservice.NewGraph(db)
	ctx := context.Background()

	author := testutil.SeedProfile(t, db, "Author", nil, false)
	viewer := testutil.SeedProfile(t, db, "Viewer", nil, false)
	pub := testutil.SeedPublication(t, db, author, "off limits")

	// the author blocked the viewer; the gate rejects either direction
	if err := graph.Block(ctx, author, viewer); err != nil {
		t.Fatalf("block: %v", err)
	}

	_, err := likes.ToggleLike(ctx, pub.PublicationID, viewer, nil)
	if !errors.Is(err, errs.ErrPolicyRejected) {
		t.Errorf("err = %v, want ErrPolicyRejected", err)
	}
}

func TestToggleLikeDiscreetHiddenRejected(t *testing.T) {
	db := testutil.OpenTestDB(t)
	likes := newLikeService(db)
	ctx := context.Background()

	acme := uuid.New()
	author := testutil.SeedDiscreetProfile(t, db, "Dana", acme, "Acme Corp")
	recruiter := testutil.SeedProfile(t, db, "Acme Recruiter", &acme, false)
	pub := testutil.SeedPublication(t, db, author, "not for acme eyes")

	_, err := likes.ToggleLike(ctx, pub.PublicationID, recruiter, &acme)
	if !errors.Is(err, errs.ErrPolicyRejected) {
		t.Errorf("targeted employer err = %v, want ErrPolicyRejected", err)
	}

	// a recruiter elsewhere is unaffected
	globex := uuid.New()
	other := testutil.SeedProfile(t, db, "Globex Recruiter", &globex, false)
	res, err := likes.ToggleLike(ctx, pub.PublicationID, other, &globex)
	if err != nil {
		t.Fatalf("other employer toggle: %v", err)
	}
	if !res.Liked {
		t.Error("other employer's like should land")
	}
}

func TestToggleLikeFlaggedPublication(t *testing.T) {
	db := testutil.OpenTestDB(t)
	likes := newLikeService(db)
	ctx := context.Background()

	author := testutil.SeedProfile(t, db, "Author", nil, false)
	viewer := testutil.SeedProfile(t, db, "Viewer", nil, false)

	pub := model.PublicationModel{
		PublicationAuthorID: author,
		PublicationContent:  "flagged",
	}
	pub.ApplyScreenResult(true)
	if err := db.Create(&pub).Error; err != nil {
		t.Fatalf("seed flagged: %v", err)
	}

	// invisible by moderation reads as NotFound, not Forbidden
	_, err := likes.ToggleLike(ctx, pub.PublicationID, viewer, nil)
	if !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("stranger err = %v, want ErrNotFound", err)
	}

	// the author still sees their pending item and may like it
	res, err := likes.ToggleLike(ctx, pub.PublicationID, author, nil)
	if err != nil {
		t.Fatalf("author toggle: %v", err)
	}
	if !res.Liked {
		t.Error("author's like on own pending publication should land")
	}
}

func TestToggleLikeUnknownPublication(t *testing.T) {
	db := testutil.OpenTestDB(t)
	likes := newLikeService(db)

	viewer := testutil.SeedProfile(t, db, "Viewer", nil, false)
	_, err := likes.ToggleLike(context.Background(), uuid.New(), viewer, nil)
	if !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
