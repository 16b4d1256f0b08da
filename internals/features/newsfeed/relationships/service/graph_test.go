// file: internals/features/newsfeed/relationships/service/graph_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"talenthub_backend/internals/features/newsfeed/errs"
	model "talenthub_backend/internals/features/newsfeed/relationships/model"
	"talenthub_backend/internals/testutil"
)

func TestIsBlockedEitherDirection(t *testing.T) {
	db := testutil.OpenTestDB(t)
	graph := NewGraph(db)
	ctx := context.Background()

	alice := testutil.SeedProfile(t, db, "Alice", nil, false)
	bob := testutil.SeedProfile(t, db, "Bob", nil, false)
	carol := testutil.SeedProfile(t, db, "Carol", nil, false)

	if err := graph.Block(ctx, alice, bob); err != nil {
		t.Fatalf("block: %v", err)
	}

	for _, tc := range []struct {
		name string
		a, b uuid.UUID
		want bool
	}{
		{"blocker sees blocked", alice, bob, true},
		{"blocked sees blocker", bob, alice, true},
		{"unrelated pair", alice, carol, false},
		{"self", alice, alice, false},
	} {
		got, err := graph.IsBlocked(ctx, tc.a, tc.b, nil)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got != tc.want {
			t.Errorf("%s: IsBlocked = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestBlockSelfRejected(t *testing.T) {
	db := testutil.OpenTestDB(t)
	graph := NewGraph(db)

	user := testutil.SeedProfile(t, db, "Loner", nil, false)
	err := graph.Block(context.Background(), user, user)
	if !errors.Is(err, errs.ErrPolicyRejected) {
		t.Errorf("self-block err = %v, want ErrPolicyRejected", err)
	}
}

func TestBlockPurgesFollowsBothWays(t *testing.T) {
	db := testutil.OpenTestDB(t)
	graph := NewGraph(db)
	ctx := context.Background()

	alice := testutil.SeedProfile(t, db, "Alice", nil, false)
	bob := testutil.SeedProfile(t, db, "Bob", nil, false)

	follows := []model.UserFollowModel{
		{UserFollowFollowerID: alice, UserFollowFollowedID: bob},
		{UserFollowFollowerID: bob, UserFollowFollowedID: alice},
	}
	for i := range follows {
		if err := db.Create(&follows[i]).Error; err != nil {
			t.Fatalf("seed follow: %v", err)
		}
	}

	if err := graph.Block(ctx, alice, bob); err != nil {
		t.Fatalf("block: %v", err)
	}

	var n int64
	db.Model(&model.UserFollowModel{}).Count(&n)
	if n != 0 {
		t.Errorf("follow rows after block = %d, want 0", n)
	}

	// idempotent on the pair
	if err := graph.Block(ctx, alice, bob); err != nil {
		t.Fatalf("re-block: %v", err)
	}
	db.Model(&model.UserBlockModel{}).Count(&n)
	if n != 1 {
		t.Errorf("block rows after re-block = %d, want 1", n)
	}
}

func TestUnblockOwnEdgeOnly(t *testing.T) {
	db := testutil.OpenTestDB(t)
	graph := NewGraph(db)
	ctx := context.Background()

	alice := testutil.SeedProfile(t, db, "Alice", nil, false)
	bob := testutil.SeedProfile(t, db, "Bob", nil, false)

	if err := graph.Block(ctx, alice, bob); err != nil {
		t.Fatalf("block: %v", err)
	}

	// bob cannot remove alice's edge
	err := graph.Unblock(ctx, bob, alice)
	if !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("foreign unblock err = %v, want ErrNotFound", err)
	}
	blocked, err := graph.IsBlocked(ctx, alice, bob, nil)
	if err != nil || !blocked {
		t.Errorf("edge should survive foreign unblock (blocked=%v err=%v)", blocked, err)
	}

	if err := graph.Unblock(ctx, alice, bob); err != nil {
		t.Fatalf("own unblock: %v", err)
	}
	blocked, err = graph.IsBlocked(ctx, alice, bob, nil)
	if err != nil || blocked {
		t.Errorf("edge should be gone after own unblock (blocked=%v err=%v)", blocked, err)
	}
}

func TestIsHiddenByDiscreetMode(t *testing.T) {
	db := testutil.OpenTestDB(t)
	graph := NewGraph(db)
	ctx := context.Background()

	acme := uuid.New()
	globex := uuid.New()

	author := testutil.SeedDiscreetProfile(t, db, "Dana", acme, "Acme Corp")
	plainAuthor := testutil.SeedProfile(t, db, "Erin", nil, false)
	acmeViewer := testutil.SeedProfile(t, db, "Acme Recruiter", &acme, false)
	globexViewer := testutil.SeedProfile(t, db, "Globex Recruiter", &globex, false)
	freeViewer := testutil.SeedProfile(t, db, "No Employer", nil, false)

	cases := []struct {
		name     string
		author   uuid.UUID
		viewer   uuid.UUID
		employer *uuid.UUID
		want     bool
	}{
		{"hidden from targeted employer", author, acmeViewer, &acme, true},
		{"visible to other employer", author, globexViewer, &globex, false},
		{"visible without employer", author, freeViewer, nil, false},
		{"author always sees self", author, author, &acme, false},
		{"plain author never hidden", plainAuthor, acmeViewer, &acme, false},
	}
	for _, tc := range cases {
		got, err := graph.IsHiddenByDiscreetMode(ctx, tc.author, tc.viewer, tc.employer, nil)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got != tc.want {
			t.Errorf("%s: hidden = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestSetDiscreetModeDisableClearsTarget(t *testing.T) {
	db := testutil.OpenTestDB(t)
	graph := NewGraph(db)
	ctx := context.Background()

	acme := uuid.New()
	user := testutil.SeedDiscreetProfile(t, db, "Dana", acme, "Acme Corp")

	if err := graph.SetDiscreetMode(ctx, user, false, nil, nil); err != nil {
		t.Fatalf("disable: %v", err)
	}

	viewer := testutil.SeedProfile(t, db, "Acme Recruiter", &acme, false)
	hidden, err := graph.IsHiddenByDiscreetMode(ctx, user, viewer, &acme, nil)
	if err != nil {
		t.Fatalf("predicate: %v", err)
	}
	if hidden {
		t.Error("disabled discreet mode must not hide the author")
	}
}

func TestSetDiscreetModeUnknownUser(t *testing.T) {
	db := testutil.OpenTestDB(t)
	graph := NewGraph(db)

	name := "Acme Corp"
	target := uuid.New()
	err := graph.SetDiscreetMode(context.Background(), uuid.New(), true, &target, &name)
	if !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
