package shares

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID map[string]Share
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Share{}}
}

func (r *testRepo) Create(ctx context.Context, s Share) error {
	if s.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[s.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[s.ID] = s
	return nil
}

func (r *testRepo) Update(ctx context.Context, s Share) error {
	if _, ok := r.byID[s.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[s.ID] = s
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Share, error) {
	s, ok := r.byID[id]
	if !ok {
		return Share{}, ErrNotFound
	}
	return s, nil
}

func (r *testRepo) GetByToken(ctx context.Context, token string) (Share, error) {
	for _, s := range r.byID {
		if s.Token == token {
			return s, nil
		}
	}
	return Share{}, ErrNotFound
}

func (r *testRepo) ListByPet(ctx context.Context, petID string) ([]Share, error) {
	out := make([]Share, 0)
	for _, s := range r.byID {
		if s.PetID == petID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_DefaultScope_WhenEmpty(t *testing.T) {
	svc := NewService(newTestRepo())

	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	sh, err := svc.Create(context.Background(), CreateInput{
		PetID:       "pet-1",
		OwnerUserID: "owner-1",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if sh.Status != StatusActive {
		t.Fatalf("expected status active, got %s", sh.Status)
	}
	if sh.Token == "" || sh.Token == sh.ID {
		t.Fatalf("expected a token distinct from the id, got %q", sh.Token)
	}
	if !HasScope(sh, ScopeReportRead) || HasScope(sh, ScopeCalendarRead) {
		t.Fatalf("expected only report:read, got %#v", sh.Scopes)
	}
	if sh.ExpiresAt != nil {
		t.Fatalf("expected no expiry without ttl")
	}
}

func TestService_Create_StrictScopes_RejectsUnknown(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Create(context.Background(), CreateInput{
		PetID:       "pet-1",
		OwnerUserID: "owner-1",
		Scopes:      []Scope{ScopeReportRead, Scope("events:read")},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Create_DedupsScopes(t *testing.T) {
	svc := NewService(newTestRepo())

	sh, err := svc.Create(context.Background(), CreateInput{
		PetID:       "pet-1",
		OwnerUserID: "owner-1",
		Scopes:      []Scope{ScopeCalendarRead, " calendar:read ", ScopeReportRead},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if len(sh.Scopes) != 2 {
		t.Fatalf("expected 2 scopes, got %#v", sh.Scopes)
	}
}

func TestService_Resolve_ExpiredIsNotFound(t *testing.T) {
	svc := NewService(newTestRepo())

	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	sh, err := svc.Create(context.Background(), CreateInput{
		PetID:       "pet-1",
		OwnerUserID: "owner-1",
		TTL:         time.Hour,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if _, err := svc.Resolve(context.Background(), sh.Token); err != nil {
		t.Fatalf("expected token to resolve before expiry: %v", err)
	}

	svc.now = func() time.Time { return now.Add(time.Hour) }
	if _, err := svc.Resolve(context.Background(), sh.Token); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after expiry, got %v", err)
	}
}

func TestService_Revoke_OwnerOnly_AndIdempotent(t *testing.T) {
	svc := NewService(newTestRepo())

	now1 := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	now2 := now1.Add(2 * time.Minute)

	svc.now = func() time.Time { return now1 }
	sh, err := svc.Create(context.Background(), CreateInput{PetID: "pet-1", OwnerUserID: "owner-1"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if _, err := svc.Revoke(context.Background(), sh.ID, "intruder"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	svc.now = func() time.Time { return now2 }
	revoked, err := svc.Revoke(context.Background(), sh.ID, "owner-1")
	if err != nil {
		t.Fatalf("Revoke error: %v", err)
	}
	if revoked.Status != StatusRevoked || revoked.RevokedAt == nil || !revoked.RevokedAt.Equal(now2) {
		t.Fatalf("expected revoked at now2, got %+v", revoked)
	}

	// idempotente: no cambia RevokedAt
	svc.now = func() time.Time { return now2.Add(time.Hour) }
	again, err := svc.Revoke(context.Background(), sh.ID, "owner-1")
	if err != nil {
		t.Fatalf("Revoke #2 error: %v", err)
	}
	if !again.RevokedAt.Equal(now2) {
		t.Fatalf("expected RevokedAt unchanged, got %v", again.RevokedAt)
	}

	if _, err := svc.Resolve(context.Background(), sh.Token); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected revoked token to be unresolvable, got %v", err)
	}
}

func TestService_RevokeByPet_RevokesOnlyThatPet(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	for i := 0; i < 2; i++ {
		if _, err := svc.Create(context.Background(), CreateInput{PetID: "pet-1", OwnerUserID: "owner-1"}); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}
	other, err := svc.Create(context.Background(), CreateInput{PetID: "pet-2", OwnerUserID: "owner-1"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := svc.RevokeByPet(context.Background(), "pet-1"); err != nil {
		t.Fatalf("RevokeByPet error: %v", err)
	}

	for _, sh := range repo.byID {
		switch {
		case sh.PetID == "pet-1" && sh.Status != StatusRevoked:
			t.Fatalf("expected pet-1 share %s revoked", sh.ID)
		case sh.ID == other.ID && sh.Status != StatusActive:
			t.Fatalf("expected pet-2 share to stay active")
		}
	}
}

// brokenRepo simula una caída del storage en las lecturas.
type brokenRepo struct{ *testRepo }

var errStorageDown = errors.New("storage down")

func (brokenRepo) GetByID(ctx context.Context, id string) (Share, error) {
	return Share{}, errStorageDown
}

func (brokenRepo) GetByToken(ctx context.Context, token string) (Share, error) {
	return Share{}, errStorageDown
}

func TestService_StorageErrorsAreNotNotFound(t *testing.T) {
	svc := NewService(brokenRepo{newTestRepo()})

	_, err := svc.Resolve(context.Background(), "some-token")
	if !errors.Is(err, errStorageDown) || errors.Is(err, ErrNotFound) {
		t.Fatalf("Resolve: expected storage error, got %v", err)
	}

	_, err = svc.Revoke(context.Background(), "share-1", "owner-1")
	if !errors.Is(err, errStorageDown) || errors.Is(err, ErrNotFound) {
		t.Fatalf("Revoke: expected storage error, got %v", err)
	}
}

func TestService_UnknownShareIsNotFound(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Resolve(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Resolve: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Revoke(context.Background(), "missing", "owner-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Revoke: expected ErrNotFound, got %v", err)
	}
}
