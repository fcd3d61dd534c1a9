package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/lshigami/scribeset/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// every connection to :memory: is a fresh database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&model.Moderator{}, &model.Prompt{}, &model.Submission{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedPrompt(t *testing.T, repo PromptRepository, text string, priority int) *model.Prompt {
	t.Helper()
	p := &model.Prompt{Text: text, Priority: priority}
	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("create prompt: %v", err)
	}
	return p
}

func seedSubmission(t *testing.T, repo SubmissionRepository, promptID uint, status model.SubmissionStatus) *model.Submission {
	t.Helper()
	s := &model.Submission{
		PromptID: promptID,
		ImageURL: "https://img.example/x.jpg",
		PublicID: "x",
		Status:   status,
	}
	if err := repo.Create(context.Background(), s); err != nil {
		t.Fatalf("create submission: %v", err)
	}
	return s
}

func TestPromptSubmissionCounts(t *testing.T) {
	db := newTestDB(t)
	prompts := NewPromptRepository(db)
	subs := NewSubmissionRepository(db)
	ctx := context.Background()

	low := seedPrompt(t, prompts, "low", 1)
	high := seedPrompt(t, prompts, "high", 5)
	seedSubmission(t, subs, low.ID, model.StatusPending)
	seedSubmission(t, subs, low.ID, model.StatusVerified)

	got, err := prompts.FindAllWithSubmissionCount(ctx)
	if err != nil {
		t.Fatalf("FindAllWithSubmissionCount: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 prompts, got %d", len(got))
	}
	if got[0].ID != high.ID || got[0].SubmissionCount != 0 {
		t.Fatalf("expected high priority prompt first with 0 submissions, got %+v", got[0])
	}
	if got[1].ID != low.ID || got[1].SubmissionCount != 2 {
		t.Fatalf("expected low priority prompt with 2 submissions, got %+v", got[1])
	}
}

func TestPromptDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	prompts := NewPromptRepository(db)
	subs := NewSubmissionRepository(db)
	ctx := context.Background()

	doomed := seedPrompt(t, prompts, "doomed", 1)
	kept := seedPrompt(t, prompts, "kept", 1)
	s1 := seedSubmission(t, subs, doomed.ID, model.StatusPending)
	s2 := seedSubmission(t, subs, kept.ID, model.StatusPending)

	if err := prompts.Delete(ctx, doomed.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := subs.FindByID(ctx, s1.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected submission of deleted prompt to be gone, got %v", err)
	}
	if _, err := subs.FindByID(ctx, s2.ID); err != nil {
		t.Fatalf("unrelated submission should survive: %v", err)
	}
	if err := prompts.Delete(ctx, doomed.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound deleting twice, got %v", err)
	}
}

func TestSubmissionUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	prompts := NewPromptRepository(db)
	subs := NewSubmissionRepository(db)
	mods := NewModeratorRepository(db)
	ctx := context.Background()

	mod := &model.Moderator{Username: "mira", PasswordHash: "x"}
	if err := mods.Create(ctx, mod); err != nil {
		t.Fatalf("create moderator: %v", err)
	}
	p := seedPrompt(t, prompts, "p", 1)
	s := seedSubmission(t, subs, p.ID, model.StatusPending)

	if err := subs.UpdateStatus(ctx, s.ID, model.StatusVerified, mod.ID); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	reloaded, err := subs.FindByID(ctx, s.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if reloaded.Status != model.StatusVerified {
		t.Fatalf("expected verified, got %s", reloaded.Status)
	}
	if reloaded.VerifiedBy == nil || reloaded.VerifiedBy.Username != "mira" {
		t.Fatalf("expected verified_by mira, got %+v", reloaded.VerifiedBy)
	}

	if err := subs.UpdateStatus(ctx, 9999, model.StatusVerified, mod.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound for unknown id, got %v", err)
	}
}

func TestSubmissionUpdateStatusBulkIgnoresUnknownIDs(t *testing.T) {
	db := newTestDB(t)
	prompts := NewPromptRepository(db)
	subs := NewSubmissionRepository(db)
	ctx := context.Background()

	mod := &model.Moderator{Username: "bo", PasswordHash: "x"}
	if err := NewModeratorRepository(db).Create(ctx, mod); err != nil {
		t.Fatalf("create moderator: %v", err)
	}
	p := seedPrompt(t, prompts, "p", 1)
	a := seedSubmission(t, subs, p.ID, model.StatusPending)
	b := seedSubmission(t, subs, p.ID, model.StatusVerified)

	n, err := subs.UpdateStatusBulk(ctx, []uint{a.ID, b.ID, 4242}, model.StatusUnverified, mod.ID)
	if err != nil {
		t.Fatalf("UpdateStatusBulk: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 rows updated, got %d", n)
	}
	status := model.StatusUnverified
	got, err := subs.List(ctx, SubmissionFilter{Status: &status})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 unverified submissions, got %d", len(got))
	}
	for _, s := range got {
		if s.VerifiedByID == nil || *s.VerifiedByID != mod.ID {
			t.Fatalf("expected verified_by_id %d on %d, got %v", mod.ID, s.ID, s.VerifiedByID)
		}
	}
}

func TestSubmissionListOrdering(t *testing.T) {
	db := newTestDB(t)
	prompts := NewPromptRepository(db)
	subs := NewSubmissionRepository(db)
	ctx := context.Background()

	p := seedPrompt(t, prompts, "p", 1)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var ids []uint
	for i := 0; i < 3; i++ {
		s := &model.Submission{
			PromptID:    p.ID,
			ImageURL:    "https://img.example/x.jpg",
			PublicID:    "x",
			Status:      model.StatusPending,
			SubmittedAt: base.Add(time.Duration(2-i) * time.Hour),
		}
		if err := subs.Create(ctx, s); err != nil {
			t.Fatalf("create: %v", err)
		}
		ids = append(ids, s.ID)
	}

	pending := model.StatusPending
	oldest, err := subs.List(ctx, SubmissionFilter{Status: &pending, OldestFirst: true})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if oldest[0].ID != ids[2] || oldest[2].ID != ids[0] {
		t.Fatalf("expected oldest first ordering, got %d..%d", oldest[0].ID, oldest[2].ID)
	}
	if oldest[0].Prompt.Text != "p" {
		t.Fatalf("expected prompt to be preloaded, got %+v", oldest[0].Prompt)
	}
}

func TestSubmissionListForExport(t *testing.T) {
	db := newTestDB(t)
	prompts := NewPromptRepository(db)
	subs := NewSubmissionRepository(db)
	ctx := context.Background()

	p := seedPrompt(t, prompts, "label", 1)
	seedSubmission(t, subs, p.ID, model.StatusPending)
	v1 := seedSubmission(t, subs, p.ID, model.StatusVerified)
	v2 := seedSubmission(t, subs, p.ID, model.StatusVerified)

	got, err := subs.ListForExport(ctx, model.StatusVerified)
	if err != nil {
		t.Fatalf("ListForExport: %v", err)
	}
	if len(got) != 2 || got[0].ID != v1.ID || got[1].ID != v2.ID {
		t.Fatalf("unexpected export set %+v", got)
	}
	if got[0].Prompt.Text != "label" {
		t.Fatalf("expected preloaded prompt text, got %q", got[0].Prompt.Text)
	}
}

func TestSubmissionApplyReview(t *testing.T) {
	db := newTestDB(t)
	prompts := NewPromptRepository(db)
	subs := NewSubmissionRepository(db)
	mods := NewModeratorRepository(db)
	ctx := context.Background()

	mod := &model.Moderator{Username: "mira", PasswordHash: "x"}
	if err := mods.Create(ctx, mod); err != nil {
		t.Fatalf("create moderator: %v", err)
	}
	p := seedPrompt(t, prompts, "p", 1)
	s := seedSubmission(t, subs, p.ID, model.StatusPending)

	note := "Tom & Jerry <3"
	if err := subs.ApplyReview(ctx, s.ID, nil, mod.ID, &note); err != nil {
		t.Fatalf("notes-only ApplyReview: %v", err)
	}
	// same notes again changes no values but the row still exists
	if err := subs.ApplyReview(ctx, s.ID, nil, mod.ID, &note); err != nil {
		t.Fatalf("repeated ApplyReview: %v", err)
	}
	reloaded, err := subs.FindByID(ctx, s.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if reloaded.Notes == nil || *reloaded.Notes != note {
		t.Fatalf("expected notes %q, got %v", note, reloaded.Notes)
	}
	if reloaded.Status != model.StatusPending || reloaded.VerifiedByID != nil {
		t.Fatalf("notes-only review must not touch status or verified_by: %+v", reloaded)
	}

	verified := model.StatusVerified
	other := "clean"
	if err := subs.ApplyReview(ctx, s.ID, &verified, mod.ID, &other); err != nil {
		t.Fatalf("status and notes ApplyReview: %v", err)
	}
	reloaded, _ = subs.FindByID(ctx, s.ID)
	if reloaded.Status != model.StatusVerified || reloaded.VerifiedByID == nil || *reloaded.VerifiedByID != mod.ID || *reloaded.Notes != other {
		t.Fatalf("unexpected record after review: %+v", reloaded)
	}

	if err := subs.ApplyReview(ctx, 31337, &verified, mod.ID, &note); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestModeratorFindByUsername(t *testing.T) {
	db := newTestDB(t)
	mods := NewModeratorRepository(db)
	ctx := context.Background()

	if err := mods.Create(ctx, &model.Moderator{Username: "ash", PasswordHash: "h"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	m, err := mods.FindByUsername(ctx, "ash")
	if err != nil {
		t.Fatalf("FindByUsername: %v", err)
	}
	if m.PasswordHash != "h" {
		t.Fatalf("unexpected moderator %+v", m)
	}
	if _, err := mods.FindByUsername(ctx, "nobody"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
