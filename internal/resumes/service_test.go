package resumes

import (
	"context"
	"errors"
	"testing"

	"resume-builder-backend/internal/resume"
)

func TestServiceCreateDefaults(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	doc, err := svc.Create(context.Background(), "u1", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if doc.ID == "" {
		t.Fatalf("id must be assigned")
	}
	if doc.Title != "Untitled Resume" {
		t.Fatalf("got title %q", doc.Title)
	}
	if doc.Template != resume.TemplateModern {
		t.Fatalf("got template %q", doc.Template)
	}

	if _, err := svc.Create(context.Background(), "", "x"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestServiceUpdatePreservesOwnershipAndPublication(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), "u1", "Original")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	var incoming resume.Document
	incoming.Title = "Updated"
	incoming.Template = resume.TemplateID("bogus")
	incoming.PersonalInfo.FullName = "Jane Smith"
	incoming.ID = "spoofed"

	updated, err := svc.Update(context.Background(), "u1", created.ID, incoming)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("id must be preserved")
	}
	if updated.Template != resume.TemplateModern {
		t.Fatalf("unknown template must fall back, got %q", updated.Template)
	}
	if updated.CreatedAt != created.CreatedAt {
		t.Fatalf("created_at must be preserved")
	}
	if updated.PersonalInfo.FullName != "Jane Smith" {
		t.Fatalf("content not applied")
	}
}

func TestServiceUpdateKeepsTitleWhenBlank(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	created, _ := svc.Create(context.Background(), "u1", "Keep Me")

	updated, err := svc.Update(context.Background(), "u1", created.ID, resume.Document{Title: "  "})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Keep Me" {
		t.Fatalf("got title %q", updated.Title)
	}
}

func TestServiceOwnershipIsEnforced(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	created, _ := svc.Create(context.Background(), "u1", "Mine")

	if _, err := svc.Get(context.Background(), "u2", created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign user, got %v", err)
	}
	if err := svc.Delete(context.Background(), "u2", created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), "u1", created.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
}

func TestServiceListNewestFirst(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	first, _ := svc.Create(context.Background(), "u1", "First")
	second, _ := svc.Create(context.Background(), "u1", "Second")
	_ = first

	docs, err := svc.List(context.Background(), "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 resumes, got %d", len(docs))
	}
	if docs[0].CreatedAt.Before(docs[1].CreatedAt) {
		t.Fatalf("list must be newest first")
	}
	_ = second
}
