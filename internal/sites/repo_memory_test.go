package sites

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryRepoUpsertReplacesExisting(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	first := Site{Domain: "jane.me", ResumeID: "r1", HTML: "<html>v1</html>", TemplateID: "modern", PublishedAt: time.Now()}
	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	second := first
	second.HTML = "<html>v2</html>"
	if err := repo.Upsert(ctx, second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := repo.GetByDomain(ctx, "jane.me")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.HTML != "<html>v2</html>" {
		t.Fatalf("upsert must replace, got %q", got.HTML)
	}
}

func TestMemoryRepoDelete(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if err := repo.DeleteByDomain(ctx, "missing.me"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	_ = repo.Upsert(ctx, Site{Domain: "jane.me", HTML: "x"})
	if err := repo.DeleteByDomain(ctx, "jane.me"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByDomain(ctx, "jane.me"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
