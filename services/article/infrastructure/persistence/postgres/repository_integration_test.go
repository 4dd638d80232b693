package postgres

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/ghuser/medsupply/pkg/database"
	"github.com/ghuser/medsupply/pkg/logger"
	"github.com/ghuser/medsupply/pkg/migrator"
	articledomain "github.com/ghuser/medsupply/services/article/domain"
	"github.com/ghuser/medsupply/services/article/domain/models"
	"github.com/ghuser/medsupply/services/article/domain/repositories"
)

// openTestDatabase migrates and connects to TEST_DATABASE_URL. Both tables
// are truncated.
func openTestDatabase(t *testing.T) *database.Database {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping PostgreSQL integration test")
	}

	ctx := context.Background()
	if err := migrator.RunMigrations(ctx, url, os.DirFS("../../../../../migrations/article"), logger.Nop()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	d, err := database.NewPool(ctx, url, logger.Nop())
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	if _, err := d.DB().ExecContext(ctx, "TRUNCATE article.articles, article.usages RESTART IDENTITY"); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return d
}

func strPtr(s string) *string { return &s }

func TestArticleRepositoryIntegration(t *testing.T) {
	d := openTestDatabase(t)
	repo := NewArticleRepository(d)
	ctx := context.Background()

	gauze, err := repo.Insert(ctx, models.NewArticle("Gauze", "box", 50))
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if gauze.ID == 0 {
		t.Fatal("expected store-assigned id")
	}
	syringe, err := repo.Insert(ctx, models.NewArticle("Syringe", "pcs", 10))
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if syringe.ID == gauze.ID {
		t.Fatal("ids must be unique")
	}

	t.Run("get by id", func(t *testing.T) {
		got, err := repo.GetByID(ctx, gauze.ID)
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if got.Name != "Gauze" || got.Count != 50 || got.Icon != nil {
			t.Errorf("unexpected article: %+v", got)
		}
	})

	t.Run("list by count", func(t *testing.T) {
		list, err := repo.List(ctx, repositories.SortByCount)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(list) != 2 || list[0].ID != syringe.ID {
			t.Errorf("unexpected order: %+v", list)
		}
	})

	t.Run("update keeps optional fields", func(t *testing.T) {
		a := gauze.Clone()
		a.Count = 30
		a.Description = strPtr("sterile")
		updated, err := repo.Update(ctx, a)
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if updated.Count != 30 || updated.Description == nil || *updated.Description != "sterile" {
			t.Errorf("unexpected article: %+v", updated)
		}
	})

	t.Run("negative count violates check", func(t *testing.T) {
		a := gauze.Clone()
		a.Count = -1
		if _, err := repo.Update(ctx, a); !errors.Is(err, articledomain.ErrInvalidArticle) {
			t.Fatalf("expected ErrInvalidArticle, got %v", err)
		}
	})

	t.Run("oversized count is rejected before the write", func(t *testing.T) {
		if _, err := repo.Insert(ctx, models.NewArticle("Gauze", "box", 4294967346)); !errors.Is(err, articledomain.ErrInvalidArticle) {
			t.Fatalf("Insert: expected ErrInvalidArticle, got %v", err)
		}

		a := gauze.Clone()
		a.Count = models.MaxCount + 1
		if _, err := repo.Update(ctx, a); !errors.Is(err, articledomain.ErrInvalidArticle) {
			t.Fatalf("Update: expected ErrInvalidArticle, got %v", err)
		}
		got, err := repo.GetByID(ctx, gauze.ID)
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if got.Count != 30 {
			t.Errorf("stored count changed: got %d, want 30", got.Count)
		}

		list, err := repo.List(ctx, repositories.SortByID)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(list) != 2 {
			t.Errorf("rejected insert left a row behind: %+v", list)
		}
	})

	t.Run("delete then get", func(t *testing.T) {
		if err := repo.Delete(ctx, syringe.ID); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, err := repo.GetByID(ctx, syringe.ID); !errors.Is(err, articledomain.ErrArticleNotFound) {
			t.Fatalf("expected ErrArticleNotFound, got %v", err)
		}
		if err := repo.Delete(ctx, syringe.ID); !errors.Is(err, articledomain.ErrArticleNotFound) {
			t.Fatalf("second delete: expected ErrArticleNotFound, got %v", err)
		}
	})

	t.Run("update missing article", func(t *testing.T) {
		a := gauze.Clone()
		a.ID = 999999
		if _, err := repo.Update(ctx, a); !errors.Is(err, articledomain.ErrArticleNotFound) {
			t.Fatalf("expected ErrArticleNotFound, got %v", err)
		}
	})
}

func TestUsageRepositoryIntegration(t *testing.T) {
	d := openTestDatabase(t)
	repo := NewUsageRepository(d)
	ctx := context.Background()

	day := func(d int) time.Time { return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC) }
	events := []*models.UsageEvent{
		models.NewUsageEvent(1, day(2), 5),
		models.NewUsageEvent(1, day(2), 3),
		models.NewUsageEvent(1, day(4), 7),
		models.NewUsageEvent(1, day(20), 1),
		models.NewUsageEvent(2, day(2), 100),
	}
	for _, e := range events {
		if _, err := repo.Insert(ctx, e); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	totals, err := repo.SumByArticleAndDateRange(ctx, 1, day(1), day(14))
	if err != nil {
		t.Fatalf("SumByArticleAndDateRange: %v", err)
	}
	want := []models.DailyUsage{{Date: day(2), Total: 8}, {Date: day(4), Total: 7}}
	if len(totals) != len(want) {
		t.Fatalf("got %d rows, want %d: %+v", len(totals), len(want), totals)
	}
	for i := range want {
		if !totals[i].Date.Equal(want[i].Date) || totals[i].Total != want[i].Total {
			t.Errorf("row %d: got %+v, want %+v", i, totals[i], want[i])
		}
	}

	empty, err := repo.SumByArticleAndDateRange(ctx, 42, day(1), day(31))
	if err != nil {
		t.Fatalf("SumByArticleAndDateRange: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected no rows for unknown article, got %+v", empty)
	}
}
