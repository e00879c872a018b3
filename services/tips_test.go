package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"finance-assistant-api/models"
)

// memoryTipCache is the in-memory TipCache fake.
type memoryTipCache struct {
	tip  *models.DailyTip
	puts int
}

func (c *memoryTipCache) GetIfFresh(date string) (models.DailyTip, bool) {
	if c.tip == nil || c.tip.Date != date {
		return models.DailyTip{}, false
	}
	return *c.tip, true
}

func (c *memoryTipCache) Put(tip models.DailyTip) error {
	c.tip = &tip
	c.puts++
	return nil
}

var tipNow = time.Date(2025, 8, 21, 9, 0, 0, 0, time.UTC)

func unconfiguredTipService(cache TipCache) *TipService {
	return NewTipService(NewGeminiService("", ""), cache)
}

func TestGenerateDailyTipFallback(t *testing.T) {
	cache := &memoryTipCache{}
	svc := unconfiguredTipService(cache)

	tip := svc.GenerateDailyTip(context.Background(), "general", "", tipNow)

	if tip.Date != "2025-08-21" {
		t.Errorf("tip date = %q, want 2025-08-21", tip.Date)
	}
	if tip.Tip == "" {
		t.Error("expected a fallback tip, got empty text")
	}
	if cache.puts != 1 {
		t.Errorf("expected the general tip to be cached once, got %d puts", cache.puts)
	}
}

func TestGenerateDailyTipUsesFreshCache(t *testing.T) {
	cache := &memoryTipCache{tip: &models.DailyTip{
		Date:     "2025-08-21",
		Tip:      "seeded tip",
		CachedAt: "2025-08-21T00:00:00Z",
	}}
	svc := unconfiguredTipService(cache)

	tip := svc.GenerateDailyTip(context.Background(), "general", "", tipNow)

	if tip.Tip != "seeded tip" {
		t.Errorf("tip = %q, want seeded cache entry", tip.Tip)
	}
	if cache.puts != 0 {
		t.Errorf("cache hit must not rewrite the entry, got %d puts", cache.puts)
	}
}

func TestGenerateDailyTipRegeneratesStaleCache(t *testing.T) {
	cache := &memoryTipCache{tip: &models.DailyTip{Date: "2025-08-20", Tip: "stale"}}
	svc := unconfiguredTipService(cache)

	tip := svc.GenerateDailyTip(context.Background(), "general", "", tipNow)

	if tip.Tip == "stale" {
		t.Error("stale cache entry was served")
	}
	if tip.Date != "2025-08-21" {
		t.Errorf("regenerated tip date = %q, want 2025-08-21", tip.Date)
	}
	if cache.puts != 1 {
		t.Errorf("regenerated tip should be cached, got %d puts", cache.puts)
	}
}

func TestGenerateDailyTipVariedSkipsCache(t *testing.T) {
	cache := &memoryTipCache{}
	svc := unconfiguredTipService(cache)

	tip := svc.GenerateDailyTip(context.Background(), "saving", "", tipNow)

	if tip.Category != "saving" {
		t.Errorf("tip category = %q, want saving", tip.Category)
	}
	if tip.GeneratedAt == "" {
		t.Error("varied tip should carry generated_at")
	}
	if cache.puts != 0 {
		t.Errorf("varied tips must not be cached, got %d puts", cache.puts)
	}
}

func TestFileTipCacheRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "daily_tip_cache.json")
	cache := NewFileTipCache(path)

	tip := models.DailyTip{Date: "2025-08-21", Tip: "write it down", CachedAt: "2025-08-21T09:00:00Z"}
	if err := cache.Put(tip); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok := cache.GetIfFresh("2025-08-21")
	if !ok {
		t.Fatal("expected a fresh cache hit")
	}
	if got != tip {
		t.Errorf("GetIfFresh = %+v, want %+v", got, tip)
	}

	if _, ok := cache.GetIfFresh("2025-08-22"); ok {
		t.Error("entry for another day served as fresh")
	}
}

func TestFileTipCacheMissing(t *testing.T) {
	cache := NewFileTipCache(filepath.Join(t.TempDir(), "nope.json"))
	if _, ok := cache.GetIfFresh("2025-08-21"); ok {
		t.Error("missing file reported as fresh hit")
	}
}
