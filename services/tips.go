package services

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"finance-assistant-api/models"
)

// FallbackTips are served when the model is unconfigured or failing.
var FallbackTips = []string{
	"Save ₹50 daily to have ₹18,250 in a year! Small habits matter.",
	"Track every expense for a week to understand your spending patterns.",
	"Use the 50/30/20 rule: 50% needs, 30% wants, 20% savings.",
	"Start a SIP with just ₹500 monthly to begin your investment journey.",
	"Review and cut one unnecessary subscription to save money monthly.",
	"Cook meals at home to save ₹100+ daily compared to ordering food.",
	"Compare prices before buying anything above ₹1000.",
	"Keep a piggy bank for loose change - it adds up surprisingly fast!",
	"Set a spending limit before going shopping to avoid overspending.",
	"Learn one new financial concept every week to improve money skills.",
}

// Rotated by weekday so the general tip changes across the week.
var generalTipPrompts = []string{
	"Provide one short actionable personal finance tip for students about saving money in 1-2 sentences.",
	"Give a quick budgeting tip for college students in 1-2 sentences.",
	"Share a simple investment tip for beginners in India in 1-2 sentences.",
	"Suggest a practical way for students to track expenses in 1-2 sentences.",
	"Give advice on avoiding unnecessary spending for young people in 1-2 sentences.",
	"Share a tip about building an emergency fund for students in 1-2 sentences.",
	"Provide advice on smart money habits for teenagers in 1-2 sentences.",
}

var categoryTipPrompts = map[string]string{
	"saving":    "Give a practical money-saving tip for students in India in 1-2 sentences. Focus on daily savings habits.",
	"budgeting": "Provide a budgeting tip for college students in 1-2 sentences. Make it actionable and simple.",
	"investing": "Share an investment tip for beginners in India in 1-2 sentences. Keep it simple and safe.",
	"goals":     "Give advice on setting and achieving financial goals for young people in 1-2 sentences.",
	"quick_tip": "Provide a quick money management hack for students in 1-2 sentences.",
	"spending":  "Share advice on smart spending habits for young adults in 1-2 sentences.",
	"banking":   "Give a banking or digital payments tip for students in India in 1-2 sentences.",
}

const tipMaxTokens = 80

// TipCache memoizes the general tip per UTC day. The key is the day,
// nothing is stored per category. Implementations are swappable; tests
// use an in-memory fake.
type TipCache interface {
	GetIfFresh(date string) (models.DailyTip, bool)
	Put(tip models.DailyTip) error
}

// FileTipCache stores the tip as a single JSON file on disk, with
// read-if-current/overwrite semantics and no concurrent-writer
// protection.
type FileTipCache struct {
	path string
}

func NewFileTipCache(path string) *FileTipCache {
	return &FileTipCache{path: path}
}

func (c *FileTipCache) GetIfFresh(date string) (models.DailyTip, bool) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return models.DailyTip{}, false
	}
	var tip models.DailyTip
	if err := json.Unmarshal(data, &tip); err != nil {
		return models.DailyTip{}, false
	}
	if tip.Date != date {
		return models.DailyTip{}, false
	}
	return tip, true
}

func (c *FileTipCache) Put(tip models.DailyTip) error {
	if dir := filepath.Dir(c.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(tip, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0644)
}

// TipService produces one short finance tip per day. General tips are
// cached per UTC day; category-specific tips skip the cache so repeated
// notifications stay varied.
type TipService struct {
	ai    *GeminiService
	cache TipCache
}

func NewTipService(ai *GeminiService, cache TipCache) *TipService {
	return &TipService{ai: ai, cache: cache}
}

// GenerateDailyTip never fails: unreadable or stale cache entries are
// regenerated, and model errors fall back to a static phrase.
func (s *TipService) GenerateDailyTip(ctx context.Context, category, userContext string, now time.Time) models.DailyTip {
	if category != "" && category != "general" {
		return s.generateVariedTip(ctx, category, userContext, now)
	}

	today := now.UTC().Format(dateLayout)
	if tip, ok := s.cache.GetIfFresh(today); ok {
		return tip
	}

	text := ""
	if !s.ai.Configured() {
		text = FallbackTips[rand.Intn(len(FallbackTips))]
	} else {
		prompt := generalTipPrompts[int(now.UTC().Weekday())%len(generalTipPrompts)]
		if userContext != "" {
			prompt += " Context: " + userContext
		}
		generated, err := s.ai.GenerateContent(ctx, prompt, tipMaxTokens, nil)
		if err != nil {
			log.Printf("[Tips] generation failed: %v", err)
			text = FallbackTips[rand.Intn(len(FallbackTips))]
		} else {
			text = strings.TrimSpace(generated)
		}
	}

	tip := models.DailyTip{
		Date:     today,
		Tip:      text,
		CachedAt: now.UTC().Format(time.RFC3339),
	}
	if err := s.cache.Put(tip); err != nil {
		log.Printf("[Tips] failed to cache tip: %v", err)
	}
	return tip
}

func (s *TipService) generateVariedTip(ctx context.Context, category, userContext string, now time.Time) models.DailyTip {
	tip := models.DailyTip{
		Date:        now.UTC().Format(dateLayout),
		Category:    category,
		GeneratedAt: now.UTC().Format(time.RFC3339),
	}

	if !s.ai.Configured() {
		tip.Tip = FallbackTips[rand.Intn(len(FallbackTips))]
		return tip
	}

	prompt, ok := categoryTipPrompts[category]
	if !ok {
		prompt = categoryTipPrompts["saving"]
	}
	if userContext != "" {
		prompt += " Context: " + userContext
	}

	generated, err := s.ai.GenerateContent(ctx, prompt, tipMaxTokens, nil)
	if err != nil {
		log.Printf("[Tips] varied generation failed: %v", err)
		tip.Tip = FallbackTips[rand.Intn(len(FallbackTips))]
		return tip
	}
	tip.Tip = strings.TrimSpace(generated)
	return tip
}
