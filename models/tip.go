package models

// DailyTip is one generated (or cached) finance tip. Date is the UTC
// day the tip belongs to and doubles as the cache key.
type DailyTip struct {
	Date        string `json:"date"`
	Tip         string `json:"tip"`
	Category    string `json:"category,omitempty"`
	CachedAt    string `json:"cached_at,omitempty"`
	GeneratedAt string `json:"generated_at,omitempty"`
}
