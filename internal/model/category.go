package model

import "fmt"

// Tier is the qualitative freshness tier behind each aging bucket. It drives
// both the semaphore color on the chart and the insight shown in the detail view.
type Tier string

const (
	TierOptimal  Tier = "optimal"
	TierMonitor  Tier = "monitor"
	TierRisk     Tier = "risk"
	TierObsolete Tier = "obsolete"
	TierCritical Tier = "critical"
)

// AgingCategory is one bucket of the aging report. The day range is half-open:
// MinDays inclusive, MaxDays exclusive. MaxDays < 0 marks the open-ended last bucket.
type AgingCategory struct {
	Label   string
	MinDays int
	MaxDays int
	Color   string
	Tier    Tier
}

// Contains reports whether the given non-negative day count falls in this bucket.
func (c AgingCategory) Contains(days int) bool {
	if days < c.MinDays {
		return false
	}
	return c.MaxDays < 0 || days < c.MaxDays
}

// categories is the fixed bucket catalog, in display order from least to most
// aged. Static configuration, never derived at runtime.
var categories = []AgingCategory{
	{Label: "0-3 Months (Active)", MinDays: 0, MaxDays: 90, Color: "#2ECC71", Tier: TierOptimal},
	{Label: "3-6 Months (Monitor)", MinDays: 90, MaxDays: 180, Color: "#F1C40F", Tier: TierMonitor},
	{Label: "6-12 Months (Risk)", MinDays: 180, MaxDays: 365, Color: "#E67E22", Tier: TierRisk},
	{Label: "12-24 Months (Obsolete)", MinDays: 365, MaxDays: 730, Color: "#E74C3C", Tier: TierObsolete},
	{Label: "+24 Months (Critical)", MinDays: 730, MaxDays: -1, Color: "#C0392B", Tier: TierCritical},
}

// Categories returns the ordered bucket catalog.
func Categories() []AgingCategory {
	out := make([]AgingCategory, len(categories))
	copy(out, categories)
	return out
}

// ClassifyDays maps days-since-last-invoice to its aging bucket. Negative input
// is an invalid record and must be rejected at ingestion before ever reaching here.
func ClassifyDays(days int) (AgingCategory, error) {
	if days < 0 {
		return AgingCategory{}, fmt.Errorf("days since last invoice cannot be negative, got %d", days)
	}
	for _, c := range categories {
		if c.Contains(days) {
			return c, nil
		}
	}
	// Unreachable: the last bucket is open-ended.
	return AgingCategory{}, fmt.Errorf("no aging category for %d days", days)
}

// CategoryByLabel resolves a selection label against the closed bucket set.
// An unknown label is not an error; callers treat it as matching no records.
func CategoryByLabel(label string) (AgingCategory, bool) {
	for _, c := range categories {
		if c.Label == label {
			return c, true
		}
	}
	return AgingCategory{}, false
}
