package model

import "testing"

func TestClassifyDays_Boundaries(t *testing.T) {
	testCases := []struct {
		days      int
		wantLabel string
	}{
		{0, "0-3 Months (Active)"},
		{89, "0-3 Months (Active)"},
		{90, "3-6 Months (Monitor)"},
		{179, "3-6 Months (Monitor)"},
		{180, "6-12 Months (Risk)"},
		{364, "6-12 Months (Risk)"},
		{365, "12-24 Months (Obsolete)"},
		{729, "12-24 Months (Obsolete)"},
		{730, "+24 Months (Critical)"},
		{5000, "+24 Months (Critical)"},
	}

	for _, tc := range testCases {
		cat, err := ClassifyDays(tc.days)
		if err != nil {
			t.Fatalf("ClassifyDays(%d) returned error: %v", tc.days, err)
		}
		if cat.Label != tc.wantLabel {
			t.Errorf("ClassifyDays(%d) = %q, want %q", tc.days, cat.Label, tc.wantLabel)
		}
	}
}

func TestClassifyDays_NegativeDays(t *testing.T) {
	if _, err := ClassifyDays(-1); err == nil {
		t.Fatal("Expected error for negative days, got none")
	}
}

func TestClassifyDays_PartitionsDayRange(t *testing.T) {
	// Every non-negative day count belongs to exactly one bucket, and that
	// bucket's range contains it.
	for days := 0; days <= 2000; days++ {
		cat, err := ClassifyDays(days)
		if err != nil {
			t.Fatalf("ClassifyDays(%d) returned error: %v", days, err)
		}
		if !cat.Contains(days) {
			t.Fatalf("ClassifyDays(%d) returned %q whose range does not contain it", days, cat.Label)
		}

		matches := 0
		for _, c := range Categories() {
			if c.Contains(days) {
				matches++
			}
		}
		if matches != 1 {
			t.Fatalf("day %d matched %d buckets, want exactly 1", days, matches)
		}
	}
}

func TestCategories_FixedOrderAndSemaphore(t *testing.T) {
	cats := Categories()
	if len(cats) != 5 {
		t.Fatalf("Expected 5 categories, got %d", len(cats))
	}

	wantColors := []string{"#2ECC71", "#F1C40F", "#E67E22", "#E74C3C", "#C0392B"}
	wantTiers := []Tier{TierOptimal, TierMonitor, TierRisk, TierObsolete, TierCritical}
	for i, cat := range cats {
		if cat.Color != wantColors[i] {
			t.Errorf("category %d color = %s, want %s", i, cat.Color, wantColors[i])
		}
		if cat.Tier != wantTiers[i] {
			t.Errorf("category %d tier = %s, want %s", i, cat.Tier, wantTiers[i])
		}
		if i > 0 && cats[i-1].MaxDays != cat.MinDays {
			t.Errorf("gap between bucket %d and %d: %d != %d", i-1, i, cats[i-1].MaxDays, cat.MinDays)
		}
	}
	if cats[len(cats)-1].MaxDays >= 0 {
		t.Error("last bucket must be open-ended")
	}
}

func TestCategoryByLabel(t *testing.T) {
	cat, ok := CategoryByLabel("12-24 Months (Obsolete)")
	if !ok {
		t.Fatal("Expected known label to resolve")
	}
	if cat.Tier != TierObsolete {
		t.Errorf("Expected obsolete tier, got %s", cat.Tier)
	}

	if _, ok := CategoryByLabel("48-96 Months (Fossil)"); ok {
		t.Error("Expected unknown label to miss")
	}
}
