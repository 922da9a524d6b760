package predictor

import (
	"math"
	"testing"

	"app/models"
)

func testProduct(category string, current, historical float64) models.Product {
	return models.Product{
		ID:                 1,
		Name:               "Test Product",
		Category:           category,
		CurrentPrice:       current,
		HistoricalPriceAvg: historical,
		Unit:               "pack",
	}
}

func TestParseSeason(t *testing.T) {
	cases := []struct {
		in   string
		want Season
		ok   bool
	}{
		{"Summer", SeasonSummer, true},
		{"winter", SeasonWinter, true},
		{"MONSOON", SeasonMonsoon, true},
		{"Regular", SeasonRegular, true},
		{"Diwali", SeasonDiwali, true},
		{"Holi", SeasonHoli, true},
		{"NewYear", SeasonNewYear, true},
		{"Festival", SeasonFestival, true},
		{"Autumn", "", false},
		{"", "", false},
	}

	for _, c := range cases {
		got, err := ParseSeason(c.in)
		if c.ok && (err != nil || got != c.want) {
			t.Fatalf("ParseSeason(%q) = (%q, %v); want (%q, nil)", c.in, got, err, c.want)
		}
		if !c.ok && err != ErrInvalidSeason {
			t.Fatalf("ParseSeason(%q) error = %v; want ErrInvalidSeason", c.in, err)
		}
	}
}

func TestMultiplierTableComplete(t *testing.T) {
	for _, season := range Seasons() {
		for _, category := range Categories() {
			factors, ok := seasonalMultipliers[season]
			if !ok {
				t.Fatalf("no multiplier row for season %q", season)
			}
			if _, ok := factors[category]; !ok {
				t.Fatalf("no multiplier for (%q, %q)", category, season)
			}
		}
	}
}

func TestRegularSeasonIsNeutral(t *testing.T) {
	for _, category := range Categories() {
		if m := SeasonalMultiplier(category, SeasonRegular); m != 1.0 {
			t.Fatalf("Regular multiplier for %q = %v; want 1.0", category, m)
		}
	}
}

func TestFestivalBoostIsUniform(t *testing.T) {
	for _, season := range []Season{SeasonDiwali, SeasonHoli, SeasonNewYear, SeasonFestival} {
		first := SeasonalMultiplier(Categories()[0], season)
		if first <= 1.0 {
			t.Fatalf("festival season %q multiplier = %v; want > 1.0", season, first)
		}
		for _, category := range Categories() {
			if m := SeasonalMultiplier(category, season); m != first {
				t.Fatalf("festival season %q multiplier for %q = %v; want uniform %v", season, category, m, first)
			}
		}
	}
}

func TestPredictDemandNeutralSeason(t *testing.T) {
	// Price at its historical average leaves the category baseline
	// untouched under the Regular season.
	for _, category := range Categories() {
		p := testProduct(category, 100, 100)
		demand, err := PredictDemand(p, SeasonRegular)
		if err != nil {
			t.Fatalf("PredictDemand(%q, Regular) error: %v", category, err)
		}
		if demand != BaseDemand(category) {
			t.Fatalf("PredictDemand(%q, Regular) = %d; want base demand %d", category, demand, BaseDemand(category))
		}
	}
}

func TestPredictDemandPriceElasticity(t *testing.T) {
	cheap := testProduct(CategoryGroceries, 80, 100)
	fair := testProduct(CategoryGroceries, 100, 100)
	dear := testProduct(CategoryGroceries, 125, 100)

	dc, err := PredictDemand(cheap, SeasonRegular)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	df, _ := PredictDemand(fair, SeasonRegular)
	dd, _ := PredictDemand(dear, SeasonRegular)

	if !(dc > df && df > dd) {
		t.Fatalf("elasticity ordering broken: cheap=%d fair=%d dear=%d", dc, df, dd)
	}
}

func TestPredictDemandElasticityClamped(t *testing.T) {
	// A price ten times below the historical average must not blow demand
	// past 1.5x the baseline.
	p := testProduct(CategoryBeverages, 10, 100)
	demand, err := PredictDemand(p, SeasonRegular)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	max := int(math.Round(float64(BaseDemand(CategoryBeverages)) * 1.5))
	if demand != max {
		t.Fatalf("clamped demand = %d; want %d", demand, max)
	}
}

func TestPredictDemandSeasonalRules(t *testing.T) {
	cases := []struct {
		category string
		boosted  Season
	}{
		{CategoryBeverages, SeasonSummer},
		{CategoryFruits, SeasonSummer},
		{CategoryDairy, SeasonWinter},
		{CategoryBakery, SeasonWinter},
		{CategoryGroceries, SeasonMonsoon},
		{CategoryPersonalCare, SeasonMonsoon},
	}

	for _, c := range cases {
		p := testProduct(c.category, 100, 100)
		boosted, err := PredictDemand(p, c.boosted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		regular, _ := PredictDemand(p, SeasonRegular)
		if boosted <= regular {
			t.Fatalf("%s in %s = %d; want above regular %d", c.category, c.boosted, boosted, regular)
		}
	}
}

func TestPredictDemandDeterministic(t *testing.T) {
	p := testProduct(CategoryGroceries, 425, 380)
	first, err := PredictDemand(p, SeasonSummer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := PredictDemand(p, SeasonSummer)
		if err != nil || again != first {
			t.Fatalf("call %d: got (%d, %v); want (%d, nil)", i, again, err, first)
		}
	}
}

func TestPredictDemandInvalidInputs(t *testing.T) {
	if _, err := PredictDemand(testProduct(CategoryDairy, 100, 100), Season("Springtime")); err != ErrInvalidSeason {
		t.Fatalf("expected ErrInvalidSeason, got %v", err)
	}
	if _, err := PredictDemand(testProduct(CategoryDairy, 0, 100), SeasonRegular); err != ErrInvalidProduct {
		t.Fatalf("expected ErrInvalidProduct for zero price, got %v", err)
	}
	if _, err := PredictDemand(testProduct(CategoryDairy, 100, -5), SeasonRegular); err != ErrInvalidProduct {
		t.Fatalf("expected ErrInvalidProduct for negative historical average, got %v", err)
	}
}

func TestPredictDemandUnknownCategoryFallsBack(t *testing.T) {
	p := testProduct("Electronics", 100, 100)
	demand, err := PredictDemand(p, SeasonRegular)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if demand != BaseDemand(CategoryMiscellaneous) {
		t.Fatalf("unknown category demand = %d; want miscellaneous baseline %d", demand, BaseDemand(CategoryMiscellaneous))
	}
}
