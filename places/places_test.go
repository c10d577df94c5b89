package places

import (
	"strings"
	"testing"

	"tripweaver/models"
)

func TestBuildFilter(t *testing.T) {
	if got := BuildFilter("", "", ""); len(got) != 0 {
		t.Errorf("expected empty filter, got %v", got)
	}

	got := BuildFilter("landmark", "moderate", "")
	if got["category"] != "landmark" || got["priceRange"] != "moderate" {
		t.Errorf("unexpected filter: %v", got)
	}
	if _, ok := got["location"]; ok {
		t.Error("location should be absent when not queried")
	}

	got = BuildFilter("", "", "paris")
	if _, ok := got["location"]; !ok {
		t.Errorf("expected location clause, got %v", got)
	}
}

func TestSamplePlacesWellFormed(t *testing.T) {
	if len(SamplePlaces) == 0 {
		t.Fatal("seed catalog is empty")
	}

	seen := map[string]bool{}
	for _, place := range SamplePlaces {
		if place.PlaceID == "" || place.Name == "" || place.Location == "" {
			t.Errorf("incomplete seed place: %+v", place)
		}
		if seen[place.PlaceID] {
			t.Errorf("duplicate seed id %s", place.PlaceID)
		}
		seen[place.PlaceID] = true

		if !contains(models.PlaceCategories, place.Category) {
			t.Errorf("%s: unknown category %q", place.PlaceID, place.Category)
		}
		if !contains(models.PlacePriceRanges, place.PriceRange) {
			t.Errorf("%s: unknown price range %q", place.PlaceID, place.PriceRange)
		}
		if place.Rating < 1 || place.Rating > 5 {
			t.Errorf("%s: rating %v out of range", place.PlaceID, place.Rating)
		}
		if !strings.Contains(place.Location, ",") {
			t.Errorf("%s: location %q missing country part", place.PlaceID, place.Location)
		}
	}
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
