package marketplace

import (
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/coder-yr/taste-link/models"
)

func fixtureSuppliers() []models.Supplier {
	return []models.Supplier{
		{ID: "1", Name: "GreenField Supplies", Distance: "2.3 km", Rating: 4.9, TrustScore: 98, ActiveGroupBuys: 3,
			Specialties: models.StringList{"Rice", "Grains", "Cooking Oil"}},
		{ID: "2", Name: "FarmFresh Direct", Distance: "4.1 km", Rating: 4.8, TrustScore: 95, ActiveGroupBuys: 5,
			Specialties: models.StringList{"Vegetables", "Fruits", "Organic Produce"}},
		{ID: "3", Name: "Quality Foods Co", Distance: "6.7 km", Rating: 4.7, TrustScore: 92, ActiveGroupBuys: 2,
			Specialties: models.StringList{"Frozen Foods", "Dairy", "Beverages", "Snacks"}},
		{ID: "4", Name: "Spice Masters Ltd", Distance: "3.2 km", Rating: 4.6, TrustScore: 88, ActiveGroupBuys: 1,
			Specialties: models.StringList{"Spices", "Herbs", "Seasonings", "Condiments"}},
	}
}

func ids(suppliers []models.Supplier) string {
	out := make([]string, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, s.ID)
	}
	return strings.Join(out, ",")
}

func TestFilterSuppliersEmptyQueryReturnsAll(t *testing.T) {
	all := fixtureSuppliers()
	if got := FilterSuppliers(all, ""); len(got) != len(all) {
		t.Errorf("empty query returned %d suppliers, want %d", len(got), len(all))
	}
}

func TestFilterSuppliersBySpecialty(t *testing.T) {
	got := FilterSuppliers(fixtureSuppliers(), "Spice")
	if len(got) != 1 || got[0].Name != "Spice Masters Ltd" {
		t.Fatalf("query Spice matched %q", ids(got))
	}
}

func TestFilterSuppliersCaseInsensitive(t *testing.T) {
	for _, q := range []string{"farmfresh", "FARMFRESH", "fArMfReSh", "organic", "ORGANIC PRO"} {
		got := FilterSuppliers(fixtureSuppliers(), q)
		if ids(got) != "2" {
			t.Errorf("query %q matched %q, want 2", q, ids(got))
		}
	}
}

func TestFilterSuppliersNoMatch(t *testing.T) {
	if got := FilterSuppliers(fixtureSuppliers(), "electronics"); len(got) != 0 {
		t.Errorf("expected no match, got %q", ids(got))
	}
}

// Every supplier returned must match and every supplier that matches must
// be returned, for arbitrary names, tags and queries.
func TestFilterSuppliersRandom(t *testing.T) {
	faker := gofakeit.New(42)
	for i := 0; i < 200; i++ {
		suppliers := make([]models.Supplier, 8)
		for j := range suppliers {
			suppliers[j] = models.Supplier{
				ID:          faker.UUID(),
				Name:        faker.Company(),
				Specialties: models.StringList{faker.BuzzWord(), faker.Noun(), faker.Adjective()},
			}
		}
		pick := suppliers[faker.IntRange(0, len(suppliers)-1)]
		var q string
		if faker.Bool() {
			q = pick.Name
		} else {
			q = pick.Specialties[faker.IntRange(0, 2)]
		}
		if len(q) > 3 {
			q = q[1 : len(q)-1]
		}
		if faker.Bool() {
			q = strings.ToUpper(q)
		}

		got := FilterSuppliers(suppliers, q)
		seen := map[string]bool{}
		for _, s := range got {
			seen[s.ID] = true
		}
		if !seen[pick.ID] {
			t.Fatalf("query %q did not match %+v", q, pick)
		}
		lq := strings.ToLower(q)
		for _, s := range suppliers {
			want := strings.Contains(strings.ToLower(s.Name), lq)
			for _, sp := range s.Specialties {
				want = want || strings.Contains(strings.ToLower(sp), lq)
			}
			if want != seen[s.ID] {
				t.Fatalf("query %q: supplier %q match=%v, filter=%v", q, s.Name, want, seen[s.ID])
			}
		}
	}
}

func TestMatchesCategory(t *testing.T) {
	all := fixtureSuppliers()
	cases := map[string]string{
		CategoryAll:  "1,2,3,4",
		"":           "1,2,3,4",
		"grains":     "1",
		"vegetables": "2",
		"spices":     "4",
		"frozen":     "3",
		"dairy":      "3",
		"unknown":    "1,2,3,4",
	}
	for category, want := range cases {
		got := Search(all, SupplierQuery{Category: category})
		if ids(got) != want {
			t.Errorf("category %q = %q, want %q", category, ids(got), want)
		}
	}
}

func TestSortSuppliers(t *testing.T) {
	cases := map[string]string{
		SortRating:   "1,2,3,4",
		SortTrust:    "1,2,3,4",
		SortDeals:    "2,1,3,4",
		SortDistance: "1,4,2,3",
		"bogus":      "1,2,3,4",
	}
	for key, want := range cases {
		all := fixtureSuppliers()
		SortSuppliers(all, key)
		if ids(all) != want {
			t.Errorf("sort %q = %q, want %q", key, ids(all), want)
		}
	}
}

func TestSortByDistanceUnknownLast(t *testing.T) {
	all := fixtureSuppliers()
	all[0].Distance = "nearby"
	SortSuppliers(all, SortDistance)
	if ids(all) != "4,2,3,1" {
		t.Errorf("got %q", ids(all))
	}
}

func TestSearchCombinesFilters(t *testing.T) {
	got := Search(fixtureSuppliers(), SupplierQuery{Text: "o", Category: CategoryAll, Sort: SortDistance})
	// every supplier has an "o" in its name or in one of its specialties
	if ids(got) != "1,4,2,3" {
		t.Errorf("got %q", ids(got))
	}
}
