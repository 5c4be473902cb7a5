package catalog

import "testing"

func TestAverage(t *testing.T) {
	if got := Average(0, 0); got != 0.0 {
		t.Fatalf("expected 0.0, got %v", got)
	}
	if got := Average(7, 2); got != 3.5 {
		t.Fatalf("expected 3.5, got %v", got)
	}
}

func TestPageWindow(t *testing.T) {
	cases := []struct {
		page       Page
		n          int
		start, end int
	}{
		{Page{Skip: 0, Limit: 10}, 3, 0, 3},
		{Page{Skip: 1, Limit: 1}, 3, 1, 2},
		{Page{Skip: 3, Limit: 5}, 3, 3, 3},
		{Page{Skip: 10, Limit: 5}, 3, 3, 3},
		{Page{Skip: 0, Limit: 5}, 0, 0, 0},
	}
	for _, tc := range cases {
		start, end := tc.page.Window(tc.n)
		if start != tc.start || end != tc.end {
			t.Fatalf("%+v over %d: got [%d,%d), want [%d,%d)", tc.page, tc.n, start, end, tc.start, tc.end)
		}
	}
}

func TestDedupeLinesOrdersByName(t *testing.T) {
	g := "g"
	lines := []IngredientLine{{Name: "salt"}, {Name: "flour", Unit: &g}, {Name: "salt"}, {Name: ""}}
	out := DedupeLines(lines)
	if len(out) != 2 || out[0].Name != "flour" || out[1].Name != "salt" {
		t.Fatalf("unexpected lines: %#v", out)
	}
	if out[0].Unit == nil || *out[0].Unit != "g" {
		t.Fatalf("unit lost: %#v", out[0])
	}
}

func TestRecipePatchEmpty(t *testing.T) {
	if !(RecipePatch{}).Empty() {
		t.Fatalf("zero patch should be empty")
	}
	if (RecipePatch{Ingredients: []IngredientLine{}}).Empty() {
		t.Fatalf("explicit empty ingredient list is not an empty patch")
	}
}
