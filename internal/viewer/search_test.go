package viewer

import (
	"testing"

	"github.com/ksalhi/refview/internal/refdoc"
)

func testIndex(t *testing.T) *Index {
	t.Helper()
	doc, err := refdoc.Normalize([]byte(`[
		{"name": "Canvas", "description": "A drawing surface.", "constructors": [{"name": "Canvas"}],
		 "methods": [
			{"name": "draw", "description": "Renders the scene."},
			{"name": "drawRect"},
			{"name": "flushCache", "protected": true, "description": "Drops the draw cache."}
		 ]},
		{"name": "geometry", "functions": [{"name": "withdraw", "description": "Removes a shape."}]}
	]`))
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	return BuildIndex(doc)
}

func TestQueryRanking(t *testing.T) {
	ix := testIndex(t)

	results := ix.Query("draw", refdoc.ModeUser, 10)
	if len(results) < 3 {
		t.Fatalf("results = %+v", results)
	}
	// Exact name match first, then prefix, then substring.
	if results[0].Member != "draw" {
		t.Errorf("first result = %+v, want exact match draw", results[0])
	}
	if results[1].Member != "drawRect" {
		t.Errorf("second result = %+v, want prefix match drawRect", results[1])
	}
	if results[2].Member != "withdraw" {
		t.Errorf("third result = %+v, want substring match withdraw", results[2])
	}
}

func TestQueryDescriptionMatch(t *testing.T) {
	ix := testIndex(t)

	results := ix.Query("scene", refdoc.ModeUser, 10)
	if len(results) != 1 || results[0].Member != "draw" {
		t.Errorf("results = %+v, want the member whose description matches", results)
	}
}

func TestQueryModeFiltersProtected(t *testing.T) {
	ix := testIndex(t)

	has := func(results []SearchResult, member string) bool {
		for _, r := range results {
			if r.Member == member {
				return true
			}
		}
		return false
	}

	if has(ix.Query("flushCache", refdoc.ModeUser, 10), "flushCache") {
		t.Error("protected member should not surface in user mode")
	}
	if !has(ix.Query("flushCache", refdoc.ModeDev, 10), "flushCache") {
		t.Error("protected member should surface in dev mode")
	}
}

func TestQueryItemMatch(t *testing.T) {
	ix := testIndex(t)

	results := ix.Query("canvas", refdoc.ModeUser, 10)
	if len(results) == 0 {
		t.Fatal("no results")
	}
	if results[0].Item != "Canvas" || results[0].Kind != refdoc.KindClass {
		t.Errorf("first result = %+v", results[0])
	}
	if results[0].Link != "/item/Canvas" {
		t.Errorf("item link = %q", results[0].Link)
	}
}

func TestQueryMemberLink(t *testing.T) {
	ix := testIndex(t)

	results := ix.Query("drawRect", refdoc.ModeUser, 10)
	if len(results) == 0 {
		t.Fatal("no results")
	}
	want := "/item/Canvas?hl=drawRect#member-drawRect"
	if results[0].Link != want {
		t.Errorf("link = %q, want %q", results[0].Link, want)
	}
}

func TestQueryLimitAndEmpty(t *testing.T) {
	ix := testIndex(t)

	if results := ix.Query("draw", refdoc.ModeUser, 2); len(results) != 2 {
		t.Errorf("limited results = %d, want 2", len(results))
	}
	if results := ix.Query("   ", refdoc.ModeUser, 10); len(results) != 0 {
		t.Errorf("blank query results = %d, want 0", len(results))
	}
	if results := ix.Query("zzzz", refdoc.ModeUser, 10); len(results) != 0 {
		t.Errorf("no-match results = %d, want 0", len(results))
	}
}

func TestFirstSentence(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"Renders the scene. Slowly.", "Renders the scene."},
		{"One line\nsecond line", "One line"},
		{"", ""},
		{"no terminator", "no terminator"},
	}
	for _, tt := range tests {
		if got := firstSentence(tt.input); got != tt.want {
			t.Errorf("firstSentence(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
