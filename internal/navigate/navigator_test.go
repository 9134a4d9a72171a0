package navigate

import (
	"errors"
	"testing"

	"github.com/ksalhi/refview/internal/refdoc"
)

func testDoc(t *testing.T) *refdoc.Document {
	t.Helper()
	doc, err := refdoc.Normalize([]byte(`[
		{"name": "Zebra", "constructors": [{"name": "Zebra"}], "methods": [{"name": "gallop"}, {"name": "hidden", "protected": true}]},
		{"name": "Apple", "constructors": [], "properties": [{"name": "color"}]},
		{"name": "Color", "constructors": [{"name": "Color"}], "methods": [{"name": "blend"}]},
		{"name": "Color", "functions": [{"name": "parse"}]},
		{"name": "anchors", "functions": [{"name": "pin"}]}
	]`))
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	return doc
}

func TestLookupClassBeforeModule(t *testing.T) {
	nav := New(testDoc(t))

	item, ok := nav.Lookup("Color")
	if !ok {
		t.Fatal("Lookup(Color) failed")
	}
	if item.ItemKind() != refdoc.KindClass {
		t.Errorf("kind = %q, want class (classes resolve before modules)", item.ItemKind())
	}

	item, ok = nav.Lookup("anchors")
	if !ok || item.ItemKind() != refdoc.KindModule {
		t.Error("module lookup failed")
	}

	if _, ok := nav.Lookup("Missing"); ok {
		t.Error("unknown name should not resolve")
	}
}

func TestSplitDeepLink(t *testing.T) {
	tests := []struct {
		q, item, member string
	}{
		{"Foo", "Foo", ""},
		{"Foo.Bar", "Foo", "Bar"},
		{"Foo.Bar.Baz", "Foo", "Bar.Baz"},
		{"  Foo.Bar ", "Foo", "Bar"},
		{"", "", ""},
	}
	for _, tt := range tests {
		item, member := SplitDeepLink(tt.q)
		if item != tt.item || member != tt.member {
			t.Errorf("SplitDeepLink(%q) = %q, %q; want %q, %q", tt.q, item, member, tt.item, tt.member)
		}
	}
}

func TestResolve(t *testing.T) {
	nav := New(testDoc(t))

	cur, err := nav.Resolve("Zebra.gallop")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cur.Item != "Zebra" || cur.Member != "gallop" || cur.Kind != refdoc.KindClass {
		t.Errorf("cursor = %+v", cur)
	}

	cur, err = nav.Resolve("anchors")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cur.Item != "anchors" || cur.Member != "" {
		t.Errorf("cursor = %+v", cur)
	}
}

func TestResolveUnknownItem(t *testing.T) {
	nav := New(testDoc(t))

	_, err := nav.Resolve("Unknown")
	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("err = %v, want ErrItemNotFound", err)
	}
	_, err = nav.Resolve("")
	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("empty q: err = %v, want ErrItemNotFound", err)
	}
}

func TestResolveUnknownMemberKeepsSelection(t *testing.T) {
	nav := New(testDoc(t))

	cur, err := nav.Resolve("Zebra.fly")
	if !errors.Is(err, ErrMemberNotFound) {
		t.Fatalf("err = %v, want ErrMemberNotFound", err)
	}
	if cur.Item != "Zebra" {
		t.Errorf("item selection should survive a member miss, got %+v", cur)
	}
	if cur.Member != "" {
		t.Errorf("member should be empty on miss, got %q", cur.Member)
	}
}

func TestSidebarSorted(t *testing.T) {
	nav := New(testDoc(t))

	classes, modules := nav.Sidebar()
	wantClasses := []string{"Apple", "Color", "Zebra"}
	wantModules := []string{"Color", "anchors"}

	if len(classes) != len(wantClasses) {
		t.Fatalf("classes = %v", classes)
	}
	for i, name := range wantClasses {
		if classes[i] != name {
			t.Errorf("classes[%d] = %q, want %q", i, classes[i], name)
		}
	}
	if len(modules) != len(wantModules) {
		t.Fatalf("modules = %v", modules)
	}
	for i, name := range wantModules {
		if modules[i] != name {
			t.Errorf("modules[%d] = %q, want %q", i, modules[i], name)
		}
	}
}

func TestOutlineFiltersByMode(t *testing.T) {
	nav := New(testDoc(t))
	item, _ := nav.Lookup("Zebra")

	user := Outline(item, refdoc.ModeUser)
	dev := Outline(item, refdoc.ModeDev)

	countIn := func(sections []Section, name string) int {
		n := 0
		for _, s := range sections {
			for _, m := range s.Members {
				if m.Name == name {
					n++
				}
			}
		}
		return n
	}

	if countIn(user, "hidden") != 0 {
		t.Error("protected member should be absent from user-mode outline")
	}
	if countIn(dev, "hidden") != 1 {
		t.Error("protected member should appear in dev-mode outline")
	}
	if countIn(user, "gallop") != 1 || countIn(dev, "gallop") != 1 {
		t.Error("public members must appear exactly once in both modes")
	}
}

func TestOutlineDropsEmptySections(t *testing.T) {
	nav := New(testDoc(t))
	item, _ := nav.Lookup("Apple")

	sections := Outline(item, refdoc.ModeUser)
	// Apple has an empty constructors list and one property.
	if len(sections) != 1 || sections[0].Title != "Properties" {
		t.Errorf("sections = %+v, want only Properties", sections)
	}
}

func TestAnchor(t *testing.T) {
	if Anchor("gallop") != "member-gallop" {
		t.Errorf("Anchor = %q", Anchor("gallop"))
	}
}
