package navigate

import "github.com/ksalhi/refview/internal/refdoc"

// Section is one group of the in-page outline (Constructors, Properties,
// Methods, Events for classes; Functions for modules).
type Section struct {
	Title   string
	Members []refdoc.Member
}

// Anchor returns the stable fragment ID for a member name. Duplicate names
// within one container collide on the same anchor; the first rendered member
// owns it.
func Anchor(member string) string {
	return "member-" + member
}

// Outline builds the outline sections for an item in the given view mode.
// Empty sections are dropped so the outline mirrors the detail pane.
func Outline(item refdoc.Item, mode refdoc.ViewMode) []Section {
	var sections []Section
	add := func(title string, members []refdoc.Member) {
		visible := refdoc.VisibleMembers(members, mode)
		if len(visible) > 0 {
			sections = append(sections, Section{Title: title, Members: visible})
		}
	}

	switch it := item.(type) {
	case *refdoc.Class:
		add("Constructors", it.Constructors)
		add("Properties", it.Properties)
		add("Methods", it.Methods)
		add("Events", it.Events)
	case *refdoc.Module:
		add("Functions", it.Functions)
	}
	return sections
}
