package refdoc

// Visible reports whether the member is shown in the given view mode.
// Protected members are dev-only; everything else is always shown.
func (m Member) Visible(mode ViewMode) bool {
	return mode == ModeDev || !m.Protected
}

// VisibleMembers filters a member list down to what the given mode shows,
// preserving order. The result is never nil.
func VisibleMembers(members []Member, mode ViewMode) []Member {
	out := make([]Member, 0, len(members))
	for _, m := range members {
		if m.Visible(mode) {
			out = append(out, m)
		}
	}
	return out
}

// ShowDevNotes reports whether dev-only item metadata (dev notes, todo list)
// is shown in the given mode.
func ShowDevNotes(mode ViewMode) bool {
	return mode == ModeDev
}

// ParseViewMode maps a user-supplied string to a ViewMode, defaulting to
// user mode for anything unrecognized.
func ParseViewMode(s string) ViewMode {
	if ViewMode(s) == ModeDev {
		return ModeDev
	}
	return ModeUser
}
