package refdoc

import "testing"

func TestVisibleMembers(t *testing.T) {
	members := []Member{
		{Name: "open"},
		{Name: "reset", Protected: true},
		{Name: "close"},
	}

	user := VisibleMembers(members, ModeUser)
	if len(user) != 2 {
		t.Fatalf("user mode members = %d, want 2", len(user))
	}
	if user[0].Name != "open" || user[1].Name != "close" {
		t.Errorf("user mode members = %v", user)
	}

	dev := VisibleMembers(members, ModeDev)
	if len(dev) != 3 {
		t.Errorf("dev mode members = %d, want 3", len(dev))
	}
}

func TestModeTogglePreservesPublicCount(t *testing.T) {
	members := []Member{
		{Name: "a"},
		{Name: "b", Protected: true},
		{Name: "c", Static: true},
	}

	countPublic := func(ms []Member) int {
		n := 0
		for _, m := range ms {
			if !m.Protected {
				n++
			}
		}
		return n
	}

	if countPublic(VisibleMembers(members, ModeUser)) != countPublic(VisibleMembers(members, ModeDev)) {
		t.Error("toggling mode must not change the count of public members")
	}
}

func TestShowDevNotes(t *testing.T) {
	if ShowDevNotes(ModeUser) {
		t.Error("dev notes should be hidden in user mode")
	}
	if !ShowDevNotes(ModeDev) {
		t.Error("dev notes should be shown in dev mode")
	}
}

func TestParseViewMode(t *testing.T) {
	tests := []struct {
		input string
		want  ViewMode
	}{
		{"dev", ModeDev},
		{"user", ModeUser},
		{"", ModeUser},
		{"admin", ModeUser},
	}
	for _, tt := range tests {
		if got := ParseViewMode(tt.input); got != tt.want {
			t.Errorf("ParseViewMode(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
