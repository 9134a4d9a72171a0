// Package refdoc defines the normalized reference document model and the
// one-shot loader that produces it. A document is fetched exactly once at
// startup and is immutable afterwards.
package refdoc

// ItemKind identifies a top-level documentation container kind.
type ItemKind string

const (
	KindClass  ItemKind = "class"
	KindModule ItemKind = "module"
)

// ViewMode controls which parts of the document are visible.
type ViewMode string

const (
	ModeUser ViewMode = "user"
	ModeDev  ViewMode = "dev"
)

// AccessMode is the access level of a property.
type AccessMode string

const (
	AccessReadWrite AccessMode = "readwrite"
	AccessReadOnly  AccessMode = "readonly"
	AccessWriteOnly AccessMode = "writeonly"
)

// Param describes a single member parameter.
type Param struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Optional    bool   `json:"optional"`
	Default     string `json:"default"`
}

// Return describes the return value of a member.
type Return struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Throws describes one error condition a member can raise.
type Throws struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Deprecation marks a member as deprecated with an optional message.
type Deprecation struct {
	Deprecated bool   `json:"deprecated"`
	Message    string `json:"message"`
}

// Member is a constructor, property, method, event, or function belonging to
// a class or module. Access is meaningful for properties only and defaults
// to read-write.
type Member struct {
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Params        []Param     `json:"params"`
	Returns       *Return     `json:"returns,omitempty"`
	Throws        []Throws    `json:"throws"`
	Static        bool        `json:"static"`
	Protected     bool        `json:"protected"`
	DefaultMember bool        `json:"defaultMember"`
	Deprecation   Deprecation `json:"deprecation"`
	Access        AccessMode  `json:"access,omitempty"`
	Examples      []string    `json:"examples"`
}

// ItemMeta is the metadata shared by classes and modules. DevNotes and Todo
// are dev-only and hidden in user mode.
type ItemMeta struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Remarks     string   `json:"remarks"`
	Examples    []string `json:"examples"`
	DevNotes    string   `json:"devNotes"`
	Todo        []string `json:"todo"`
	Requires    []string `json:"requires"`
}

// Class is a named container with constructors, properties, methods, and events.
type Class struct {
	ItemMeta
	Constructors []Member `json:"constructors"`
	Properties   []Member `json:"properties"`
	Methods      []Member `json:"methods"`
	Events       []Member `json:"events"`
}

// Module is a named container with functions only.
type Module struct {
	ItemMeta
	Functions []Member `json:"functions"`
}

// Document is the normalized reference document. Classes and Modules keep
// source payload order; presentation layers sort as needed. SnapshotID is a
// uuid assigned at normalization time and doubles as the document API ETag.
type Document struct {
	SnapshotID string   `json:"snapshotId"`
	Classes    []Class  `json:"classes"`
	Modules    []Module `json:"modules"`
}

// Item is a class or module viewed uniformly for navigation and rendering.
type Item interface {
	ItemName() string
	ItemKind() ItemKind
	Meta() ItemMeta
	// Member returns the first member with the given name, searching
	// constructors, properties, methods, events (classes) or functions
	// (modules) in that order. When two members share a name the first
	// match in document order wins.
	Member(name string) (Member, bool)
}

func (c *Class) ItemName() string   { return c.Name }
func (c *Class) ItemKind() ItemKind { return KindClass }
func (c *Class) Meta() ItemMeta     { return c.ItemMeta }

func (c *Class) Member(name string) (Member, bool) {
	for _, group := range [][]Member{c.Constructors, c.Properties, c.Methods, c.Events} {
		for _, m := range group {
			if m.Name == name {
				return m, true
			}
		}
	}
	return Member{}, false
}

func (m *Module) ItemName() string   { return m.Name }
func (m *Module) ItemKind() ItemKind { return KindModule }
func (m *Module) Meta() ItemMeta     { return m.ItemMeta }

func (m *Module) Member(name string) (Member, bool) {
	for _, fn := range m.Functions {
		if fn.Name == name {
			return fn, true
		}
	}
	return Member{}, false
}

// MemberCount returns the total number of members across all items.
func (d *Document) MemberCount() int {
	n := 0
	for i := range d.Classes {
		c := &d.Classes[i]
		n += len(c.Constructors) + len(c.Properties) + len(c.Methods) + len(c.Events)
	}
	for i := range d.Modules {
		n += len(d.Modules[i].Functions)
	}
	return n
}

// DuplicateMembers reports member names that appear more than once within a
// single container, as "Item.Member" strings. Deep links to these resolve to
// the first match; check surfaces them as warnings.
func (d *Document) DuplicateMembers() []string {
	var dups []string
	for i := range d.Classes {
		c := &d.Classes[i]
		dups = append(dups, duplicatesIn(c.Name, c.Constructors, c.Properties, c.Methods, c.Events)...)
	}
	for i := range d.Modules {
		m := &d.Modules[i]
		dups = append(dups, duplicatesIn(m.Name, m.Functions)...)
	}
	return dups
}

func duplicatesIn(owner string, groups ...[]Member) []string {
	seen := make(map[string]bool)
	var dups []string
	for _, group := range groups {
		for _, m := range group {
			if seen[m.Name] {
				dups = append(dups, owner+"."+m.Name)
				continue
			}
			seen[m.Name] = true
		}
	}
	return dups
}
