// Package navigate resolves selections and deep links against a normalized
// reference document and builds the sidebar and in-page outline.
package navigate

import (
	"errors"
	"sort"
	"strings"

	"github.com/ksalhi/refview/internal/refdoc"
)

var (
	// ErrItemNotFound means the deep link named an item absent from the
	// document; no selection is made.
	ErrItemNotFound = errors.New("item not found")
	// ErrMemberNotFound means the item resolved but the member did not;
	// the item is still selected.
	ErrMemberNotFound = errors.New("member not found")
)

// Cursor is a resolved selection: an item plus an optional highlighted member.
type Cursor struct {
	Kind   refdoc.ItemKind
	Item   string
	Member string
}

// Navigator answers name and deep-link lookups against one document.
type Navigator struct {
	doc *refdoc.Document
}

// New creates a Navigator over the given document.
func New(doc *refdoc.Document) *Navigator {
	return &Navigator{doc: doc}
}

// Lookup finds the item with the given name, trying classes first and
// falling back to modules.
func (n *Navigator) Lookup(name string) (refdoc.Item, bool) {
	for i := range n.doc.Classes {
		if n.doc.Classes[i].Name == name {
			return &n.doc.Classes[i], true
		}
	}
	for i := range n.doc.Modules {
		if n.doc.Modules[i].Name == name {
			return &n.doc.Modules[i], true
		}
	}
	return nil, false
}

// SplitDeepLink splits a q parameter of form "Item" or "Item.Member" at the
// first dot.
func SplitDeepLink(q string) (item, member string) {
	item, member, _ = strings.Cut(strings.TrimSpace(q), ".")
	return item, member
}

// Resolve resolves a deep link. On ErrMemberNotFound the returned cursor
// still carries the selected item; on ErrItemNotFound it is zero. When a
// member name occurs more than once in the item, the first match in document
// order wins.
func (n *Navigator) Resolve(q string) (Cursor, error) {
	name, member := SplitDeepLink(q)
	if name == "" {
		return Cursor{}, ErrItemNotFound
	}

	item, ok := n.Lookup(name)
	if !ok {
		return Cursor{}, ErrItemNotFound
	}

	cur := Cursor{Kind: item.ItemKind(), Item: item.ItemName()}
	if member == "" {
		return cur, nil
	}
	if _, ok := item.Member(member); !ok {
		return cur, ErrMemberNotFound
	}
	cur.Member = member
	return cur, nil
}

// Sidebar returns the class and module name lists for the sidebar, each
// alphabetically sorted. Items keep their one entry per record; a class and
// a module may legitimately share a name across the two lists.
func (n *Navigator) Sidebar() (classes, modules []string) {
	classes = make([]string, 0, len(n.doc.Classes))
	for i := range n.doc.Classes {
		classes = append(classes, n.doc.Classes[i].Name)
	}
	modules = make([]string, 0, len(n.doc.Modules))
	for i := range n.doc.Modules {
		modules = append(modules, n.doc.Modules[i].Name)
	}
	sort.Strings(classes)
	sort.Strings(modules)
	return classes, modules
}
