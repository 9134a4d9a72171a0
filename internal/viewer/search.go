package viewer

import (
	"net/url"
	"sort"
	"strings"

	"github.com/ksalhi/refview/internal/navigate"
	"github.com/ksalhi/refview/internal/refdoc"
)

// indexEntry is one searchable row: an item, or one member of an item.
type indexEntry struct {
	item      string
	kind      refdoc.ItemKind
	member    string
	protected bool
	name      string // lowercased match target (member name, or item name)
	text      string // lowercased description
	summary   string
}

// Index is the in-memory search index over the normalized document. It is
// built once after the document load and read-only afterwards.
type Index struct {
	entries []indexEntry
}

// SearchResult is one row of the search API response.
type SearchResult struct {
	Item    string          `json:"item"`
	Kind    refdoc.ItemKind `json:"kind"`
	Member  string          `json:"member,omitempty"`
	Link    string          `json:"link"`
	Summary string          `json:"summary,omitempty"`
}

// BuildIndex indexes every item and member by name and description.
func BuildIndex(doc *refdoc.Document) *Index {
	ix := &Index{}
	for i := range doc.Classes {
		c := &doc.Classes[i]
		ix.addItem(c.ItemMeta, refdoc.KindClass)
		ix.addMembers(c.Name, refdoc.KindClass, c.Constructors, c.Properties, c.Methods, c.Events)
	}
	for i := range doc.Modules {
		m := &doc.Modules[i]
		ix.addItem(m.ItemMeta, refdoc.KindModule)
		ix.addMembers(m.Name, refdoc.KindModule, m.Functions)
	}
	return ix
}

func (ix *Index) addItem(meta refdoc.ItemMeta, kind refdoc.ItemKind) {
	ix.entries = append(ix.entries, indexEntry{
		item:    meta.Name,
		kind:    kind,
		name:    strings.ToLower(meta.Name),
		text:    strings.ToLower(meta.Description),
		summary: firstSentence(meta.Description),
	})
}

func (ix *Index) addMembers(item string, kind refdoc.ItemKind, groups ...[]refdoc.Member) {
	for _, group := range groups {
		for _, m := range group {
			ix.entries = append(ix.entries, indexEntry{
				item:      item,
				kind:      kind,
				member:    m.Name,
				protected: m.Protected,
				name:      strings.ToLower(m.Name),
				text:      strings.ToLower(m.Description),
				summary:   firstSentence(m.Description),
			})
		}
	}
}

// Query matches the query against names and descriptions, best matches
// first. Protected members are excluded in user mode.
func (ix *Index) Query(query string, mode refdoc.ViewMode, limit int) []SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []SearchResult{}
	}

	type scored struct {
		entry indexEntry
		score int
	}
	var matches []scored
	for _, e := range ix.entries {
		if e.protected && mode != refdoc.ModeDev {
			continue
		}
		score := 0
		switch {
		case e.name == q:
			score = 100
		case strings.HasPrefix(e.name, q):
			score = 60
		case strings.Contains(e.name, q):
			score = 30
		case strings.Contains(e.text, q):
			score = 10
		}
		if score > 0 {
			matches = append(matches, scored{entry: e, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].entry.name < matches[j].entry.name
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	results := make([]SearchResult, 0, len(matches))
	for _, m := range matches {
		results = append(results, SearchResult{
			Item:    m.entry.item,
			Kind:    m.entry.kind,
			Member:  m.entry.member,
			Link:    resultLink(m.entry),
			Summary: m.entry.summary,
		})
	}
	return results
}

func resultLink(e indexEntry) string {
	link := "/item/" + url.PathEscape(e.item)
	if e.member != "" {
		link += "?hl=" + url.QueryEscape(e.member) + "#" + navigate.Anchor(e.member)
	}
	return link
}

// firstSentence trims a description down to a one-line summary.
func firstSentence(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".\n"); i > 0 {
		s = s[:i+1]
	}
	if len(s) > 160 {
		s = s[:160]
	}
	return strings.TrimSuffix(s, "\n")
}
