package viewer

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/ksalhi/refview/internal/navigate"
	"github.com/ksalhi/refview/internal/refdoc"
)

// md renders the markdown-bearing document fields (descriptions, remarks).
// Raw HTML passthrough stays disabled; the document is remote input.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
)

// renderMarkdown converts a markdown field to HTML. On conversion failure the
// text is rendered escaped rather than dropped.
func renderMarkdown(src string) template.HTML {
	if strings.TrimSpace(src) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return template.HTML("<p>" + template.HTMLEscapeString(src) + "</p>")
	}
	return template.HTML(buf.String())
}

// renderExample renders an example snippet as a fenced code block.
func renderExample(code string) template.HTML {
	return renderMarkdown("```\n" + strings.TrimRight(code, "\n") + "\n```")
}

// sidebarEntry is one class or module link in the sidebar.
type sidebarEntry struct {
	Name   string
	Link   string
	Active bool
}

// pageData is the data for the outer page template.
type pageData struct {
	Title    string
	Site     string
	Mode     refdoc.ViewMode
	DevMode  bool
	Classes  []sidebarEntry
	Modules  []sidebarEntry
	Content  template.HTML
	Snapshot string
	// ModeToggle is the /mode/... link flipping the current view mode.
	ModeToggle string
}

// welcomeView is the data for the welcome (no selection) pane.
type welcomeView struct {
	Site     string
	Classes  int
	Modules  int
	NotFound string // inline message when a deep link missed
	LoadErr  string // rendered error state when the document failed to load
}

// memberView is one member in the detail pane.
type memberView struct {
	Name           string
	Anchor         string
	Highlighted    bool
	Description    template.HTML
	Params         []refdoc.Param
	Returns        *refdoc.Return
	Throws         []refdoc.Throws
	Static         bool
	Protected      bool
	DefaultMember  bool
	Deprecated     bool
	DeprecationMsg string
	Access         refdoc.AccessMode
	Examples       []template.HTML
}

// sectionView is one member group in the detail pane.
type sectionView struct {
	Title   string
	Members []memberView
}

// outlineEntry is one link of the in-page outline.
type outlineEntry struct {
	Name        string
	Anchor      string
	Highlighted bool
}

// outlineSection groups outline entries under a section title.
type outlineSection struct {
	Title   string
	Entries []outlineEntry
}

// itemView is the data for the item detail pane.
type itemView struct {
	Name          string
	Kind          refdoc.ItemKind
	Description   template.HTML
	Remarks       template.HTML
	Examples      []template.HTML
	Requires      []string
	DevNotes      template.HTML
	Todo          []string
	ShowDev       bool
	Sections      []sectionView
	Outline       []outlineSection
	MemberMissing string // inline message when the deep-linked member is absent
}

// buildItemView assembles the detail pane for an item in the given mode,
// marking highlight (if any) in both the sections and the outline.
func buildItemView(item refdoc.Item, mode refdoc.ViewMode, highlight string) itemView {
	meta := item.Meta()
	view := itemView{
		Name:        meta.Name,
		Kind:        item.ItemKind(),
		Description: renderMarkdown(meta.Description),
		Remarks:     renderMarkdown(meta.Remarks),
		Requires:    meta.Requires,
		ShowDev:     refdoc.ShowDevNotes(mode),
	}
	for _, ex := range meta.Examples {
		view.Examples = append(view.Examples, renderExample(ex))
	}
	if view.ShowDev {
		view.DevNotes = renderMarkdown(meta.DevNotes)
		view.Todo = meta.Todo
	}

	// The first member owning an anchor wins; duplicates share it.
	highlightUsed := false
	for _, section := range navigate.Outline(item, mode) {
		sv := sectionView{Title: section.Title}
		ov := outlineSection{Title: section.Title}
		seen := make(map[string]bool)
		for _, m := range section.Members {
			hl := highlight != "" && m.Name == highlight && !highlightUsed
			if hl {
				highlightUsed = true
			}
			anchored := !seen[m.Name]
			seen[m.Name] = true

			mv := memberView{
				Name:           m.Name,
				Highlighted:    hl,
				Description:    renderMarkdown(m.Description),
				Params:         m.Params,
				Returns:        m.Returns,
				Throws:         m.Throws,
				Static:         m.Static,
				Protected:      m.Protected,
				DefaultMember:  m.DefaultMember,
				Deprecated:     m.Deprecation.Deprecated,
				DeprecationMsg: m.Deprecation.Message,
				Access:         m.Access,
			}
			if anchored {
				mv.Anchor = navigate.Anchor(m.Name)
			}
			for _, ex := range m.Examples {
				mv.Examples = append(mv.Examples, renderExample(ex))
			}
			sv.Members = append(sv.Members, mv)
			ov.Entries = append(ov.Entries, outlineEntry{
				Name:        m.Name,
				Anchor:      navigate.Anchor(m.Name),
				Highlighted: hl,
			})
		}
		view.Sections = append(view.Sections, sv)
		view.Outline = append(view.Outline, ov)
	}

	return view
}
