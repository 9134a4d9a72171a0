package viewer

import (
	"bytes"
	"html/template"
	"io"
)

// templates holds the parsed page, welcome, and item templates.
type templates struct {
	pageT    *template.Template
	welcomeT *template.Template
	itemT    *template.Template
}

// newTemplates parses the template constants. The constants are compiled in,
// so a parse failure is a programming error and panics at startup.
func newTemplates() *templates {
	return &templates{
		pageT:    template.Must(template.New("page").Parse(pageTemplate)),
		welcomeT: template.Must(template.New("welcome").Parse(welcomeTemplate)),
		itemT:    template.Must(template.New("item").Parse(itemTemplate)),
	}
}

func (t *templates) welcome(view welcomeView) (template.HTML, error) {
	return execute(t.welcomeT, view)
}

func (t *templates) item(view itemView) (template.HTML, error) {
	return execute(t.itemT, view)
}

func (t *templates) renderPage(w io.Writer, data pageData) error {
	return t.pageT.Execute(w, data)
}

func execute(tmpl *template.Template, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// pageTemplate is the outer layout: sidebar with the class and module lists,
// mode toggle, and the content pane.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="/style.css">
</head>
<body>
  <nav class="sidebar">
    <div class="sidebar-header">
      <h2 class="site-title"><a href="/">{{.Site}}</a></h2>
      <a class="mode-toggle" href="{{.ModeToggle}}">{{if .DevMode}}dev mode · switch to user{{else}}user mode · switch to dev{{end}}</a>
    </div>
    <div class="sidebar-lists">
      {{if .Classes}}<h3>Classes</h3>
      <ul>
        {{range .Classes}}<li{{if .Active}} class="active"{{end}}><a href="{{.Link}}">{{.Name}}</a></li>
        {{end}}
      </ul>{{end}}
      {{if .Modules}}<h3>Modules</h3>
      <ul>
        {{range .Modules}}<li{{if .Active}} class="active"{{end}}><a href="{{.Link}}">{{.Name}}</a></li>
        {{end}}
      </ul>{{end}}
    </div>
  </nav>
  <main class="content">
    {{.Content}}
    {{if .Snapshot}}<footer class="page-footer">snapshot {{.Snapshot}}</footer>{{end}}
  </main>
</body>
</html>`

// welcomeTemplate is the no-selection pane; it doubles as the error state
// when the document load failed and as the deep-link miss view.
const welcomeTemplate = `{{if .LoadErr}}
<div class="load-error">
  <h1>Documentation unavailable</h1>
  <p>The reference document could not be loaded.</p>
  <pre class="error-detail">{{.LoadErr}}</pre>
</div>
{{else}}
{{if .NotFound}}<p class="inline-notice">{{.NotFound}}</p>{{end}}
<div class="welcome">
  <h1>{{.Site}}</h1>
  <p>Select a class or module from the sidebar to browse its reference.</p>
  <p class="doc-stats">{{.Classes}} classes · {{.Modules}} modules</p>
</div>
{{end}}`

// itemTemplate is the detail pane: item metadata, the in-page outline, and
// the member sections.
const itemTemplate = `<article class="item">
{{if .MemberMissing}}<p class="inline-notice">{{.MemberMissing}}</p>{{end}}
<header class="item-header">
  <span class="kind-badge kind-{{.Kind}}">{{.Kind}}</span>
  <h1>{{.Name}}</h1>
</header>
{{if .Description}}<div class="item-description">{{.Description}}</div>{{end}}
{{if .Remarks}}<section class="item-remarks"><h2>Remarks</h2>{{.Remarks}}</section>{{end}}
{{if .Requires}}<section class="item-requires"><h2>Requirements</h2><ul>{{range .Requires}}<li>{{.}}</li>{{end}}</ul></section>{{end}}
{{if .Examples}}<section class="item-examples"><h2>Examples</h2>{{range .Examples}}{{.}}{{end}}</section>{{end}}
{{if .ShowDev}}
{{if .DevNotes}}<section class="dev-notes"><h2>Developer notes</h2>{{.DevNotes}}</section>{{end}}
{{if .Todo}}<section class="dev-todo"><h2>Todo</h2><ul>{{range .Todo}}<li>{{.}}</li>{{end}}</ul></section>{{end}}
{{end}}
{{if .Outline}}
<aside class="outline">
  <h2>On this page</h2>
  {{range .Outline}}
  <h3>{{.Title}}</h3>
  <ul>
    {{range .Entries}}<li{{if .Highlighted}} class="highlighted"{{end}}><a href="#{{.Anchor}}">{{.Name}}</a></li>
    {{end}}
  </ul>
  {{end}}
</aside>
{{end}}
{{range .Sections}}
<section class="member-section">
  <h2>{{.Title}}</h2>
  {{range .Members}}
  <div class="member{{if .Highlighted}} highlighted{{end}}"{{if .Anchor}} id="{{.Anchor}}"{{end}}>
    <h3 class="member-name">{{.Name}}
      {{if .Static}}<span class="badge">static</span>{{end}}
      {{if .Protected}}<span class="badge badge-protected">protected</span>{{end}}
      {{if .DefaultMember}}<span class="badge">default</span>{{end}}
      {{if .Access}}<span class="badge badge-access">{{.Access}}</span>{{end}}
    </h3>
    {{if .Deprecated}}<p class="deprecation">Deprecated{{if .DeprecationMsg}}: {{.DeprecationMsg}}{{end}}</p>{{end}}
    {{if .Description}}<div class="member-description">{{.Description}}</div>{{end}}
    {{if .Params}}
    <table class="params">
      <thead><tr><th>Parameter</th><th>Type</th><th>Description</th></tr></thead>
      <tbody>
      {{range .Params}}<tr><td>{{.Name}}{{if .Optional}}<span class="optional">optional{{if .Default}}, default {{.Default}}{{end}}</span>{{end}}</td><td><code>{{.Type}}</code></td><td>{{.Description}}</td></tr>
      {{end}}
      </tbody>
    </table>
    {{end}}
    {{with .Returns}}<p class="returns"><strong>Returns</strong> <code>{{.Type}}</code>{{if .Description}} — {{.Description}}{{end}}</p>{{end}}
    {{if .Throws}}
    <div class="throws"><strong>Throws</strong><ul>{{range .Throws}}<li><code>{{.Type}}</code>{{if .Description}} — {{.Description}}{{end}}</li>{{end}}</ul></div>
    {{end}}
    {{if .Examples}}<div class="member-examples">{{range .Examples}}{{.}}{{end}}</div>{{end}}
  </div>
  {{end}}
</section>
{{end}}
</article>`

// cssContent is the stylesheet for the viewer.
const cssContent = `:root {
  --bg: #ffffff;
  --bg-sidebar: #f1f3f5;
  --text: #212529;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --accent-light: #e7f5ff;
  --code-bg: #f1f3f5;
  --highlight: #fff3bf;
  --danger: #e03131;
  --sidebar-width: 260px;
}

*, *::before, *::after {
  box-sizing: border-box;
  margin: 0;
  padding: 0;
}

html { scroll-behavior: smooth; }

body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
  color: var(--text);
  background: var(--bg);
  line-height: 1.65;
  display: flex;
  min-height: 100vh;
}

.sidebar {
  width: var(--sidebar-width);
  background: var(--bg-sidebar);
  border-right: 1px solid var(--border);
  position: fixed;
  top: 0; left: 0; bottom: 0;
  overflow-y: auto;
  padding-bottom: 24px;
}

.sidebar-header {
  padding: 18px 16px 12px;
  border-bottom: 1px solid var(--border);
}

.site-title a {
  color: var(--accent);
  text-decoration: none;
  font-size: 1.1rem;
}

.mode-toggle {
  display: inline-block;
  margin-top: 8px;
  font-size: 0.75rem;
  color: var(--text-muted);
  text-decoration: none;
}
.mode-toggle:hover { color: var(--accent); }

.sidebar-lists h3 {
  font-size: 0.72rem;
  text-transform: uppercase;
  letter-spacing: 0.06em;
  color: var(--text-muted);
  padding: 14px 16px 4px;
}

.sidebar-lists ul { list-style: none; }
.sidebar-lists li a {
  display: block;
  padding: 4px 16px;
  color: var(--text);
  text-decoration: none;
  font-size: 0.9rem;
}
.sidebar-lists li a:hover { background: var(--accent-light); }
.sidebar-lists li.active a {
  background: var(--accent-light);
  color: var(--accent);
  font-weight: 600;
}

.content {
  margin-left: var(--sidebar-width);
  padding: 32px 40px 80px;
  max-width: 920px;
  flex: 1;
}

.welcome h1 { margin-bottom: 12px; }
.doc-stats { color: var(--text-muted); margin-top: 8px; }

.inline-notice {
  background: var(--accent-light);
  border: 1px solid var(--accent);
  border-radius: 6px;
  padding: 10px 14px;
  margin-bottom: 20px;
}

.load-error h1 { color: var(--danger); margin-bottom: 12px; }
.error-detail {
  background: var(--code-bg);
  border-radius: 6px;
  padding: 12px;
  margin-top: 12px;
  overflow-x: auto;
}

.item-header { display: flex; align-items: center; gap: 12px; margin-bottom: 16px; }

.kind-badge {
  font-size: 0.72rem;
  text-transform: uppercase;
  letter-spacing: 0.05em;
  border-radius: 4px;
  padding: 2px 8px;
  background: var(--accent-light);
  color: var(--accent);
}

.item section { margin-top: 28px; }
.item h2 {
  font-size: 1.15rem;
  border-bottom: 1px solid var(--border);
  padding-bottom: 6px;
  margin-bottom: 12px;
}

.outline {
  border: 1px solid var(--border);
  border-radius: 8px;
  padding: 14px 18px;
  margin-top: 24px;
  background: var(--bg-sidebar);
}
.outline h2 { font-size: 0.95rem; border: none; margin-bottom: 4px; }
.outline h3 {
  font-size: 0.72rem;
  text-transform: uppercase;
  color: var(--text-muted);
  margin-top: 8px;
}
.outline ul { list-style: none; }
.outline li a { color: var(--text); text-decoration: none; font-size: 0.88rem; }
.outline li a:hover { color: var(--accent); }
.outline li.highlighted a { color: var(--accent); font-weight: 600; }

.member {
  border: 1px solid var(--border);
  border-radius: 8px;
  padding: 16px 20px;
  margin-bottom: 16px;
}
.member.highlighted {
  background: var(--highlight);
  border-color: var(--accent);
}

.member-name { font-size: 1rem; font-family: ui-monospace, SFMono-Regular, Menlo, monospace; }

.badge {
  font-size: 0.68rem;
  border-radius: 4px;
  padding: 1px 6px;
  margin-left: 6px;
  background: var(--code-bg);
  color: var(--text-muted);
  vertical-align: middle;
}
.badge-protected { background: #fff0f0; color: var(--danger); }
.badge-access { background: var(--accent-light); color: var(--accent); }

.deprecation {
  color: var(--danger);
  font-size: 0.88rem;
  margin-top: 6px;
}

.member-description { margin-top: 8px; }

.params { width: 100%; border-collapse: collapse; margin-top: 12px; font-size: 0.88rem; }
.params th, .params td {
  text-align: left;
  border-bottom: 1px solid var(--border);
  padding: 6px 10px;
}
.optional { color: var(--text-muted); font-size: 0.78rem; margin-left: 6px; }

.returns, .throws { margin-top: 10px; font-size: 0.9rem; }
.throws ul { margin-left: 20px; }

code {
  background: var(--code-bg);
  border-radius: 4px;
  padding: 1px 5px;
  font-family: ui-monospace, SFMono-Regular, Menlo, monospace;
  font-size: 0.85em;
}

pre { margin-top: 10px; border-radius: 6px; overflow-x: auto; }
pre code { background: none; padding: 0; }

.dev-notes, .dev-todo {
  border-left: 3px solid var(--accent);
  padding-left: 14px;
}
.dev-todo ul { margin-left: 20px; }

.page-footer {
  margin-top: 48px;
  color: var(--text-muted);
  font-size: 0.72rem;
}
`
