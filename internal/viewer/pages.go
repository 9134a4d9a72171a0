package viewer

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/ksalhi/refview/internal/navigate"
	"github.com/ksalhi/refview/internal/refdoc"
)

// modeCookie stores the sticky dev/user mode preference.
const modeCookie = "refview_mode"

// viewMode resolves the effective view mode: query override, then cookie,
// then the configured default.
func (s *Server) viewMode(r *http.Request) refdoc.ViewMode {
	if q := r.URL.Query().Get("mode"); q != "" {
		return refdoc.ParseViewMode(q)
	}
	if c, err := r.Cookie(modeCookie); err == nil {
		return refdoc.ParseViewMode(c.Value)
	}
	return s.cfg.DefaultMode
}

// handleHome serves the welcome view, or resolves a deep link when the q
// parameter is present (ItemName or ItemName.MemberName).
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	mode := s.viewMode(r)
	if s.doc == nil {
		s.renderLoadError(w, r, mode)
		return
	}

	q := r.URL.Query().Get("q")
	if q == "" {
		s.renderWelcome(w, r, http.StatusOK, mode, "")
		return
	}

	cur, err := s.nav.Resolve(q)
	switch {
	case err == nil:
		s.renderItem(w, r, mode, cur, "")
	case errors.Is(err, navigate.ErrMemberNotFound):
		_, member := navigate.SplitDeepLink(q)
		msg := fmt.Sprintf("No member named %q in %s.", member, cur.Item)
		s.renderItem(w, r, mode, cur, msg)
	default:
		item, _ := navigate.SplitDeepLink(q)
		s.renderWelcome(w, r, http.StatusOK, mode, fmt.Sprintf("Nothing named %q in this reference.", item))
	}
}

// handleItem serves the detail page for one item. The hl query parameter
// highlights a member.
func (s *Server) handleItem(w http.ResponseWriter, r *http.Request) {
	mode := s.viewMode(r)
	if s.doc == nil {
		s.renderLoadError(w, r, mode)
		return
	}

	name := chi.URLParam(r, "name")
	item, ok := s.nav.Lookup(name)
	if !ok {
		s.renderWelcome(w, r, http.StatusNotFound, mode, fmt.Sprintf("Nothing named %q in this reference.", name))
		return
	}

	cur := navigate.Cursor{Kind: item.ItemKind(), Item: item.ItemName()}
	missing := ""
	if hl := r.URL.Query().Get("hl"); hl != "" {
		if _, ok := item.Member(hl); ok {
			cur.Member = hl
		} else {
			missing = fmt.Sprintf("No member named %q in %s.", hl, item.ItemName())
		}
	}
	s.renderItem(w, r, mode, cur, missing)
}

// handleMode pins the view mode in a cookie and redirects back.
func (s *Server) handleMode(w http.ResponseWriter, r *http.Request) {
	mode := refdoc.ParseViewMode(chi.URLParam(r, "mode"))
	http.SetCookie(w, &http.Cookie{
		Name:     modeCookie,
		Value:    string(mode),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	back := r.URL.Query().Get("back")
	if back == "" || back[0] != '/' {
		back = "/"
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}

func (s *Server) handleCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(cssContent))
}

func (s *Server) renderWelcome(w http.ResponseWriter, r *http.Request, status int, mode refdoc.ViewMode, notFound string) {
	view := welcomeView{
		Site:     s.cfg.Title,
		Classes:  len(s.doc.Classes),
		Modules:  len(s.doc.Modules),
		NotFound: notFound,
	}
	content, err := s.tmpl.welcome(view)
	if err != nil {
		s.renderFailure(w, err)
		return
	}
	s.renderPage(w, r, status, s.cfg.Title, mode, navigate.Cursor{}, content)
}

func (s *Server) renderItem(w http.ResponseWriter, r *http.Request, mode refdoc.ViewMode, cur navigate.Cursor, missing string) {
	item, ok := s.nav.Lookup(cur.Item)
	if !ok {
		s.renderWelcome(w, r, http.StatusNotFound, mode, fmt.Sprintf("Nothing named %q in this reference.", cur.Item))
		return
	}

	view := buildItemView(item, mode, cur.Member)
	view.MemberMissing = missing
	content, err := s.tmpl.item(view)
	if err != nil {
		s.renderFailure(w, err)
		return
	}
	s.renderPage(w, r, http.StatusOK, cur.Item+" — "+s.cfg.Title, mode, cur, content)
}

// renderLoadError serves the single error state shown when the startup
// document load failed. One attempt, fail closed; no retry affordance.
func (s *Server) renderLoadError(w http.ResponseWriter, r *http.Request, mode refdoc.ViewMode) {
	view := welcomeView{
		Site:    s.cfg.Title,
		LoadErr: s.loadErr.Error(),
	}
	content, err := s.tmpl.welcome(view)
	if err != nil {
		s.renderFailure(w, err)
		return
	}
	s.renderPage(w, r, http.StatusServiceUnavailable, s.cfg.Title, mode, navigate.Cursor{}, content)
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, title string, mode refdoc.ViewMode, active navigate.Cursor, content template.HTML) {
	data := pageData{
		Title:      title,
		Site:       s.cfg.Title,
		Mode:       mode,
		DevMode:    mode == refdoc.ModeDev,
		Content:    content,
		ModeToggle: modeToggleLink(mode, r.URL),
	}
	if s.doc != nil {
		classes, modules := s.nav.Sidebar()
		for _, name := range classes {
			data.Classes = append(data.Classes, sidebarEntry{
				Name:   name,
				Link:   "/item/" + url.PathEscape(name),
				Active: active.Kind == refdoc.KindClass && active.Item == name,
			})
		}
		for _, name := range modules {
			data.Modules = append(data.Modules, sidebarEntry{
				Name:   name,
				Link:   "/item/" + url.PathEscape(name),
				Active: active.Kind == refdoc.KindModule && active.Item == name,
			})
		}
		data.Snapshot = s.doc.SnapshotID
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmpl.renderPage(w, data); err != nil {
		s.logger.Error("rendering page", "err", err)
	}
}

// renderFailure is the last-resort path for template errors.
func (s *Server) renderFailure(w http.ResponseWriter, err error) {
	s.logger.Error("rendering view", "err", err)
	http.Error(w, "internal render error", http.StatusInternalServerError)
}

// modeToggleLink builds the /mode/... link flipping the current view mode,
// returning to the current page.
func modeToggleLink(mode refdoc.ViewMode, current *url.URL) string {
	target := refdoc.ModeDev
	if mode == refdoc.ModeDev {
		target = refdoc.ModeUser
	}
	return "/mode/" + string(target) + "?back=" + url.QueryEscape(current.RequestURI())
}
