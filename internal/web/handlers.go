package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/kapu/skills-catalog-go/internal/domain"
	"github.com/kapu/skills-catalog-go/internal/i18n"
	"github.com/kapu/skills-catalog-go/internal/service"
)

const localeCookie = "lang"

// resolveLocale reads the active locale from the lang query parameter,
// falling back to the cookie. A query-driven switch is persisted in the
// cookie so the toggle survives navigation.
func (s *Server) resolveLocale(w http.ResponseWriter, r *http.Request) i18n.Locale {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		loc := i18n.ParseLocale(lang)
		http.SetCookie(w, &http.Cookie{
			Name:     localeCookie,
			Value:    string(loc),
			Path:     "/",
			HttpOnly: true,
		})
		return loc
	}
	if c, err := r.Cookie(localeCookie); err == nil {
		return i18n.ParseLocale(c.Value)
	}
	return i18n.LocaleEN
}

func criteriaFromQuery(r *http.Request) domain.FilterCriteria {
	q := r.URL.Query()
	return domain.FilterCriteria{
		Text:     q.Get("q"),
		Category: q.Get("category"),
		Source:   q.Get("source"),
		Platform: q.Get("platform"),
	}
}

func pageCacheKey(loc i18n.Locale, c domain.FilterCriteria) string {
	return fmt.Sprintf("catalog:page:%s:%s:%s:%s:%s", loc, c.Text, c.Category, c.Source, c.Platform)
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	loc := s.resolveLocale(w, r)
	criteria := criteriaFromQuery(r)

	key := pageCacheKey(loc, criteria)
	if s.cache != nil {
		if html, ok := s.cache.GetPage(r.Context(), key); ok {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte(html))
			return
		}
	}

	filtered := service.FilterSkills(s.catalog.Skills, criteria, loc)
	view := BuildView(s.catalog, filtered, criteria, loc)

	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "catalog", view); err != nil {
		s.logger.Error("Failed to render catalog page", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if s.cache != nil {
		s.cache.SetPage(r.Context(), key, buf.String())
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleAPISkills(w http.ResponseWriter, r *http.Request) {
	loc := s.resolveLocale(w, r)
	criteria := criteriaFromQuery(r)
	filtered := service.FilterSkills(s.catalog.Skills, criteria, loc)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(map[string]any{
		"count":  len(filtered),
		"skills": filtered,
	}); err != nil {
		s.logger.Error("Failed to encode skill listing", zap.Error(err))
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
