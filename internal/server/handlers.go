package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/localize"
	"github.com/dmitrymomot/localize/pkg/i18n"
	"github.com/dmitrymomot/localize/pkg/locale"
)

// TranslateResponse is the JSON form of GET /translate.
type TranslateResponse struct {
	Count *int   `json:"count,omitempty"`
	Key   string `json:"key"`
	Text  string `json:"text"`
}

// SetLocaleRequest is the body of PUT /locale.
type SetLocaleRequest struct {
	Locale string `json:"locale"`
	Scope  string `json:"scope"`
	Reload bool   `json:"reload"`
}

// LocalesResponse is the body of GET /locales.
type LocalesResponse struct {
	Active  string   `json:"active"`
	Locales []string `json:"locales"`
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	key := q.Get("key")
	if key == "" {
		writeError(w, http.StatusBadRequest, ErrMissingKey)
		return
	}

	params := make([]i18n.Param, 0, len(q["p"]))
	for _, raw := range q["p"] {
		name, value, ok := strings.Cut(raw, ":")
		if !ok || name == "" {
			writeError(w, http.StatusBadRequest, ErrInvalidParam)
			return
		}
		params = append(params, i18n.P(name, value))
	}

	resp := TranslateResponse{Key: key}
	if raw := q.Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, ErrInvalidCount)
			return
		}
		resp.Count = &n
		resp.Text = s.svc.TranslateCount(key, n, params...)
	} else {
		resp.Text = s.svc.Translate(key, params...)
	}

	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, resp)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, resp.Text)
}

func (s *Server) handleGetLocale(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Resolution())
}

func (s *Server) handleSetLocale(w http.ResponseWriter, r *http.Request) {
	var req SetLocaleRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, ErrInvalidBody)
			return
		}
	}

	tag := strings.TrimSpace(req.Locale)
	if tag == "" {
		var ok bool
		if tag, ok = s.extractor.Extract(r); !ok {
			writeError(w, http.StatusBadRequest, ErrNoLocale)
			return
		}
	}

	if err := s.svc.SetLocale(tag, req.Reload, req.Scope); err != nil {
		s.logger.WarnContext(r.Context(), "locale switch failed",
			slog.String("locale", tag),
			slog.String("error", err.Error()),
		)
		writeError(w, statusFor(err), err)
		return
	}

	s.logger.InfoContext(r.Context(), "locale switched",
		slog.String("locale", tag),
		slog.Bool("reload", req.Reload),
	)
	writeJSON(w, http.StatusOK, s.svc.Resolution())
}

func (s *Server) handleLocales(w http.ResponseWriter, r *http.Request) {
	available, err := s.svc.Available()
	if err != nil {
		s.logger.ErrorContext(r.Context(), "listing locales failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, ErrInternal)
		return
	}

	resp := LocalesResponse{
		Active:  s.svc.Resolution().Folder,
		Locales: make([]string, 0, len(available)),
	}
	for _, l := range available {
		resp.Locales = append(resp.Locales, l.Tag())
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	scope := scopeParam(r)
	if err := s.svc.Load(scope); err != nil {
		s.logger.WarnContext(r.Context(), "scope load failed",
			slog.String("scope", scope),
			slog.String("error", err.Error()),
		)
		writeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUnload(w http.ResponseWriter, r *http.Request) {
	s.svc.Unload(scopeParam(r))
	w.WriteHeader(http.StatusNoContent)
}

func scopeParam(r *http.Request) string {
	scope := chi.URLParam(r, "scope")
	if scope == RootScope {
		return ""
	}
	return scope
}

// statusFor maps service errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, locale.ErrLanguageFolderNotFound):
		return http.StatusNotFound
	case errors.Is(err, localize.ErrInvalidFile):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func wantsJSON(r *http.Request) bool {
	return r.URL.Query().Get("format") == "json" ||
		strings.Contains(r.Header.Get("Accept"), "application/json")
}
