package server

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kintreeapp/kintree/pkg/errors"
	"github.com/kintreeapp/kintree/pkg/pipeline"
)

var treePage = template.Must(template.New("tree").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { margin: 0; font-family: system-ui, sans-serif; background: #f4f1ea; }
main { max-width: 960px; margin: 2rem auto; padding: 0 1rem; }
</style>
</head>
<body>
<main>
{{.SVG}}
</main>
</body>
</html>
`))

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// handleTreePage serves an HTML page with the interactive SVG inlined so
// the card links and keyboard activation work without extra assets.
func (s *Server) handleTreePage(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "personID")
	result, err := s.execute(r, personID, pipeline.FormatSVG, true)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	title := "Family tree"
	if name := result.Set.Selected.DisplayName(); name != "" {
		title = fmt.Sprintf("Family tree of %s", name)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = treePage.Execute(w, struct {
		Title string
		SVG   template.HTML
	}{
		Title: title,
		// The SVG is produced by our renderer with all person data
		// XML-escaped, so inlining it unescaped is safe.
		SVG: template.HTML(result.Artifacts[pipeline.FormatSVG]),
	})
	if err != nil {
		s.logger.Error("render tree page", "person", personID, "err", err)
	}
}

func (s *Server) handleTreeSVG(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "personID")
	result, err := s.execute(r, personID, pipeline.FormatSVG, false)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(result.Artifacts[pipeline.FormatSVG])
}

func (s *Server) handleTreeJSON(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "personID")
	result, err := s.execute(r, personID, pipeline.FormatJSON, false)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(result.Artifacts[pipeline.FormatJSON])
}

func (s *Server) handlePedigreeDOT(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "personID")
	result, err := s.execute(r, personID, pipeline.FormatDOT, false)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/vnd.graphviz")
	_, _ = w.Write(result.Artifacts[pipeline.FormatDOT])
}

// execute runs the pipeline for one request. Interactive renders get card
// hrefs back into this server's routes.
func (s *Server) execute(r *http.Request, personID, format string, interactive bool) (*pipeline.Result, error) {
	opts := pipeline.Options{
		PersonID:   personID,
		OwnTree:    s.ownTree,
		FrameWidth: s.frameWidth,
		Formats:    []string{format},
		Style:      s.style,
		Refresh:    r.URL.Query().Get("refresh") == "1",
		Detailed:   r.URL.Query().Get("detailed") == "1",
		Logger:     s.logger,
	}
	if interactive {
		opts.HrefBase = "/tree/"
		opts.AddHref = "/people/new"
		opts.Interactive = true
	}
	return s.runner.Execute(r.Context(), opts)
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := statusFor(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
	} else {
		s.logger.Debug("request rejected", "path", r.URL.Path, "code", code)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Error: errorBody{Code: string(code), Message: errors.UserMessage(err)},
	})
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodePersonNotFound, errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidPerson, errors.ErrCodeInvalidRelationships,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidStyle, errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case errors.ErrCodeFetchFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
