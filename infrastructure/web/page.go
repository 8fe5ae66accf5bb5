package web

import (
	"embed"
	"html/template"
	"net/http"
)

//go:embed panel.html
var templatesFS embed.FS

var panelTemplate = template.Must(template.ParseFS(templatesFS, "panel.html"))

func (s *Server) page(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := panelTemplate.Execute(w, s.panel.View()); err != nil {
		s.log.Error("Unable to render panel page", "error", err)
	}
}
