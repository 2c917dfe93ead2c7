package handlers

import (
	"html/template"
	"net/http"

	"github.com/gorilla/csrf"
)

const templatesDir = "web/templates"

// render parses the layout plus page files and executes their shared
// "base" template. Templates are parsed per request, so edits show up
// without a restart.
func render(w http.ResponseWriter, r *http.Request, data map[string]any, files ...string) {
	if data == nil {
		data = map[string]any{}
	}
	data["CSRFField"] = csrf.TemplateField(r)

	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, templatesDir+"/"+f)
	}
	t, err := template.ParseFiles(paths...)
	if err != nil {
		http.Error(w, "Erreur de template", http.StatusInternalServerError)
		return
	}
	_ = t.ExecuteTemplate(w, "base", data)
}
