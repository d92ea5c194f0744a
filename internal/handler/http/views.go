package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/MKhiriev/go-sign-gate/internal/logger"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// Page template names.
const (
	homePage   = "home.html"
	signInPage = "signin.html"
	signUpPage = "signup.html"
)

// pageData is the model every page template is executed with.
type pageData struct {
	Title    string
	Username string
	Error    string
	Success  string
}

var pageTitles = map[string]string{
	homePage:   "Home",
	signInPage: "Sign in",
	signUpPage: "Sign up",
}

// render executes the named page into a buffer and writes it with status.
// A template failure is answered with 500 before anything reaches the client.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, status int, data pageData) {
	log := logger.FromRequest(r)

	if data.Title == "" {
		data.Title = pageTitles[name]
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		log.Err(err).Str("template", name).Msg("error rendering page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Err(err).Str("template", name).Msg("error writing page")
	}
}
