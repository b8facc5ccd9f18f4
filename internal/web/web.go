// Package web serves the server-rendered views: the admin dashboard,
// the project editor and the public player. The pages keep their state
// client-side and talk to the JSON API under /api.
package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Handler struct {
	tmpl *template.Template
}

func NewHandler() (*Handler, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Handler{tmpl: tmpl}, nil
}

// GET / — login screen and dashboard in one page; the page decides
// which to show based on whether a session token is stored.
func (h *Handler) Dashboard(c *gin.Context) {
	h.render(c, "dashboard.html", nil)
}

// GET /edit/:id — scene editor for one project.
func (h *Handler) Editor(c *gin.Context) {
	h.render(c, "editor.html", gin.H{"ProjectID": c.Param("id")})
}

// GET /p/:slug — public player for a published project.
func (h *Handler) Player(c *gin.Context) {
	h.render(c, "player.html", gin.H{"Slug": c.Param("slug")})
}

func (h *Handler) render(c *gin.Context, name string, data any) {
	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(c.Writer, name, data); err != nil {
		c.String(http.StatusInternalServerError, "template error")
	}
}
