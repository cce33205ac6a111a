package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Templates разбирает встроенные HTML-шаблоны интерфейса
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// StaticHandler отдает встроенные статические ресурсы под /static/
func StaticHandler() (http.Handler, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub))), nil
}
