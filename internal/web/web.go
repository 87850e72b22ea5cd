// Package web holds the HTML templates of the phone-frame UI.
package web

import (
	"embed"
	"html/template"
	"time"
)

//go:embed templates/*.html
var files embed.FS

// FuncMap is available in every template.
var FuncMap = template.FuncMap{
	"date":  func(t time.Time) string { return t.Format("Mon, Jan 2, 2006") },
	"clock": func(t time.Time) string { return t.Format("15:04") },
	"day":   func(t time.Time) int { return t.Day() },
	"stamp": func(t time.Time) string { return t.Format("Jan 2 15:04:05") },
	"sameDay": func(a, b time.Time) bool {
		return a.Year() == b.Year() && a.YearDay() == b.YearDay()
	},
}

// Templates parses the embedded templates. The entry point is "index.html".
func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap).ParseFS(files, "templates/*.html")
}
