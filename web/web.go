// Package web содержит HTML-шаблоны мини-приложения, встроенные в бинарник.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates/*.html
var templates embed.FS

// Engine создаёт движок шаблонов fiber поверх встроенных файлов
func Engine() *html.Engine {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		panic(err)
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}
