package handlers

import (
	"embed"
	"html/template"
	"time"

	"github.com/SscSPs/fxcalc/internal/core/domain"
	"github.com/SscSPs/fxcalc/internal/utils"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var templateFuncs = template.FuncMap{
	"formatResult": utils.FormatResult,
	"formatTime": func(t time.Time) string {
		return t.UTC().Format("2006-01-02 15:04:05")
	},
	"isUSDPerUnit": func(e domain.RateEntry) bool {
		return e.Orientation == domain.OrientationUSDPerUnit
	},
}

// loadTemplates parses the embedded pages into r.
func loadTemplates(r *gin.Engine) {
	tmpl := template.Must(template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.tmpl"))
	r.SetHTMLTemplate(tmpl)
}

// page is the data shared by every HTML page.
func page(title string, table domain.RateTable, extra gin.H) gin.H {
	data := gin.H{
		"Title":    title,
		"Fallback": table.IsFallback(),
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}
