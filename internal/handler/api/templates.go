package api

import (
	"embed"
	"html/template"
	"strconv"

	"ChainPulse/internal/services/report"
)

//go:embed templates/*.html
var templateFS embed.FS

var dashboardTemplate = template.Must(
	template.New("dashboard.html").
		Funcs(template.FuncMap{
			"num":      func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
			"billions": report.FormatBillions,
		}).
		ParseFS(templateFS, "templates/dashboard.html"),
)
