package legacy

import "html/template"

var messageTemplate = template.Must(template.New("message").Parse(
	`<html><body>{{.}}</body></html>`))

var pageTemplate = template.Must(template.New("page").Parse(`<html>
<head>
<title>{{.Title}}</title>
<style>
body { font-family: 'Segoe UI', Arial, sans-serif; margin: 0; padding: 20px; background: #eef2f7; }
.container { max-width: {{.Width}}px; margin: 0 auto; padding: 20px; background: #fff; border-radius: 10px; }
h2 { color: #2c3e50; text-align: center; text-transform: uppercase; }
table { width: 100%; border-collapse: collapse; }
th, td { padding: 15px 20px; text-align: left; border-bottom: 1px solid #e0e0e0; }
th { background: {{.Accent}}; color: #fff; text-transform: uppercase; }
.fallback { text-align: center; padding: 10px; color: #e74c3c; }
</style>
</head>
<body>
<div class="container">
<h2>{{.Heading}}</h2>
<table>
<tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
{{- range .Rows}}
<tr class="table-row">{{range .}}<td>{{.}}</td>{{end}}</tr>
{{- else}}
<tr><td colspan="{{len .Columns}}" class="fallback">{{.Fallback}}</td></tr>
{{- end}}
</table>
</div>
</body>
</html>`))

type page struct {
	Title    string
	Heading  string
	Width    int
	Accent   template.CSS
	Columns  []string
	Rows     [][]string
	Fallback string
}
