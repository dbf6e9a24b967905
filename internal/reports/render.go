package reports

import (
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// formatAmount renders an amount with grouped thousands and two
// decimals.
func formatAmount(d decimal.Decimal) string {
	f, _ := d.Float64()
	return printer.Sprintf("%.2f", f)
}

// formatDate accepts both time.Time and *time.Time because the last
// checked timestamp of an account is optional.
func formatDate(t any) string {
	switch v := t.(type) {
	case time.Time:
		return v.Format("02/01/2006")
	case *time.Time:
		if v == nil {
			return ""
		}
		return v.Format("02/01/2006")
	}

	return ""
}

var templateFuncs = map[string]any{
	"amount": formatAmount,
	"date":   formatDate,
}

const textTemplate = `Your bank report of {{ date .Date }} ({{ .Frequency }}):

Account balances:
{{ range .Accounts }}  * {{ .Account.Number }} ({{ .Account.Title }}): {{ amount .Balance }}{{ if .Account.LastChecked }} (last checked {{ date .Account.LastChecked }}){{ end }}
{{ end }}
{{- if .HasOperations }}
New operations:
{{ range .Accounts }}{{ if .Operations }}Account {{ .Account.Number }}:
{{ range .Operations }}  * {{ .Title }}: {{ amount .Amount }} ({{ date .Date }})
{{ end }}{{ end }}{{ end }}
{{- else }}
No new operations were imported during this period.
{{ end }}`

const htmlTemplate = `<html>
<body>
<p>Your bank report of {{ date .Date }} ({{ .Frequency }}):</p>
<h3>Account balances</h3>
<ul>
{{ range .Accounts }}<li>{{ .Account.Number }} ({{ .Account.Title }}): <strong>{{ amount .Balance }}</strong>{{ if .Account.LastChecked }} <em>(last checked {{ date .Account.LastChecked }})</em>{{ end }}</li>
{{ end }}</ul>
{{ if .HasOperations }}<h3>New operations</h3>
{{ range .Accounts }}{{ if .Operations }}<h4>Account {{ .Account.Number }}</h4>
<ul>
{{ range .Operations }}<li>{{ .Title }}: {{ amount .Amount }} ({{ date .Date }})</li>
{{ end }}</ul>
{{ end }}{{ end }}{{ else }}<p>No new operations were imported during this period.</p>
{{ end }}</body>
</html>`

var (
	textReport = texttemplate.Must(texttemplate.New("report").Funcs(templateFuncs).Parse(textTemplate))
	htmlReport = template.Must(template.New("report").Funcs(template.FuncMap(templateFuncs)).Parse(htmlTemplate))
)

// HasOperations reports whether any account has in-window operations.
func (p Payload) HasOperations() bool {
	for _, account := range p.Accounts {
		if len(account.Operations) > 0 {
			return true
		}
	}

	return false
}

// Render builds the mail subject and both bodies for a report payload.
func Render(p Payload) (subject, text, html string, err error) {
	subject = fmt.Sprintf("[bankwatch] %s report", p.Frequency)

	var textBuilder strings.Builder
	if err := textReport.Execute(&textBuilder, p); err != nil {
		return "", "", "", fmt.Errorf("rendering text report: %w", err)
	}

	var htmlBuilder strings.Builder
	if err := htmlReport.Execute(&htmlBuilder, p); err != nil {
		return "", "", "", fmt.Errorf("rendering html report: %w", err)
	}

	return subject, textBuilder.String(), htmlBuilder.String(), nil
}
