package web

import (
	"embed"
	"errors"
	"html/template"
	"strings"

	"github.com/BruksfildServices01/lily-salon/internal/domain/appointment"
	"github.com/BruksfildServices01/lily-salon/internal/dto"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"dict": dict,
	"money": func(m dto.Money) string {
		return "$" + m.String()
	},
	"longDate": func(d dto.Date) string {
		if d.IsZero() {
			return ""
		}
		return d.Time().Format("Mon, Jan 2, 2006")
	},
	"statusClass": func(s dto.Status) string {
		return "status-" + string(s)
	},
	"toggleLabel": appointment.ToggleLabel,
	"serviceNames": func(list []dto.Service) string {
		names := make([]string, 0, len(list))
		for _, s := range list {
			names = append(names, s.ServiceName)
		}
		return strings.Join(names, ", ")
	},
}

// dict builds the argument map of a partial from key/value pairs.
func dict(kv ...any) (map[string]any, error) {
	if len(kv)%2 != 0 {
		return nil, errors.New("dict needs key/value pairs")
	}
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			return nil, errors.New("dict keys must be strings")
		}
		m[key] = kv[i+1]
	}
	return m, nil
}

// Templates parses the console pages. Every page renders through "base".
func Templates() *template.Template {
	return template.Must(
		template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"),
	)
}
