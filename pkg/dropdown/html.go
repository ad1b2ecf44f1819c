package dropdown

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"
)

//go:embed templates/dropdown.html.tpl
var templateFS embed.FS

var (
	templateOnce sync.Once
	widgetTpl    *pongo2.Template
	templateErr  error

	markupPolicyOnce sync.Once
	markupPolicy     *bluemonday.Policy
)

// HTMLOptions carries per-render inputs for the HTML surface.
type HTMLOptions struct {
	// Name is the form field name the hidden input carries.
	Name string

	// Theme, when present, contributes CSS custom properties to the root
	// element so the widget picks up the active theme's tokens.
	Theme *theme.RendererConfig
}

// RenderHTML renders the widget in its current state (closed control, or
// open panel with filter box and visible options). Option render markup is
// sanitized; labels and values are escaped by the template engine.
func (w *Widget[T]) RenderHTML(opts HTMLOptions) (string, error) {
	tpl, err := loadWidgetTemplate()
	if err != nil {
		return "", err
	}

	type optionRow struct {
		Value    string
		Markup   string
		Selected bool
	}

	visible := w.Visible()
	rows := make([]optionRow, 0, len(visible))
	for _, option := range visible {
		rows = append(rows, optionRow{
			Value:    w.accessors.Value(option),
			Markup:   sanitizeOptionMarkup(w.accessors.Render(option)),
			Selected: w.accessors.Value(option) == w.value,
		})
	}

	ctx := pongo2.Context{
		"name":          opts.Name,
		"open":          w.open,
		"disabled":      w.config.Disabled,
		"error":         w.config.ErrorMessage,
		"display":       w.DisplayText(),
		"placeholder":   w.config.Placeholder,
		"selected":      w.value,
		"filter":        w.filter,
		"options":       rows,
		"no_matches":    w.open && len(rows) == 0,
		"no_match_text": w.config.NoMatchText,
		"css_vars":      cssVarsStyle(opts.Theme),
	}

	out, err := tpl.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("dropdown: execute template: %w", err)
	}
	return out, nil
}

func loadWidgetTemplate() (*pongo2.Template, error) {
	templateOnce.Do(func() {
		set := pongo2.NewSet("dropdown", pongo2.NewFSLoader(templateFS))
		widgetTpl, templateErr = set.FromFile("templates/dropdown.html.tpl")
		if templateErr != nil {
			templateErr = fmt.Errorf("dropdown: load template: %w", templateErr)
		}
	})
	return widgetTpl, templateErr
}

// sanitizeOptionMarkup strips anything dangerous from caller-provided option
// markup while keeping the inline formatting a rich option row needs.
func sanitizeOptionMarkup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(optionSanitizer().Sanitize(trimmed))
}

func optionSanitizer() *bluemonday.Policy {
	markupPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("span", "em", "strong", "small", "abbr", "b", "i")
		policy.AllowAttrs("class", "title").OnElements("span", "abbr", "small")
		markupPolicy = policy
	})
	return markupPolicy
}

// cssVarsStyle flattens the theme's CSS custom properties into a style
// attribute value, keys sorted for stable output.
func cssVarsStyle(cfg *theme.RendererConfig) string {
	if cfg == nil || len(cfg.CSSVars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(cfg.CSSVars))
	for key := range cfg.CSSVars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(cfg.CSSVars[key])
		b.WriteString("; ")
	}
	return strings.TrimSpace(b.String())
}
