package dropdown

import (
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"
)

func newHTMLWidget(t *testing.T, fns ...ConfigFn) *Widget[country] {
	t.Helper()
	options := []country{{name: "Germany", dial: "+49"}, {name: "Argentina", dial: "+54"}}
	w, err := New(options, countryAccessors, nil, fns...)
	if err != nil {
		t.Fatalf("new widget: %v", err)
	}
	return w
}

func TestRenderHTML_ClosedControl(t *testing.T) {
	w := newHTMLWidget(t, WithPlaceholder("Pick a country"))

	out, err := w.RenderHTML(HTMLOptions{Name: "country"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(out, `name="country"`) {
		t.Fatalf("missing hidden input name: %s", out)
	}
	if !strings.Contains(out, "Pick a country") {
		t.Fatalf("missing placeholder: %s", out)
	}
	if strings.Contains(out, "af-dropdown__panel") {
		t.Fatalf("closed widget must not render the panel: %s", out)
	}
}

func TestRenderHTML_OpenPanelListsFilteredOptions(t *testing.T) {
	w := newHTMLWidget(t)
	if err := w.Open(); err != nil {
		t.Fatalf("open: %v", err)
	}
	w.SetFilter("ger")

	out, err := w.RenderHTML(HTMLOptions{Name: "country"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(out, "Germany") {
		t.Fatalf("expected Germany row: %s", out)
	}
	if strings.Contains(out, "Argentina") {
		t.Fatalf("Argentina must be filtered out: %s", out)
	}
	if !strings.Contains(out, `value="ger"`) {
		t.Fatalf("filter text must survive the render: %s", out)
	}
}

func TestRenderHTML_NoMatchesRowInsteadOfEmptyList(t *testing.T) {
	w := newHTMLWidget(t)
	if err := w.Open(); err != nil {
		t.Fatalf("open: %v", err)
	}
	w.SetFilter("zzz")

	out, err := w.RenderHTML(HTMLOptions{Name: "country"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "No options found") {
		t.Fatalf("expected explicit no-match row: %s", out)
	}
}

func TestRenderHTML_SanitizesOptionMarkup(t *testing.T) {
	options := []country{{name: "Germany", dial: "+49"}}
	w, err := New(options, Accessors[country]{
		Label: func(c country) string { return c.name },
		Value: func(c country) string { return c.dial },
		Render: func(c country) string {
			return `<span class="flag">` + c.name + `</span><script>alert(1)</script>`
		},
	}, nil)
	if err != nil {
		t.Fatalf("new widget: %v", err)
	}
	if err := w.Open(); err != nil {
		t.Fatalf("open: %v", err)
	}

	out, err := w.RenderHTML(HTMLOptions{Name: "country"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out, "<script>") {
		t.Fatalf("script must be stripped: %s", out)
	}
	if !strings.Contains(out, `<span class="flag">Germany</span>`) {
		t.Fatalf("allowed markup must survive: %s", out)
	}
}

func TestRenderHTML_ErrorMessageAndThemeVars(t *testing.T) {
	w := newHTMLWidget(t, WithErrorMessage("country is required"))

	out, err := w.RenderHTML(HTMLOptions{
		Name: "country",
		Theme: &theme.RendererConfig{
			CSSVars: map[string]string{"--brand": "#e11", "--accent": "#222"},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "country is required") {
		t.Fatalf("missing error message: %s", out)
	}
	if !strings.Contains(out, "--accent: #222; --brand: #e11;") {
		t.Fatalf("missing sorted css vars: %s", out)
	}
}
