package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// markup writes HTML to w and keeps the first write error so component
// bodies read top to bottom without error plumbing on every line.
type markup struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newMarkup(ctx context.Context, w io.Writer) *markup {
	return &markup{ctx: ctx, w: w}
}

// raw writes trusted markup verbatim.
func (m *markup) raw(parts ...string) {
	for _, part := range parts {
		if m.err != nil {
			return
		}
		_, m.err = io.WriteString(m.w, part)
	}
}

// text writes escaped text content.
func (m *markup) text(value string) {
	m.raw(templ.EscapeString(value))
}

// attr writes ` name="value"` with the value escaped.
func (m *markup) attr(name, value string) {
	m.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// url writes ` name="value"` after URL sanitization.
func (m *markup) url(name, value string) {
	m.attr(name, string(templ.URL(value)))
}

// flag writes a boolean attribute when on.
func (m *markup) flag(name string, on bool) {
	if on {
		m.raw(" ", name)
	}
}

// classes writes a class attribute joining every non-empty class.
func (m *markup) classes(values ...string) {
	joined := ""
	for _, v := range values {
		if v == "" {
			continue
		}
		if joined != "" {
			joined += " "
		}
		joined += v
	}
	if joined != "" {
		m.attr("class", joined)
	}
}

// elem writes <tag class="...">escaped text</tag>.
func (m *markup) elem(tag, class, value string) {
	m.raw("<", tag)
	m.classes(class)
	m.raw(">")
	m.text(value)
	m.raw("</", tag, ">")
}

// component renders c inline.
func (m *markup) component(c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(m.ctx, m.w)
}

// children renders the children attached with templ.WithChildren.
func (m *markup) children() {
	m.component(templ.GetChildren(m.ctx))
}

// hidden writes a hidden form input.
func (m *markup) hidden(name, value string) {
	m.raw(`<input type="hidden"`)
	m.attr("name", name)
	m.attr("value", value)
	m.raw(">")
}

// field describes one labelled form control.
type field struct {
	Name        string
	Label       string
	Type        string
	Value       string
	Placeholder string
	Error       string
	Required    bool
	Min         string
	Max         string
	Step        string
	Rows        int
	Options     []option
	Extra       string
}

// option is one entry of a select control.
type option struct {
	Value    string
	Label    string
	Selected bool
}

// input writes a labelled input, textarea or select with its inline error.
func (m *markup) input(f field) {
	id := "field-" + f.Name
	m.raw(`<div class="field`)
	if f.Error != "" {
		m.raw(" field-invalid")
	}
	m.raw(`"><label`)
	m.attr("for", id)
	m.raw(">")
	m.text(f.Label)
	m.raw("</label>")
	switch {
	case len(f.Options) > 0:
		m.raw("<select")
		m.attr("id", id)
		m.attr("name", f.Name)
		m.flag("required", f.Required)
		m.raw(">")
		for _, opt := range f.Options {
			m.raw("<option")
			m.attr("value", opt.Value)
			m.flag("selected", opt.Selected)
			m.raw(">")
			m.text(opt.Label)
			m.raw("</option>")
		}
		m.raw("</select>")
	case f.Type == "textarea":
		rows := f.Rows
		if rows <= 0 {
			rows = 3
		}
		m.raw("<textarea")
		m.attr("id", id)
		m.attr("name", f.Name)
		m.attr("rows", strconv.Itoa(rows))
		if f.Placeholder != "" {
			m.attr("placeholder", f.Placeholder)
		}
		m.flag("required", f.Required)
		m.raw(">")
		m.text(f.Value)
		m.raw("</textarea>")
	default:
		kind := f.Type
		if kind == "" {
			kind = "text"
		}
		m.raw("<input")
		m.attr("id", id)
		m.attr("type", kind)
		m.attr("name", f.Name)
		if kind != "password" && kind != "file" {
			m.attr("value", f.Value)
		}
		if f.Placeholder != "" {
			m.attr("placeholder", f.Placeholder)
		}
		for _, pair := range [][2]string{{"min", f.Min}, {"max", f.Max}, {"step", f.Step}, {"accept", f.Extra}} {
			if pair[1] != "" {
				m.attr(pair[0], pair[1])
			}
		}
		m.flag("required", f.Required)
		m.raw(">")
	}
	if f.Error != "" {
		m.raw(`<p class="field-error" role="alert">`)
		m.text(f.Error)
		m.raw("</p>")
	}
	m.raw("</div>")
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// component builds a templ component from a markup body.
func component(body func(m *markup)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		body(m)
		return m.err
	})
}
