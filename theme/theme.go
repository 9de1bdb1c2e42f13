// Package theme maps generated palettes onto template variables and
// renders them for consumption outside the generator.
package theme

import (
	"fmt"
	"io"
	"io/ioutil"
	"strconv"

	"github.com/flosch/pongo2"

	"github.com/mmuldo/palettegen/palette"
)

// Theme represents a set of template variables derived from a palette.
type Theme map[string]interface{}

// New builds a Theme exposing each palette entry as colorN, merged with any
// caller-provided options.
func New(colors []palette.Color, opts map[string]interface{}) Theme {
	t := make(Theme)

	for i, c := range colors {
		t["color"+strconv.Itoa(i)] = c.Hex()
	}

	for k, v := range opts {
		t[k] = v
	}

	setDefaults(t, len(colors))

	return t
}

// Render executes the template at templatePath against the theme and writes
// the result to outPath.
func (t Theme) Render(templatePath, outPath string) error {
	tpl, e := pongo2.FromFile(templatePath)
	if e != nil {
		return e
	}

	o, e := tpl.Execute(pongo2.Context(t))
	if e != nil {
		return e
	}

	return ioutil.WriteFile(outPath, []byte(o), 0644)
}

// Preview writes truecolor swatch rows for the starting and final palettes.
// It is a one-way handoff: nothing is reported back to the generator.
func Preview(w io.Writer, start, final []palette.Color) {
	row(w, "start", start)
	row(w, "final", final)
}

func row(w io.Writer, label string, colors []palette.Color) {
	fmt.Fprintf(w, "%6s ", label)
	for _, c := range colors {
		fmt.Fprintf(w, "\033[48;2;%d;%d;%dm       \033[0m ", byte(c.R), byte(c.G), byte(c.B))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%6s ", "")
	for _, c := range colors {
		fmt.Fprintf(w, "%s ", c.Hex())
	}
	fmt.Fprintln(w)
}

func setDefaults(t Theme, n int) {
	if _, ok := t["background"]; !ok && n > 0 {
		t["background"] = t["color0"]
	}

	if _, ok := t["foreground"]; !ok && n > 0 {
		t["foreground"] = t["color"+strconv.Itoa(n-1)]
	}

	if _, ok := t["transparency"]; !ok {
		t["transparency"] = 1.0
	}
}
