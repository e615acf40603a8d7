// Package render compiles relational expression trees into SQL text.
//
// A Formatter walks one tree depth first and writes into its own buffer.
// Backend differences are supplied by a Dialect, a record of hook
// functions. Formatters are single use and never shared, so independent
// trees can be rendered concurrently.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zoobzio/relsql/internal/types"
)

const indentSize = 2

// Indentation controls how NewLine adjusts the indentation depth.
type Indentation int

const (
	Same Indentation = iota
	Inner
	Outer
)

// Formatter holds the state of a single render call.
type Formatter struct {
	dialect    *Dialect
	out        *strings.Builder
	aliases    map[*types.Alias]string
	paramIndex map[string]int
	params     []types.Param
	depth      int
	nextAlias  int
}

func newFormatter(d *Dialect) *Formatter {
	return &Formatter{
		dialect:    d,
		out:        &strings.Builder{},
		aliases:    make(map[*types.Alias]string),
		paramIndex: make(map[string]int),
	}
}

// Render formats node with a fresh formatter for d.
func Render(d *Dialect, node types.Node) (*types.QueryResult, error) {
	if d == nil {
		return nil, errors.New("render: nil dialect")
	}
	f := newFormatter(d)
	if _, err := f.Visit(node); err != nil {
		return nil, err
	}
	return &types.QueryResult{
		SQL:        f.out.String(),
		Params:     f.params,
		Positional: d.Positional,
	}, nil
}

// Dialect returns the active dialect.
func (f *Formatter) Dialect() *Dialect { return f.dialect }

// Write appends s to the output.
func (f *Formatter) Write(s string) { f.out.WriteString(s) }

// Writef appends a formatted string to the output.
func (f *Formatter) Writef(format string, args ...any) {
	fmt.Fprintf(f.out, format, args...)
}

// NewLine starts a new line after adjusting the indentation by style.
func (f *Formatter) NewLine(style Indentation) {
	f.Indent(style)
	f.Write(f.Break())
}

// Indent adjusts the indentation depth without writing.
func (f *Formatter) Indent(style Indentation) {
	switch style {
	case Inner:
		f.depth++
	case Outer:
		if f.depth > 0 {
			f.depth--
		}
	}
}

// Break returns a line break followed by the current indentation.
func (f *Formatter) Break() string {
	return "\n" + strings.Repeat(" ", f.depth*indentSize)
}

// Capture runs fn with a scratch buffer and returns what it wrote.
func (f *Formatter) Capture(fn func() error) (string, error) {
	saved := f.out
	f.out = &strings.Builder{}
	err := fn()
	s := f.out.String()
	f.out = saved
	return s, err
}

// AliasName returns the rendered name of a.
func (f *Formatter) AliasName(a *types.Alias) string {
	if a == nil {
		return ""
	}
	if name := a.Name(); name != "" {
		return name
	}
	if name, ok := f.aliases[a]; ok {
		return name
	}
	name := fmt.Sprintf("t%d", f.nextAlias)
	f.nextAlias++
	f.aliases[a] = name
	return name
}

// WriteParam writes the placeholder for v and records it. conv, when not
// nil, takes precedence over any conversion the dialect attaches.
func (f *Formatter) WriteParam(v *types.NamedValue, conv types.Conversion) {
	placeholder, dialectConv := f.dialect.Param(v)
	if conv == nil {
		conv = dialectConv
	}
	f.Write(placeholder)

	if f.dialect.Positional {
		f.params = append(f.params, types.Param{Name: v.Name, Type: v.ValueType, Conversion: conv})
		return
	}
	if i, ok := f.paramIndex[v.Name]; ok {
		if f.params[i].Conversion == nil {
			f.params[i].Conversion = conv
		}
		return
	}
	f.paramIndex[v.Name] = len(f.params)
	f.params = append(f.params, types.Param{Name: v.Name, Type: v.ValueType, Conversion: conv})
}

// Emit writes strings verbatim and visits nodes in value context.
func (f *Formatter) Emit(parts ...any) error {
	for _, p := range parts {
		switch v := p.(type) {
		case string:
			f.Write(v)
		case types.Node:
			if _, err := f.VisitValue(v); err != nil {
				return err
			}
		default:
			return fmt.Errorf("render: cannot emit %T", p)
		}
	}
	return nil
}

// Unsupported builds an UnsupportedError for the active dialect.
func (f *Formatter) Unsupported(construct, name string, hint ...string) error {
	return NewUnsupportedError(f.dialect.Name, construct, name, hint...)
}
