package render

import (
	"strings"

	"github.com/zoobzio/relsql/internal/types"
)

// Dialect is the set of hooks that customise rendering for one backend.
// Everything not expressed here (clause order, contexts, dispatch) is
// shared by all dialects.
type Dialect struct {
	// Name appears in error messages.
	Name string

	// AliasPrefix is written between an expression or source and its alias.
	AliasPrefix string

	// NoSource is written in place of FROM when a select has no source.
	// Empty means the FROM clause is omitted.
	NoSource string

	// RowNumberOrder is the ORDER BY used inside ROW_NUMBER() OVER when the
	// select is unordered. Empty renders OVER ().
	RowNumberOrder string

	// LongCount is the function used for 64-bit counts.
	LongCount string

	// NativeBoolean renders boolean literals as TRUE/FALSE and lets boolean
	// values stand as predicates without "<> 0".
	NativeBoolean bool

	// Positional lists one parameter per placeholder occurrence. Parameters
	// are listed in the order the parts are visited, so a Paginate that
	// writes the ORDER BY ahead of the body cannot be positional.
	Positional bool

	// Apply enables CROSS APPLY and OUTER APPLY joins.
	Apply bool

	// WrapDepth is how many indentation levels Paginate nests a paginated
	// select inside its wrapper.
	WrapDepth int

	// DistinctWrapDepth is the extra nesting Paginate adds for a DISTINCT
	// select.
	DistinctWrapDepth int

	// Table and Column name identifiers.
	Table  func(name string) string
	Column func(name string) string

	// Param returns the placeholder for a named value and an optional
	// conversion to apply when the value is bound.
	Param func(v *types.NamedValue) (string, types.Conversion)

	// Literal writes value and reports whether it did.
	Literal func(f *Formatter, value any) bool

	// Member, Method and Binary intercept node shapes and report whether
	// they wrote them.
	Member func(f *Formatter, m *types.MemberAccess) (bool, error)
	Method func(f *Formatter, m *types.MethodCall) (bool, error)
	Binary func(f *Formatter, b *types.Binary) (bool, error)

	// Concat writes string concatenation of parts.
	Concat func(f *Formatter, parts []types.Node) error

	// Paginate writes a select whose window is active.
	Paginate func(f *Formatter, q *Query) error
}

// Standard returns a fresh generic dialect. Backends copy it and override
// what differs.
func Standard() *Dialect {
	return &Dialect{
		Name:        "standard",
		AliasPrefix: "AS ",
		LongCount:   "COUNT",
		Table:       DoubleQuote,
		Column:      DoubleQuote,
		Param:       ColonParam,
		Concat:      PipeConcat,
		Paginate:    RowNumber,
		WrapDepth:   1,

		DistinctWrapDepth: 1,
	}
}

// DoubleQuote quotes each dotted part of name with double quotes.
func DoubleQuote(name string) string {
	return quoteParts(name, `"`, `"`)
}

// Brackets quotes each dotted part of name with square brackets.
// Names that arrive already bracketed are not bracketed twice.
func Brackets(name string) string {
	return quoteParts(name, "[", "]")
}

// Backticks quotes each dotted part of name with backticks.
func Backticks(name string) string {
	return quoteParts(name, "`", "`")
}

// StripBrackets removes square brackets and leaves the name unquoted.
func StripBrackets(name string) string {
	return strings.NewReplacer("[", "", "]", "").Replace(name)
}

// Bare strips square brackets and leaves plain identifier parts unquoted.
// A part that is not a plain identifier is double quoted so it cannot end
// the identifier early.
func Bare(name string) string {
	parts := strings.Split(StripBrackets(name), ".")
	for i, p := range parts {
		if !plainIdentifier(p) {
			parts[i] = `"` + strings.ReplaceAll(p, `"`, `""`) + `"`
		}
	}
	return strings.Join(parts, ".")
}

func plainIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, ch := range s {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z':
		case i > 0 && (ch >= '0' && ch <= '9' || ch == '_' || ch == '$' || ch == '#'):
		default:
			return false
		}
	}
	return true
}

func quoteParts(name, open, closing string) string {
	parts := strings.Split(StripBrackets(name), ".")
	for i, p := range parts {
		parts[i] = open + strings.ReplaceAll(p, closing, closing+closing) + closing
	}
	return strings.Join(parts, ".")
}

// ColonParam renders :name.
func ColonParam(v *types.NamedValue) (string, types.Conversion) {
	return ":" + v.Name, nil
}

// AtParam renders @name.
func AtParam(v *types.NamedValue) (string, types.Conversion) {
	return "@" + v.Name, nil
}

// QuestionParam renders a positional ?.
func QuestionParam(*types.NamedValue) (string, types.Conversion) {
	return "?", nil
}

// PipeConcat joins parts with ||.
func PipeConcat(f *Formatter, parts []types.Node) error {
	return f.join(parts, " || ")
}

// PlusConcat joins parts with +.
func PlusConcat(f *Formatter, parts []types.Node) error {
	return f.join(parts, " + ")
}

// FuncConcat renders CONCAT(part, ...).
func FuncConcat(f *Formatter, parts []types.Node) error {
	f.Write("CONCAT(")
	if err := f.join(parts, ", "); err != nil {
		return err
	}
	f.Write(")")
	return nil
}

func (f *Formatter) join(parts []types.Node, sep string) error {
	for i, p := range parts {
		if i > 0 {
			f.Write(sep)
		}
		if _, err := f.VisitValue(p); err != nil {
			return err
		}
	}
	return nil
}
