package relsql

import (
	"fmt"
	"strings"

	"github.com/zoobzio/relsql/internal/types"
)

// TryP creates a named value, returning an error if the name is not a
// valid identifier.
func TryP(name string, typ Type) (*NamedValue, error) {
	if !isValidSQLIdentifier(name) {
		return nil, fmt.Errorf("invalid parameter name: %s", name)
	}
	return &types.NamedValue{Name: name, ValueType: typ}, nil
}

// P creates a named value.
func P(name string, typ Type) *NamedValue {
	p, err := TryP(name, typ)
	if err != nil {
		panic(err)
	}
	return p
}

// Lit creates a constant, inferring its type from the Go value.
func Lit(v any) *Constant {
	return types.NewConstant(v)
}

// Null is the NULL constant.
func Null() *Constant {
	return types.NewConstant(nil)
}

// isValidSQLIdentifier checks if a string is a valid SQL identifier.
func isValidSQLIdentifier(s string) bool {
	if s == "" {
		return false
	}

	first := s[0]
	if !((first >= 'a' && first <= 'z') ||
		(first >= 'A' && first <= 'Z') ||
		first == '_') {
		return false
	}

	for i := 1; i < len(s); i++ {
		ch := s[i]
		if !((ch >= 'a' && ch <= 'z') ||
			(ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') ||
			ch == '_') {
			return false
		}
	}

	// Reserved words would be ambiguous as aliases and placeholders.
	switch strings.ToUpper(s) {
	case "SELECT", "FROM", "WHERE", "AND", "OR", "NOT", "NULL", "AS", "ON", "JOIN", "ORDER", "GROUP", "BY", "UNION":
		return false
	}
	return true
}
