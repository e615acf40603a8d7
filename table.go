package relsql

import (
	"fmt"

	"github.com/zoobzio/relsql/internal/types"
)

// TryT creates a table source with a fresh alias. An optional alias name
// must be a valid identifier and is rendered as given.
func TryT(name string, alias ...string) (*Table, error) {
	if name == "" {
		return nil, fmt.Errorf("table name cannot be empty")
	}
	a, err := aliasFor(alias)
	if err != nil {
		return nil, err
	}
	return &types.Table{Name: name, Alias: a}, nil
}

// T creates a table source, panicking on an invalid alias.
func T(name string, alias ...string) *Table {
	t, err := TryT(name, alias...)
	if err != nil {
		panic(err)
	}
	return t
}

func aliasFor(alias []string) (*Alias, error) {
	switch len(alias) {
	case 0:
		return types.NewAlias(), nil
	case 1:
		if !isValidSQLIdentifier(alias[0]) {
			return nil, fmt.Errorf("invalid alias: %q", alias[0])
		}
		return types.NamedAlias(alias[0]), nil
	}
	return nil, fmt.Errorf("only one alias allowed")
}

// JoinOn joins left to right with the given join type. on is nil for
// cross joins and APPLY.
func JoinOn(kind JoinType, left, right, on Node) *Join {
	return &types.Join{JoinType: kind, Left: left, Right: right, Condition: on}
}

// InnerJoinOn returns left INNER JOIN right ON on.
func InnerJoinOn(left, right, on Node) *Join { return JoinOn(InnerJoin, left, right, on) }

// LeftJoinOn returns left LEFT OUTER JOIN right ON on.
func LeftJoinOn(left, right, on Node) *Join { return JoinOn(LeftOuterJoin, left, right, on) }

// RightJoinOn returns left RIGHT OUTER JOIN right ON on.
func RightJoinOn(left, right, on Node) *Join { return JoinOn(RightOuterJoin, left, right, on) }

// CrossJoinOf returns left CROSS JOIN right.
func CrossJoinOf(left, right Node) *Join { return JoinOn(CrossJoin, left, right, nil) }

// Apply returns left CROSS APPLY right, or OUTER APPLY when outer is set.
// Only dialects with lateral support render it.
func Apply(left Node, right *Select, outer bool) *Join {
	if outer {
		return JoinOn(OuterApply, left, right, nil)
	}
	return JoinOn(CrossApply, left, right, nil)
}
