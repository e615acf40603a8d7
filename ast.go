package relsql

import "github.com/zoobzio/relsql/internal/types"

// Node is any element of a relational expression tree.
type Node = types.Node

// Relational nodes.
type (
	Table             = types.Table
	Select            = types.Select
	Join              = types.Join
	Column            = types.Column
	ColumnMeta        = types.ColumnMeta
	ColumnDeclaration = types.ColumnDeclaration
	OrderBy           = types.OrderBy
	NamedValue        = types.NamedValue
	Aggregate         = types.Aggregate
	IsNullExpr        = types.IsNull
	ExistsExpr        = types.Exists
	InExpr            = types.In
	BetweenExpr       = types.Between
	ScalarExpr        = types.Scalar
	Alias             = types.Alias
)

// Expression nodes.
type (
	Constant     = types.Constant
	Binary       = types.Binary
	Unary        = types.Unary
	MethodCall   = types.MethodCall
	MemberAccess = types.MemberAccess
	Conditional  = types.Conditional
	Method       = types.Method
	Member       = types.Member
)

// NewAlias returns a fresh anonymous alias. Renderers name anonymous
// aliases t0, t1, ... in the order sources appear.
func NewAlias() *Alias { return types.NewAlias() }

// NamedAlias returns an alias rendered as name.
func NamedAlias(name string) *Alias { return types.NamedAlias(name) }
