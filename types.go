package relsql

import (
	"github.com/zoobzio/relsql/internal/render"
	"github.com/zoobzio/relsql/internal/types"
)

// Type is the value type of an expression.
type Type = types.Type

// Value types.
const (
	TypeUnknown = types.TypeUnknown
	TypeBool    = types.TypeBool
	TypeInt     = types.TypeInt
	TypeInt64   = types.TypeInt64
	TypeFloat   = types.TypeFloat
	TypeDecimal = types.TypeDecimal
	TypeString  = types.TypeString
	TypeTime    = types.TypeTime
	TypeUUID    = types.TypeUUID
	TypeBytes   = types.TypeBytes
)

// JoinType selects how two sources are combined.
type JoinType = types.JoinType

// Join types.
const (
	CrossJoin      = types.CrossJoin
	InnerJoin      = types.InnerJoin
	LeftOuterJoin  = types.LeftOuterJoin
	RightOuterJoin = types.RightOuterJoin
	CrossApply     = types.CrossApply
	OuterApply     = types.OuterApply
)

// Owner names the value family a method or member belongs to.
type Owner = types.Owner

// Owners.
const (
	OwnerString  = types.OwnerString
	OwnerTime    = types.OwnerTime
	OwnerDecimal = types.OwnerDecimal
	OwnerMath    = types.OwnerMath
	OwnerPattern = types.OwnerPattern
	OwnerObject  = types.OwnerObject
)

// BinaryOp is a binary operator.
type BinaryOp = types.BinaryOp

// Binary operators.
const (
	OpAnd      = types.OpAnd
	OpOr       = types.OpOr
	OpEq       = types.OpEq
	OpNe       = types.OpNe
	OpLt       = types.OpLt
	OpLe       = types.OpLe
	OpGt       = types.OpGt
	OpGe       = types.OpGe
	OpAdd      = types.OpAdd
	OpSub      = types.OpSub
	OpMul      = types.OpMul
	OpDiv      = types.OpDiv
	OpMod      = types.OpMod
	OpCoalesce = types.OpCoalesce
)

// AggregateFunc is an aggregate function.
type AggregateFunc = types.AggregateFunc

// Aggregate functions.
const (
	AggCount     = types.AggCount
	AggLongCount = types.AggLongCount
	AggSum       = types.AggSum
	AggMin       = types.AggMin
	AggMax       = types.AggMax
	AggAvg       = types.AggAvg
)

// Errors returned by renderers.
var (
	ErrUnsupported   = render.ErrUnsupported
	ErrInvalidSource = render.ErrInvalidSource
	ErrPagination    = render.ErrPagination
)

// Typed renderer errors, for errors.As.
type (
	UnsupportedError = render.UnsupportedError
	SourceError      = render.SourceError
	PaginationError  = render.PaginationError
)
