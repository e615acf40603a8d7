package relsql

import "github.com/zoobzio/relsql/internal/types"

// QueryResult contains the rendered SQL and its parameters in the order
// their values must be bound.
type QueryResult = types.QueryResult

// Param is one parameter of a QueryResult.
type Param = types.Param

// Conversion transforms a parameter value when it is bound.
type Conversion = types.Conversion

// ConversionFunc adapts a function to Conversion.
type ConversionFunc = types.ConversionFunc
