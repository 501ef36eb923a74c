package parser

import "fmt"

type ValueType uint

const (
	ValueNilType ValueType = iota
	ValueBoolType
	ValueFloatType
	ValueStringType
)

type Value interface {
	fmt.Stringer
	Type() ValueType
}
