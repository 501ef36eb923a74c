package interpreter

import (
	"strconv"

	"github.com/lexpr-lang/lexpr/internal/parser"
)

// Value alias, not type redefinition.
type Value = parser.Value

type (
	ValueNil    struct{}
	ValueBool   bool
	ValueFloat  float64
	ValueString string
)

var NilValue = ValueNil{}

// Type implements parser.Value.
func (v ValueNil) Type() parser.ValueType {
	return parser.ValueNilType
}

// Type implements parser.Value.
func (v ValueBool) Type() parser.ValueType {
	return parser.ValueBoolType
}

// Type implements parser.Value.
func (v ValueFloat) Type() parser.ValueType {
	return parser.ValueFloatType
}

// Type implements parser.Value.
func (v ValueString) Type() parser.ValueType {
	return parser.ValueStringType
}

// String implements fmt.Stringer.
func (v ValueNil) String() string {
	return "nil"
}

// String implements fmt.Stringer.
func (v ValueBool) String() string {
	return strconv.FormatBool(bool(v))
}

// String implements fmt.Stringer.
func (v ValueFloat) String() string {
	return strconv.FormatFloat(float64(v), 'f', -1, 64)
}

// String implements fmt.Stringer.
func (v ValueString) String() string {
	return string(v)
}

var (
	_ Value = ValueNil{}
	_ Value = ValueBool(false)
	_ Value = ValueFloat(0)
	_ Value = ValueString("")
)
