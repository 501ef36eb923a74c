package interpreter

import (
	"fmt"
	"strconv"

	"github.com/lexpr-lang/lexpr/internal/exprerrors"
	"github.com/lexpr-lang/lexpr/internal/parser"
	"github.com/lexpr-lang/lexpr/internal/token"
)

type Interpreter interface {
	// Interpret evaluates the given expression.
	// Returns the stringified result of the expression and an error if any.
	// The error is nil if the expression is valid.
	//
	// Not thread safe.
	// Resets internal state on Interpret.
	Interpret(expr parser.Expr) (string, error)

	// Evaluate evaluates the given expression.
	// Returns the result of the expression and an error if any.
	// The error is nil if the expression is valid.
	//
	// Not thread safe.
	// Resets internal state on Evaluate.
	Evaluate(expr parser.Expr) (Value, error)
}

type interpreter struct {
	err error
}

func NewInterpreter() Interpreter {
	return &interpreter{}
}

// Interpret implements Interpreter.
func (i *interpreter) Interpret(expr parser.Expr) (string, error) {
	value, err := i.Evaluate(expr)
	if err != nil {
		return "", err
	}
	return i.stringify(value), nil
}

// Evaluate implements Interpreter.
func (i *interpreter) Evaluate(expr parser.Expr) (Value, error) {
	i.reset()

	return i.evaluate(expr)
}

func (i *interpreter) stringify(v Value) string {
	if v, ok := v.(ValueString); ok {
		return strconv.Quote(string(v))
	}
	return v.String()
}

// VisitBinary implements parser.Visitor.
func (i *interpreter) VisitBinary(expr *parser.ExprBinary) any {
	left, err := i.evaluate(expr.Left)
	if err != nil {
		return nil
	}
	right, err := i.evaluate(expr.Right)
	if err != nil {
		return nil
	}

	switch expr.Operator.Type {
	case token.GREATER:
		if ok := i.checkNumberOperands(expr.Operator, left, right); !ok {
			return nil
		}
		return ValueBool(left.(ValueFloat) > right.(ValueFloat))
	case token.GREATER_EQUAL:
		if ok := i.checkNumberOperands(expr.Operator, left, right); !ok {
			return nil
		}
		return ValueBool(left.(ValueFloat) >= right.(ValueFloat))
	case token.LESS:
		if ok := i.checkNumberOperands(expr.Operator, left, right); !ok {
			return nil
		}
		return ValueBool(left.(ValueFloat) < right.(ValueFloat))
	case token.LESS_EQUAL:
		if ok := i.checkNumberOperands(expr.Operator, left, right); !ok {
			return nil
		}
		return ValueBool(left.(ValueFloat) <= right.(ValueFloat))
	case token.BANG_EQUAL:
		return ValueBool(!i.isEqual(left, right))
	case token.EQUAL_EQUAL:
		return ValueBool(i.isEqual(left, right))
	case token.MINUS:
		if ok := i.checkNumberOperands(expr.Operator, left, right); !ok {
			return nil
		}
		return left.(ValueFloat) - right.(ValueFloat)
	case token.PLUS:
		if left, ok := left.(ValueString); ok {
			if right, ok := right.(ValueString); ok {
				return left + right
			}
		}
		if left, ok := left.(ValueFloat); ok {
			if right, ok := right.(ValueFloat); ok {
				return left + right
			}
		}
		return i.reportOperandsError(expr.Operator, exprerrors.ErrRuntimeOperandsMustNumbersOrStrings, left, right)
	case token.SLASH:
		if ok := i.checkNumberOperands(expr.Operator, left, right); !ok {
			return nil
		}
		if right.(ValueFloat) == 0 {
			return i.reportError(expr.Operator, exprerrors.ErrRuntimeDivisionByZero)
		}
		return left.(ValueFloat) / right.(ValueFloat)
	case token.STAR:
		if ok := i.checkNumberOperands(expr.Operator, left, right); !ok {
			return nil
		}
		return left.(ValueFloat) * right.(ValueFloat)
	}

	return i.unreachable()
}

// VisitGrouping implements parser.Visitor.
func (i *interpreter) VisitGrouping(expr *parser.ExprGrouping) any {
	if v, err := i.evaluate(expr.Expression); err == nil {
		return v
	}
	return nil
}

// VisitLiteral implements parser.Visitor.
func (i *interpreter) VisitLiteral(expr *parser.ExprLiteral) any {
	switch value := expr.Value.(type) {
	case nil:
		return NilValue
	case bool:
		return ValueBool(value)
	case token.DoubleNumber:
		return ValueFloat(value)
	case string:
		return ValueString(value)
	}

	return i.unreachable()
}

// VisitUnary implements parser.Visitor.
func (i *interpreter) VisitUnary(expr *parser.ExprUnary) any {
	right, err := i.evaluate(expr.Right)
	if err != nil {
		return nil
	}

	switch expr.Operator.Type {
	case token.MINUS:
		if ok := i.checkNumberOperand(expr.Operator, right); !ok {
			return nil
		}
		return -right.(ValueFloat)
	case token.BANG:
		return ValueBool(!i.isTruthy(right))
	}

	return i.unreachable()
}

func (i *interpreter) evaluate(expr parser.Expr) (Value, error) {
	if i.hasErr() {
		return nil, i.err
	}

	value := expr.Accept(i)
	if i.hasErr() {
		return nil, i.err
	}

	return value.(Value), nil
}

// Only nil and false are falsy, every other value is truthy.
func (i *interpreter) isTruthy(value Value) bool {
	if value == NilValue {
		return false
	}
	if value, ok := value.(ValueBool); ok {
		return bool(value)
	}

	return true
}

// Values of different types are never equal, equality never fails.
func (i *interpreter) isEqual(left, right Value) bool {
	return left == right
}

func (i *interpreter) unreachable() any {
	panic("unreachable")
}

func (i *interpreter) hasErr() bool {
	return i.err != nil
}

func (i *interpreter) checkNumberOperands(tok *token.Token, left, right Value) bool {
	_, lok := left.(ValueFloat)
	_, rok := right.(ValueFloat)
	if !lok || !rok {
		i.reportOperandsError(tok, exprerrors.ErrRuntimeOperandsMustBeNumbers, left, right)
	}
	return !i.hasErr()
}

func (i *interpreter) checkNumberOperand(tok *token.Token, val Value) bool {
	if _, ok := val.(ValueFloat); !ok {
		i.reportErrorDetails(tok, exprerrors.ErrRuntimeOperandMustBeNumber, fmt.Sprintf("got: %s", i.stringify(val)))
	}

	return !i.hasErr()
}

func (i *interpreter) reportOperandsError(tok *token.Token, cause error, left, right Value) any {
	return i.reportErrorDetails(tok, cause, fmt.Sprintf("got: %s, %s", i.stringify(left), i.stringify(right)))
}

func (i *interpreter) reportError(tok *token.Token, cause error) any {
	i.err = exprerrors.NewRuntimeError(tok, cause)
	return nil
}

func (i *interpreter) reportErrorDetails(tok *token.Token, cause error, details string) any {
	i.err = exprerrors.NewRuntimeErrorDetails(tok, cause, details)
	return nil
}

func (i *interpreter) reset() {
	i.err = nil
}

var _ parser.Visitor = (*interpreter)(nil)
var _ Interpreter = (*interpreter)(nil)
