package parser

import (
	"fmt"
	"strings"

	"github.com/lexpr-lang/lexpr/internal/token"
)

// RPNPrinter renders an expression tree in postfix form.
// Unary minus is rendered '~' to keep it distinguishable from the
// binary operator.
type RPNPrinter struct{}

func NewRPNPrinter() *RPNPrinter {
	return &RPNPrinter{}
}

// VisitBinary implements Visitor.
func (p *RPNPrinter) VisitBinary(expr *ExprBinary) any {
	return p.reverse(expr.Operator.Lexeme, expr.Left, expr.Right)
}

// VisitGrouping implements Visitor.
func (p *RPNPrinter) VisitGrouping(expr *ExprGrouping) any {
	return p.reverse("", expr.Expression)
}

// VisitLiteral implements Visitor.
func (p *RPNPrinter) VisitLiteral(expr *ExprLiteral) any {
	return literalAsStr(expr.Value)
}

// VisitUnary implements Visitor.
func (p *RPNPrinter) VisitUnary(expr *ExprUnary) any {
	operator := expr.Operator.Lexeme
	if expr.Operator.Type == token.MINUS {
		operator = "~"
	}
	return p.reverse(operator, expr.Right)
}

func (p *RPNPrinter) reverse(name string, exprs ...Expr) string {
	out := new(strings.Builder)
	for _, expr := range exprs {
		_, _ = out.WriteString(fmt.Sprintf("%v", expr.Accept(p)))
		_, _ = out.WriteString(" ")
	}
	_, _ = out.WriteString(name)
	v := out.String()
	return strings.TrimSuffix(v, " ")
}

func (p *RPNPrinter) Print(expr Expr) string {
	return fmt.Sprintf("%v", expr.Accept(p))
}

var _ Visitor = (*RPNPrinter)(nil)
