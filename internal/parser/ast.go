package parser

import "github.com/lexpr-lang/lexpr/internal/token"

// Visitor is the interface that wraps the Visit methods.
//
// Visit is called for every node in the tree.
type Visitor interface {
	VisitBinary(expr *ExprBinary) any
	VisitGrouping(expr *ExprGrouping) any
	VisitLiteral(expr *ExprLiteral) any
	VisitUnary(expr *ExprUnary) any
}

type Expr interface {
	Accept(v Visitor) any
}

type ExprBinary struct {
	Left     Expr
	Operator *token.Token
	Right    Expr
}

var _ Expr = (*ExprBinary)(nil)

func (e *ExprBinary) Accept(v Visitor) any {
	return v.VisitBinary(e)
}

type ExprGrouping struct {
	Expression Expr
}

var _ Expr = (*ExprGrouping)(nil)

func (e *ExprGrouping) Accept(v Visitor) any {
	return v.VisitGrouping(e)
}

type ExprLiteral struct {
	Value any
}

var _ Expr = (*ExprLiteral)(nil)

func (e *ExprLiteral) Accept(v Visitor) any {
	return v.VisitLiteral(e)
}

type ExprUnary struct {
	Operator *token.Token
	Right    Expr
}

var _ Expr = (*ExprUnary)(nil)

func (e *ExprUnary) Accept(v Visitor) any {
	return v.VisitUnary(e)
}
