package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexpr-lang/lexpr/internal/parser"
	"github.com/lexpr-lang/lexpr/internal/scanner"
	"github.com/lexpr-lang/lexpr/internal/token"
)

func TestAstPrinterVisitor(t *testing.T) {
	var tree parser.Expr = &parser.ExprBinary{
		Left: &parser.ExprUnary{
			Operator: token.NewTokenHeap(token.MINUS, "-", nil, token.Position{Line: 1, Column: 1}),
			Right: &parser.ExprLiteral{
				Value: token.DoubleNumber(123),
			},
		},
		Operator: token.NewTokenHeap(token.STAR, "*", nil, token.Position{Line: 1, Column: 6}),
		Right: &parser.ExprGrouping{
			Expression: &parser.ExprLiteral{
				Value: token.DoubleNumber(45.67),
			},
		}}

	p := parser.NewAstPrinter()
	out := p.Print(tree)
	assert.Equal(t, "(* (- 123) (group 45.67))", out)
}

func TestRPNPrinterVisitor(t *testing.T) {
	testcases := []struct {
		input    string
		expected string
	}{
		{`1 + 2`, `1 2 +`},
		{`(1 + 2) * (4 - 3)`, `1 2 + 4 3 - *`},
		{`-1 * 2`, `1 ~ 2 *`},
		{`!true`, `true !`},
	}

	for _, tc := range testcases {
		t.Run(tc.input, func(tt *testing.T) {
			tokens, err := scanner.NewScanner(tc.input).Scan()
			require.NoError(tt, err)
			expr, err := parser.NewParser(tokens).Parse()
			require.NoError(tt, err)

			assert.Equal(tt, tc.expected, parser.NewRPNPrinter().Print(expr))
		})
	}
}
