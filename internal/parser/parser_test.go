package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexpr-lang/lexpr/internal/exprerrors"
	"github.com/lexpr-lang/lexpr/internal/parser"
	"github.com/lexpr-lang/lexpr/internal/scanner"
	"github.com/lexpr-lang/lexpr/internal/token"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name     string
		input    string
		expected string
		err      string
	}{
		{name: "literal number", input: `1`, expected: `1`},
		{name: "literal string", input: `"a"`, expected: `a`},
		{name: "literal true", input: `true`, expected: `true`},
		{name: "literal false", input: `false`, expected: `false`},
		{name: "literal nil", input: `nil`, expected: `nil`},
		{name: "grouping", input: `(1 + 2)`, expected: `(group (+ 1 2))`},
		{name: "minus left assoc", input: `1 - 2 - 3`, expected: `(- (- 1 2) 3)`},
		{name: "plus left assoc", input: `1 + 2 + 3`, expected: `(+ (+ 1 2) 3)`},
		{name: "slash left assoc", input: `8 / 4 / 2`, expected: `(/ (/ 8 4) 2)`},
		{name: "unary right assoc", input: `--1`, expected: `(- (- 1))`},
		{name: "bang right assoc", input: `!!true`, expected: `(! (! true))`},
		{name: "unary binds tighter than factor", input: `-1 * 2`, expected: `(* (- 1) 2)`},
		{name: "factor binds tighter than term", input: `1 + 2 * 3`, expected: `(+ 1 (* 2 3))`},
		{name: "term binds tighter than comparison", input: `1 + 1 > 2`, expected: `(> (+ 1 1) 2)`},
		{name: "comparison binds tighter than equality", input: `1 > 2 == false`, expected: `(== (> 1 2) false)`},
		{name: "equality left assoc", input: `1 == 2 == 3`, expected: `(== (== 1 2) 3)`},
		{name: "grouping overrides precedence", input: `(1 + 2) * 3`, expected: `(* (group (+ 1 2)) 3)`},
		{name: "kitchen sink", input: `!(-1 == 2 + 3 * 4 + 5)`, expected: `(! (group (== (- 1) (+ (+ 2 (* 3 4)) 5))))`},
		{name: "empty", input: ``, err: `parse error at end: expected expression.`},
		{name: "missing right paren", input: `(1 + 2`, err: `parse error at end: expected ')' after expression.`},
		{name: "missing operand", input: `1 +`, err: `parse error at end: expected expression.`},
		{name: "operator only", input: `*`, err: `parse error at '*': expected expression.`},
		{name: "dangling right paren", input: `)`, err: `parse error at ')': expected expression.`},
		{name: "trailing garbage", input: `1 2`, err: `parse error at '2': expected expression.`},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			tokens, err := scanner.NewScanner(tc.input).Scan()
			require.NoError(tt, err)

			expr, err := parser.NewParser(tokens).Parse()
			if tc.err != "" {
				assert.ErrorContains(tt, err, tc.err)
				assert.Nil(tt, expr)
			} else {
				require.NoError(tt, err)
				assert.Equal(tt, tc.expected, parser.NewAstPrinter().Print(expr))
			}
		})
	}
}

func TestParseErrorKind(t *testing.T) {
	t.Parallel()

	tokens, err := scanner.NewScanner(`(1`).Scan()
	require.NoError(t, err)

	_, err = parser.NewParser(tokens).Parse()
	assert.ErrorIs(t, err, exprerrors.ErrParseExpectedRightParenToken)
}

func TestNewParserPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { parser.NewParser(nil) })
	assert.Panics(t, func() {
		parser.NewParser([]token.Token{token.NewToken(token.NUMBER, "1", token.DoubleNumber(1), token.Position{Line: 1, Column: 1})})
	})
}
