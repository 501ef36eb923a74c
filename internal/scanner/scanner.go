package scanner

import (
	"strconv"

	"github.com/lexpr-lang/lexpr/internal/exprerrors"
	"github.com/lexpr-lang/lexpr/internal/token"
)

// Scanner converts raw source text into a flat sequence of tokens,
// terminated by an EOF sentinel.
type Scanner interface {
	Scan() ([]token.Token, error)
}

var reservedKeywords = map[string]token.TokenType{
	"false": token.FALSE,
	"nil":   token.NIL,
	"true":  token.TRUE,
}

var keywordLiterals = map[string]any{
	"false": false,
	"nil":   nil,
	"true":  true,
}

type scanner struct {
	source         []rune
	tokens         []token.Token
	start, current int
	startPos, pos  token.Position
	quote          rune
	err            error
}

// Option configures a scanner.
type Option func(*scanner)

// WithStringQuote sets the string delimiter rune. The default is '"'.
func WithStringQuote(quote rune) Option {
	return func(s *scanner) {
		s.quote = quote
	}
}

// NewScanner returns a new Scanner over input.
func NewScanner(input string, options ...Option) Scanner {
	s := &scanner{
		source: []rune(input),
		pos:    token.Position{Line: 1, Column: 1, Offset: 0},
		quote:  '"',
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Scan implements Scanner.
func (s *scanner) Scan() ([]token.Token, error) {
	for !s.isDone() {
		// We are at the beginning of the next lexeme.
		s.start = s.current
		s.startPos = s.pos
		s.scanToken()
	}

	s.tokens = append(s.tokens, token.NewToken(token.EOF, "", nil, s.pos))

	return s.tokens, s.err
}

func (s *scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *scanner) hasErr() bool {
	return s.err != nil
}

func (s *scanner) isDone() bool {
	return s.isAtEnd() || s.hasErr()
}

func (s *scanner) scanToken() {
	c := s.advance()

	switch c {
	case '(':
		s.addToken(token.LEFT_PAREN)
	case ')':
		s.addToken(token.RIGHT_PAREN)
	case '-':
		s.addToken(token.MINUS)
	case '+':
		s.addToken(token.PLUS)
	case '*':
		s.addToken(token.STAR)
	case '!':
		s.addMatchToken('=', token.BANG_EQUAL, token.BANG)
	case '<':
		s.addMatchToken('=', token.LESS_EQUAL, token.LESS)
	case '>':
		s.addMatchToken('=', token.GREATER_EQUAL, token.GREATER)
	case '=':
		// The grammar has no assignment, a lone '=' is not a token.
		if s.match('=') {
			s.addToken(token.EQUAL_EQUAL)
		} else {
			s.reportUnexpectedCharacter(c)
		}
	case '/':
		if s.match('/') {
			s.comment()
		} else {
			s.addToken(token.SLASH)
		}
	case ' ', '\r', '\t', '\n':
		// Ignore whitespace.
	default:
		switch {
		case c == s.quote:
			s.string()
		case s.isDigit(c):
			s.number()
		case s.isAlpha(c):
			s.reservedWord()
		default:
			s.reportUnexpectedCharacter(c)
		}
	}
}

func (s *scanner) peek() rune {
	if s.isAtEnd() {
		return '\000'
	}
	return s.source[s.current]
}

func (s *scanner) peekNext() rune {
	if s.current+1 >= len(s.source) {
		return '\000'
	}
	return s.source[s.current+1]
}

func (s *scanner) advance() rune {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.pos.Line++
		s.pos.Column = 1
	} else {
		s.pos.Column++
	}
	s.pos.Offset = s.current
	return c
}

func (s *scanner) match(expected rune) bool {
	if expected == s.peek() {
		s.advance()
		return true
	}

	return false
}

func (s *scanner) addMatchToken(lookAhead rune, ifMatch, ifNotMatched token.TokenType) {
	if s.match(lookAhead) {
		s.addToken(ifMatch)
	} else {
		s.addToken(ifNotMatched)
	}
}

func (s *scanner) addToken(t token.TokenType) {
	s.addTokenLiteral(t, nil)
}

func (s *scanner) addTokenLiteral(t token.TokenType, literal any) {
	s.tokens = append(s.tokens, token.NewToken(t, string(s.source[s.start:s.current]), literal, s.startPos))
}

func (s *scanner) comment() {
	for s.peek() != '\n' && !s.isAtEnd() {
		s.advance()
	}
}

func (s *scanner) string() {
	for !s.isAtEnd() && s.peek() != s.quote {
		s.advance()
	}

	if s.isAtEnd() {
		s.reportError(exprerrors.ErrScanUnterminatedString)
		return
	}

	// The closing quote.
	s.advance()

	value := s.source[s.start+1 : s.current-1]
	s.addTokenLiteral(token.STRING, string(value))
}

func (s *scanner) number() {
	for s.isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' && s.isDigit(s.peekNext()) {
		s.advance()

		for s.isDigit(s.peek()) {
			s.advance()
		}
	}

	svalue := string(s.source[s.start:s.current])
	value, err := strconv.ParseFloat(svalue, 64)
	if err != nil {
		s.reportError(err)
		return
	}
	s.addTokenLiteral(token.NUMBER, token.DoubleNumber(value))
}

func (s *scanner) reservedWord() {
	for s.isAlphaNumeric(s.peek()) {
		s.advance()
	}

	// The grammar has no identifier rule, any word that is not a
	// reserved keyword is a lex error.
	word := string(s.source[s.start:s.current])
	tokenType, ok := reservedKeywords[word]
	if !ok {
		s.reportErrorDetails(exprerrors.ErrScanUnexpectedIdentifier, strconv.Quote(word))
		return
	}
	s.addTokenLiteral(tokenType, keywordLiterals[word])
}

func (s *scanner) isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func (s *scanner) isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		c == '_'
}

func (s *scanner) isAlphaNumeric(c rune) bool {
	return s.isAlpha(c) || s.isDigit(c)
}

func (s *scanner) reportUnexpectedCharacter(c rune) {
	s.reportErrorDetails(exprerrors.ErrScanUnexpectedCharacter, strconv.QuoteRune(c))
}

func (s *scanner) reportError(err error) {
	s.reportErrorDetails(err, "")
}

func (s *scanner) reportErrorDetails(err error, details string) {
	s.err = exprerrors.NewScanError(s.startPos, err, details)
}

var _ Scanner = (*scanner)(nil)
