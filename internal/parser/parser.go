// Package parser implements the B-minor recursive descent parser. It
// consumes the token list produced by the scanner and builds the AST, one
// production function per grammar rule. Alternatives are chosen with one
// or two tokens of lookahead before anything is consumed; once a
// production commits to a branch it either completes or fails with a
// positioned error.
package parser

import (
	"strconv"

	"github.com/bminor-lang/bminor/internal/ast"
	"github.com/bminor-lang/bminor/internal/scanner"
)

// emptyProgramName is the name of the sentinel declaration returned for an
// empty token list.
const emptyProgramName = "Empty file"

// typeStarters are the categories that can begin a type.
var typeStarters = []scanner.Category{
	scanner.Identifier,
	scanner.ArrayKeyword,
	scanner.FunctionKeyword,
}

// valueStarters are the categories that can begin a value expression.
var valueStarters = []scanner.Category{
	scanner.OpenParen,
	scanner.Identifier,
	scanner.Integer,
	scanner.Float,
	scanner.Character,
	scanner.Text,
	scanner.OpenBrace,
}

// statementStarters are the categories that can begin a statement.
var statementStarters = []scanner.Category{
	scanner.Identifier,
	scanner.IfKeyword,
	scanner.ForKeyword,
	scanner.PrintKeyword,
	scanner.ReturnKeyword,
	scanner.OpenBrace,
}

// Parse parses a token list into the program's declaration chain. An empty
// list is a valid degenerate program and yields a sentinel declaration.
// The first error aborts the parse; there is no recovery.
func Parse(tokens []scanner.Token) (*ast.Declaration, error) {
	if len(tokens) == 0 {
		return &ast.Declaration{
			Name: emptyProgramName,
			Type: &ast.Type{Kind: ast.TypeText},
		}, nil
	}
	p := &parser{stream: newTokenStream(tokens)}
	return p.parseProgram()
}

type parser struct {
	stream *tokenStream
}

// errorOnEmpty fails with the position of the last consumed token when the
// stream is exhausted at a point where another token is mandatory.
func (p *parser) errorOnEmpty() error {
	if p.stream.remain() != 0 {
		return nil
	}
	prev, ok := p.stream.peekPrevious()
	if !ok {
		return &UnexpectedEndOfTokensError{Line: 1, Column: 1}
	}
	return &UnexpectedEndOfTokensError{Line: prev.Line, Column: prev.Column}
}

// expect consumes the next token when it has the given category. A
// mismatch or an exhausted stream aborts the production.
func (p *parser) expect(category scanner.Category) (scanner.Token, error) {
	tok, ok := p.stream.peek(1)
	if !ok {
		if prev, ok := p.stream.peekPrevious(); ok {
			return scanner.Token{}, &ExpectedButMissingTokenError{
				After:    prev,
				Expected: []scanner.Category{category},
			}
		}
		return scanner.Token{}, &UnexpectedEndOfTokensError{Line: 1, Column: 1}
	}
	if tok.Category != category {
		return scanner.Token{}, &UnexpectedTokenError{
			Unexpected: tok,
			Expected:   []scanner.Category{category},
		}
	}
	p.stream.consume(1)
	return tok, nil
}

func (p *parser) parseProgram() (*ast.Declaration, error) {
	var declarations ast.DeclarationList

	first, err := p.parseDeclaration()
	if err != nil {
		return nil, err
	}
	declarations.Append(first)

	for !p.stream.isEmpty() {
		declaration, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		declarations.Append(declaration)
	}
	return declarations.Head(), nil
}

// parseDeclaration parses "name : Type tail". The token after the colon
// decides the branch: a type name or the array keyword begins a variable
// declaration, the function keyword a function declaration.
func (p *parser) parseDeclaration() (*ast.Declaration, error) {
	if err := p.errorOnEmpty(); err != nil {
		return nil, err
	}
	name, err := p.expect(scanner.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(scanner.Colon); err != nil {
		return nil, err
	}

	tok, ok := p.stream.peek(1)
	if !ok {
		prev, _ := p.stream.peekPrevious()
		return nil, &ExpectedButMissingTokenError{After: prev, Expected: typeStarters}
	}

	switch tok.Category {
	case scanner.Identifier, scanner.ArrayKeyword:
		typ, err := p.parseFullType()
		if err != nil {
			return nil, err
		}
		value, err := p.parseVariableAssignment()
		if err != nil {
			return nil, err
		}
		return ast.NewValueDeclaration(name.Lexeme, typ, value), nil

	case scanner.FunctionKeyword:
		typ, err := p.parseFullType()
		if err != nil {
			return nil, err
		}
		code, err := p.parseFunctionAssignment()
		if err != nil {
			return nil, err
		}
		return ast.NewFunctionDeclaration(name.Lexeme, typ, code), nil

	default:
		return nil, &UnexpectedTokenError{Unexpected: tok, Expected: typeStarters}
	}
}

// parseVariableAssignment parses the optional "= Expression" initializer
// and the terminating semicolon of a variable declaration.
func (p *parser) parseVariableAssignment() (*ast.Expression, error) {
	if err := p.errorOnEmpty(); err != nil {
		return nil, err
	}
	tok, _ := p.stream.peek(1)
	switch tok.Category {
	case scanner.Equal:
		p.stream.consume(1)
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(scanner.Semicolon); err != nil {
			return nil, err
		}
		return value, nil
	case scanner.Semicolon:
		p.stream.consume(1)
		return nil, nil
	default:
		return nil, &UnexpectedTokenError{
			Unexpected: tok,
			Expected:   []scanner.Category{scanner.Equal, scanner.Semicolon},
		}
	}
}

// parseFunctionAssignment parses the optional "= Block" body and the
// terminating semicolon of a function declaration.
func (p *parser) parseFunctionAssignment() (*ast.Statement, error) {
	if err := p.errorOnEmpty(); err != nil {
		return nil, err
	}
	tok, _ := p.stream.peek(1)
	switch tok.Category {
	case scanner.Equal:
		p.stream.consume(1)
		return p.parseBlockStatement()
	case scanner.Semicolon:
		p.stream.consume(1)
		return nil, nil
	default:
		return nil, &UnexpectedTokenError{
			Unexpected: tok,
			Expected:   []scanner.Category{scanner.Equal, scanner.Semicolon},
		}
	}
}

// parseStatement dispatches on one or two tokens of lookahead. An
// identifier followed by a colon is a declaration; any other identifier
// begins an expression statement.
func (p *parser) parseStatement() (*ast.Statement, error) {
	if err := p.errorOnEmpty(); err != nil {
		return nil, err
	}
	tok, _ := p.stream.peek(1)
	switch tok.Category {
	case scanner.Identifier:
		if two, ok := p.stream.peek(2); ok && two.Category == scanner.Colon {
			declaration, err := p.parseDeclaration()
			if err != nil {
				return nil, err
			}
			return ast.NewDeclarationStatement(declaration), nil
		}
		expression, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(scanner.Semicolon); err != nil {
			return nil, err
		}
		return ast.NewExpressionStatement(expression), nil
	case scanner.IfKeyword:
		return p.parseIfElseStatement()
	case scanner.ForKeyword:
		return p.parseForStatement()
	case scanner.PrintKeyword:
		return p.parsePrintStatement()
	case scanner.ReturnKeyword:
		return p.parseReturnStatement()
	case scanner.OpenBrace:
		return p.parseBlockStatement()
	default:
		return nil, &UnexpectedTokenError{Unexpected: tok, Expected: statementStarters}
	}
}

func (p *parser) parseIfElseStatement() (*ast.Statement, error) {
	condition, body, err := p.parseIf()
	if err != nil {
		return nil, err
	}
	elseBody, err := p.parseElse()
	if err != nil {
		return nil, err
	}
	return ast.NewIfElseStatement(condition, body, elseBody), nil
}

func (p *parser) parseIf() (*ast.Expression, *ast.Statement, error) {
	if _, err := p.expect(scanner.IfKeyword); err != nil {
		return nil, nil, err
	}
	if _, err := p.expect(scanner.OpenParen); err != nil {
		return nil, nil, err
	}
	condition, err := p.parseExpression()
	if err != nil {
		return nil, nil, err
	}
	if _, err := p.expect(scanner.CloseParen); err != nil {
		return nil, nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, nil, err
	}
	return condition, body, nil
}

// parseElse parses an optional else branch. Each branch consumes exactly
// one statement, so a dangling else binds to the nearest enclosing if by
// construction.
func (p *parser) parseElse() (*ast.Statement, error) {
	tok, ok := p.stream.peek(1)
	if !ok || tok.Category != scanner.ElseKeyword {
		return nil, nil
	}
	p.stream.consume(1)
	return p.parseStatement()
}

// parseForStatement parses "for (;;) Stmt" or "for (Expr; Expr; Expr)
// Stmt". The fully-empty header is detected by three tokens of lookahead;
// partial omission of header clauses is not a valid form.
func (p *parser) parseForStatement() (*ast.Statement, error) {
	if _, err := p.expect(scanner.ForKeyword); err != nil {
		return nil, err
	}
	if _, err := p.expect(scanner.OpenParen); err != nil {
		return nil, err
	}

	one, okOne := p.stream.peek(1)
	two, okTwo := p.stream.peek(2)
	three, okThree := p.stream.peek(3)
	if okOne && okTwo && okThree &&
		one.Category == scanner.Semicolon &&
		two.Category == scanner.Semicolon &&
		three.Category == scanner.CloseParen {
		p.stream.consume(3)
		body, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		return ast.NewForStatement(nil, nil, nil, body), nil
	}

	initial, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(scanner.Semicolon); err != nil {
		return nil, err
	}
	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(scanner.Semicolon); err != nil {
		return nil, err
	}
	next, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(scanner.CloseParen); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return ast.NewForStatement(initial, condition, next, body), nil
}

// parsePrintStatement parses "print (Expr (, Expr)*)? ;". The arguments
// are stored as a chain of expression statements hanging off the print
// node.
func (p *parser) parsePrintStatement() (*ast.Statement, error) {
	if _, err := p.expect(scanner.PrintKeyword); err != nil {
		return nil, err
	}
	statement := ast.NewPrintStatement()
	arguments := ast.NewStatementList(statement)

	if err := p.errorOnEmpty(); err != nil {
		return nil, err
	}
	if tok, _ := p.stream.peek(1); tok.Category == scanner.Semicolon {
		p.stream.consume(1)
		return statement, nil
	}
	expression, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	arguments.Append(ast.NewExpressionStatement(expression))

	for {
		if err := p.errorOnEmpty(); err != nil {
			return nil, err
		}
		if tok, _ := p.stream.peek(1); tok.Category == scanner.Semicolon {
			p.stream.consume(1)
			return statement, nil
		}
		if _, err := p.expect(scanner.Comma); err != nil {
			return nil, err
		}
		expression, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		arguments.Append(ast.NewExpressionStatement(expression))
	}
}

func (p *parser) parseReturnStatement() (*ast.Statement, error) {
	if _, err := p.expect(scanner.ReturnKeyword); err != nil {
		return nil, err
	}
	expression, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(scanner.Semicolon); err != nil {
		return nil, err
	}
	return ast.NewReturnStatement(expression), nil
}

// parseBlockStatement parses "{ Stmt* }"; an empty block is allowed. The
// inner statements chain off the block node.
func (p *parser) parseBlockStatement() (*ast.Statement, error) {
	if _, err := p.expect(scanner.OpenBrace); err != nil {
		return nil, err
	}
	block := ast.NewBlockStatement()
	statements := ast.NewStatementList(block)
	for {
		if err := p.errorOnEmpty(); err != nil {
			return nil, err
		}
		if tok, _ := p.stream.peek(1); tok.Category == scanner.CloseBrace {
			p.stream.consume(1)
			return block, nil
		}
		statement, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements.Append(statement)
	}
}

// ====== Expressions ======
//
// One function per precedence level, loosest first. Each level parses the
// next-tighter level, then an optional recursive tail; a non-nil tail has
// the already-parsed left operand spliced into its leftmost open slot.

func (p *parser) parseExpression() (*ast.Expression, error) {
	return p.parseAssignment()
}

func (p *parser) parseAssignment() (*ast.Expression, error) {
	left, err := p.parseLogical()
	if err != nil {
		return nil, err
	}
	tail, err := p.parseAssignmentTail()
	if err != nil {
		return nil, err
	}
	if tail != nil {
		tail.AttachLeftmost(left)
		return tail, nil
	}
	return left, nil
}

// parseAssignmentTail builds the right-associative assignment chain: each
// "=" wraps everything parsed to its right, so a = b = c nests as
// Assignment(a, Assignment(b, c)).
func (p *parser) parseAssignmentTail() (*ast.Expression, error) {
	tok, ok := p.stream.peek(1)
	if !ok || tok.Category != scanner.Equal {
		return nil, nil
	}
	p.stream.consume(1)
	value, err := p.parseLogical()
	if err != nil {
		return nil, err
	}
	recurrent, err := p.parseAssignmentTail()
	if err != nil {
		return nil, err
	}
	if recurrent != nil {
		recurrent.AttachLeftmost(value)
		return &ast.Expression{Kind: ast.ExprAssignment, Right: recurrent}, nil
	}
	return &ast.Expression{Kind: ast.ExprAssignment, Right: value}, nil
}

func (p *parser) parseLogical() (*ast.Expression, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	tail, err := p.parseLogicalTail()
	if err != nil {
		return nil, err
	}
	if tail != nil {
		tail.AttachLeftmost(left)
		return tail, nil
	}
	return left, nil
}

// parseLogicalTail parses a chain of || and && operators. Both are
// assembled from two adjacent single-character tokens.
func (p *parser) parseLogicalTail() (*ast.Expression, error) {
	if err := p.errorOnEmpty(); err != nil {
		return nil, err
	}
	tok, _ := p.stream.peek(1)
	switch tok.Category {
	case scanner.Pipe:
		if _, err := p.expect(scanner.Pipe); err != nil {
			return nil, err
		}
		if _, err := p.expect(scanner.Pipe); err != nil {
			return nil, err
		}
		expr, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		recurrent, err := p.parseLogicalTail()
		if err != nil {
			return nil, err
		}
		return makeRecurrentBinary(ast.ExprOr, expr, recurrent), nil
	case scanner.Ampersand:
		if _, err := p.expect(scanner.Ampersand); err != nil {
			return nil, err
		}
		if _, err := p.expect(scanner.Ampersand); err != nil {
			return nil, err
		}
		expr, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		recurrent, err := p.parseLogicalTail()
		if err != nil {
			return nil, err
		}
		return makeRecurrentBinary(ast.ExprAnd, expr, recurrent), nil
	default:
		return nil, nil
	}
}

func (p *parser) parseComparison() (*ast.Expression, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	tail, err := p.parseComparisonTail()
	if err != nil {
		return nil, err
	}
	if tail != nil {
		tail.AttachLeftmost(left)
		return tail, nil
	}
	return left, nil
}

// parseComparisonTail parses relational operator chains. A lone "=" is
// left in place for the assignment level; "==" is two Equal tokens, and
// "<" and ">" need one extra token of lookahead to pick up a trailing "=".
func (p *parser) parseComparisonTail() (*ast.Expression, error) {
	if err := p.errorOnEmpty(); err != nil {
		return nil, err
	}
	tok, _ := p.stream.peek(1)
	switch tok.Category {
	case scanner.Less:
		p.stream.consume(1)
		return p.parseComparisonAngleTail(ast.ExprLess, ast.ExprLessEqual)
	case scanner.More:
		p.stream.consume(1)
		return p.parseComparisonAngleTail(ast.ExprMore, ast.ExprMoreEqual)
	case scanner.Equal:
		if two, ok := p.stream.peek(2); !ok || two.Category != scanner.Equal {
			return nil, nil
		}
		p.stream.consume(2)
		expr, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		recurrent, err := p.parseComparisonTail()
		if err != nil {
			return nil, err
		}
		return makeRecurrentBinary(ast.ExprEqual, expr, recurrent), nil
	case scanner.Exclamation:
		p.stream.consume(1)
		if _, err := p.expect(scanner.Equal); err != nil {
			return nil, err
		}
		expr, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		recurrent, err := p.parseComparisonTail()
		if err != nil {
			return nil, err
		}
		return makeRecurrentBinary(ast.ExprNotEqual, expr, recurrent), nil
	default:
		return nil, nil
	}
}

// parseComparisonAngleTail finishes a comparison that began with "<" or
// ">": a following "=" upgrades it to the -or-equal form.
func (p *parser) parseComparisonAngleTail(bare, withEqual ast.ExpressionKind) (*ast.Expression, error) {
	if err := p.errorOnEmpty(); err != nil {
		return nil, err
	}
	kind := bare
	if tok, _ := p.stream.peek(1); tok.Category == scanner.Equal {
		p.stream.consume(1)
		kind = withEqual
	}
	expr, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	recurrent, err := p.parseComparisonTail()
	if err != nil {
		return nil, err
	}
	return makeRecurrentBinary(kind, expr, recurrent), nil
}

func (p *parser) parseAdditive() (*ast.Expression, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	tail, err := p.parseAdditiveTail()
	if err != nil {
		return nil, err
	}
	if tail != nil {
		tail.AttachLeftmost(left)
		return tail, nil
	}
	return left, nil
}

func (p *parser) parseAdditiveTail() (*ast.Expression, error) {
	if err := p.errorOnEmpty(); err != nil {
		return nil, err
	}
	tok, _ := p.stream.peek(1)
	var kind ast.ExpressionKind
	switch tok.Category {
	case scanner.Plus:
		kind = ast.ExprAddition
	case scanner.Minus:
		kind = ast.ExprSubtraction
	default:
		return nil, nil
	}
	p.stream.consume(1)
	expr, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	recurrent, err := p.parseAdditiveTail()
	if err != nil {
		return nil, err
	}
	return makeRecurrentBinary(kind, expr, recurrent), nil
}

func (p *parser) parseMultiplicative() (*ast.Expression, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	tail, err := p.parseMultiplicativeTail()
	if err != nil {
		return nil, err
	}
	if tail != nil {
		tail.AttachLeftmost(left)
		return tail, nil
	}
	return left, nil
}

func (p *parser) parseMultiplicativeTail() (*ast.Expression, error) {
	if err := p.errorOnEmpty(); err != nil {
		return nil, err
	}
	tok, _ := p.stream.peek(1)
	var kind ast.ExpressionKind
	switch tok.Category {
	case scanner.Star:
		kind = ast.ExprMultiplication
	case scanner.Slash:
		kind = ast.ExprDivision
	case scanner.Percent:
		kind = ast.ExprModulo
	default:
		return nil, nil
	}
	p.stream.consume(1)
	expr, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	recurrent, err := p.parseMultiplicativeTail()
	if err != nil {
		return nil, err
	}
	return makeRecurrentBinary(kind, expr, recurrent), nil
}

func (p *parser) parsePower() (*ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	tail, err := p.parsePowerTail()
	if err != nil {
		return nil, err
	}
	if tail != nil {
		tail.AttachLeftmost(left)
		return tail, nil
	}
	return left, nil
}

// parsePowerTail builds the right-associative exponentiation chain, so
// 2 ^ 3 ^ 4 nests as Power(2, Power(3, 4)).
func (p *parser) parsePowerTail() (*ast.Expression, error) {
	if err := p.errorOnEmpty(); err != nil {
		return nil, err
	}
	if tok, _ := p.stream.peek(1); tok.Category != scanner.Caret {
		return nil, nil
	}
	p.stream.consume(1)
	value, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	recurrent, err := p.parsePowerTail()
	if err != nil {
		return nil, err
	}
	if recurrent != nil {
		recurrent.AttachLeftmost(value)
		return &ast.Expression{Kind: ast.ExprPower, Right: recurrent}, nil
	}
	return &ast.Expression{Kind: ast.ExprPower, Right: value}, nil
}

func (p *parser) parseUnary() (*ast.Expression, error) {
	prefix, err := p.parseUnaryTail()
	if err != nil {
		return nil, err
	}
	operand, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	if prefix != nil {
		prefix.AttachLeftmost(operand)
		return prefix, nil
	}
	return operand, nil
}

// parseUnaryTail consumes a stack of prefix operators; each one holds the
// next in its Left slot until the operand is spliced in at the bottom.
func (p *parser) parseUnaryTail() (*ast.Expression, error) {
	if err := p.errorOnEmpty(); err != nil {
		return nil, err
	}
	tok, _ := p.stream.peek(1)
	var kind ast.ExpressionKind
	switch tok.Category {
	case scanner.Minus:
		kind = ast.ExprMinus
	case scanner.Exclamation:
		kind = ast.ExprNegation
	default:
		return nil, nil
	}
	p.stream.consume(1)
	inner, err := p.parseUnaryTail()
	if err != nil {
		return nil, err
	}
	return &ast.Expression{Kind: kind, Left: inner}, nil
}

func (p *parser) parsePostfix() (*ast.Expression, error) {
	operand, err := p.parseSubscriptCall()
	if err != nil {
		return nil, err
	}
	tail, err := p.parsePostfixTail()
	if err != nil {
		return nil, err
	}
	if tail != nil {
		tail.AttachLeftmost(operand)
		return tail, nil
	}
	return operand, nil
}

// parsePostfixTail consumes a stack of ++ and -- operators, each spelled
// as two adjacent tokens.
func (p *parser) parsePostfixTail() (*ast.Expression, error) {
	if err := p.errorOnEmpty(); err != nil {
		return nil, err
	}
	if p.stream.remain() < 2 {
		return nil, nil
	}
	one, _ := p.stream.peek(1)
	two, _ := p.stream.peek(2)
	var kind ast.ExpressionKind
	switch {
	case one.Category == scanner.Plus && two.Category == scanner.Plus:
		kind = ast.ExprIncrementation
	case one.Category == scanner.Minus && two.Category == scanner.Minus:
		kind = ast.ExprDecrementation
	default:
		return nil, nil
	}
	p.stream.consume(2)
	inner, err := p.parsePostfixTail()
	if err != nil {
		return nil, err
	}
	return &ast.Expression{Kind: kind, Left: inner}, nil
}

// parseSubscriptCall parses a primary value followed by any chain of
// subscripts and calls, rebuilt so that the chain applies left-to-right:
// a[0](x) becomes FunctionCall(Subscript(a, 0), x).
func (p *parser) parseSubscriptCall() (*ast.Expression, error) {
	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	ops, err := p.parseSubscriptCallTail()
	if err != nil {
		return nil, err
	}
	if len(ops) == 0 {
		return value, nil
	}
	root := ops[len(ops)-1]
	for i := len(ops) - 2; i >= 0; i-- {
		root.AttachLeftmost(ops[i])
	}
	root.AttachLeftmost(value)
	return root, nil
}

func (p *parser) parseSubscriptCallTail() ([]*ast.Expression, error) {
	var ops []*ast.Expression
	for {
		if err := p.errorOnEmpty(); err != nil {
			return nil, err
		}
		tok, _ := p.stream.peek(1)
		switch tok.Category {
		case scanner.OpenParen:
			call, err := p.parseCall()
			if err != nil {
				return nil, err
			}
			ops = append(ops, call)
		case scanner.OpenBracket:
			subscript, err := p.parseSubscript()
			if err != nil {
				return nil, err
			}
			ops = append(ops, subscript)
		default:
			return ops, nil
		}
	}
}

func (p *parser) parseCall() (*ast.Expression, error) {
	if _, err := p.expect(scanner.OpenParen); err != nil {
		return nil, err
	}
	arguments, err := p.parseFunctionArguments()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(scanner.CloseParen); err != nil {
		return nil, err
	}
	return &ast.Expression{Kind: ast.ExprFunctionCall, Right: arguments}, nil
}

func (p *parser) parseSubscript() (*ast.Expression, error) {
	if _, err := p.expect(scanner.OpenBracket); err != nil {
		return nil, err
	}
	index, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(scanner.CloseBracket); err != nil {
		return nil, err
	}
	return &ast.Expression{Kind: ast.ExprSubscript, Right: index}, nil
}

// parseFunctionArguments parses a comma-separated argument list. Each
// argument is wrapped in a FunctionArg node (the argument in Left) and
// the wrappers are chained through their Right slots; an empty list is
// only valid when the closing parenthesis follows immediately.
func (p *parser) parseFunctionArguments() (*ast.Expression, error) {
	if err := p.errorOnEmpty(); err != nil {
		return nil, err
	}
	if tok, _ := p.stream.peek(1); tok.Category == scanner.CloseParen {
		return nil, nil
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	first := &ast.Expression{Kind: ast.ExprFunctionArg, Left: expr}

	for {
		if err := p.errorOnEmpty(); err != nil {
			return nil, err
		}
		tok, _ := p.stream.peek(1)
		switch tok.Category {
		case scanner.CloseParen:
			return first, nil
		case scanner.Comma:
			p.stream.consume(1)
			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			first.AttachRightmost(&ast.Expression{Kind: ast.ExprFunctionArg, Left: expr})
		default:
			return nil, &UnexpectedTokenError{
				Unexpected: tok,
				Expected:   []scanner.Category{scanner.Comma, scanner.CloseParen},
			}
		}
	}
}

// parseValue parses a primary: a parenthesized expression, a literal, an
// identifier, or an array literal.
func (p *parser) parseValue() (*ast.Expression, error) {
	if err := p.errorOnEmpty(); err != nil {
		return nil, err
	}
	tok, _ := p.stream.peek(1)
	switch tok.Category {
	case scanner.OpenParen:
		p.stream.consume(1)
		expression, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(scanner.CloseParen); err != nil {
			return nil, err
		}
		return expression, nil

	case scanner.Identifier, scanner.Integer, scanner.Float, scanner.Character, scanner.Text:
		tok, _ := p.stream.next()
		return ast.NewValueExpression(literalValue(tok)), nil

	case scanner.OpenBrace:
		return p.parseArrayLiteral()

	default:
		return nil, &UnexpectedTokenError{Unexpected: tok, Expected: valueStarters}
	}
}

// parseArrayLiteral parses "{ (Expr (, Expr)*)? }".
func (p *parser) parseArrayLiteral() (*ast.Expression, error) {
	if _, err := p.expect(scanner.OpenBrace); err != nil {
		return nil, err
	}
	var elements []*ast.Expression
	array := func() *ast.Expression {
		return &ast.Expression{
			Kind:  ast.ExprArray,
			Value: &ast.Value{Kind: ast.ValueArray, Elements: elements},
		}
	}

	if err := p.errorOnEmpty(); err != nil {
		return nil, err
	}
	if tok, _ := p.stream.peek(1); tok.Category == scanner.CloseBrace {
		p.stream.consume(1)
		return array(), nil
	}
	element, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	elements = append(elements, element)

	for {
		if err := p.errorOnEmpty(); err != nil {
			return nil, err
		}
		if tok, _ := p.stream.peek(1); tok.Category == scanner.CloseBrace {
			p.stream.consume(1)
			return array(), nil
		}
		if _, err := p.expect(scanner.Comma); err != nil {
			return nil, err
		}
		element, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elements = append(elements, element)
	}
}

// literalValue converts a literal or identifier token into its payload.
// Character and Text payloads are decoded: the quotes are stripped and a
// backslash escape resolves to the character it precedes.
func literalValue(tok scanner.Token) *ast.Value {
	switch tok.Category {
	case scanner.Identifier:
		return &ast.Value{Kind: ast.ValueName, Name: tok.Lexeme}
	case scanner.Integer:
		n, _ := strconv.ParseInt(tok.Lexeme, 10, 64)
		return &ast.Value{Kind: ast.ValueInteger, Integer: n}
	case scanner.Float:
		f, _ := strconv.ParseFloat(tok.Lexeme, 64)
		return &ast.Value{Kind: ast.ValueFloat, Float: f}
	case scanner.Character:
		return &ast.Value{Kind: ast.ValueCharacter, Character: decodeCharacter(tok.Lexeme)}
	case scanner.Text:
		return &ast.Value{Kind: ast.ValueText, Text: decodeText(tok.Lexeme)}
	}
	return nil
}

func decodeCharacter(lexeme string) byte {
	inner := lexeme[1 : len(lexeme)-1]
	if inner[0] == '\\' {
		return inner[1]
	}
	return inner[0]
}

// makeRecurrentBinary assembles one step of a left-associative operator
// chain. The freshly parsed right operand becomes a node with an open
// Left slot; if a deeper tail already exists the node is spliced into its
// leftmost open slot, keeping earlier operators below later ones.
func makeRecurrentBinary(kind ast.ExpressionKind, expr, recurrent *ast.Expression) *ast.Expression {
	node := &ast.Expression{Kind: kind, Right: expr}
	if recurrent != nil {
		recurrent.AttachLeftmost(node)
		return recurrent
	}
	return node
}

func decodeText(lexeme string) string {
	inner := lexeme[1 : len(lexeme)-1]
	out := make([]byte, 0, len(inner))
	for i := 0; i < len(inner); i++ {
		if inner[i] == '\\' && i+1 < len(inner) {
			i++
		}
		out = append(out, inner[i])
	}
	return string(out)
}
