package parser

import (
	"github.com/bminor-lang/bminor/internal/ast"
	"github.com/bminor-lang/bminor/internal/scanner"
)

// The type grammar comes in two forms. The full form appears after the
// colon of a declaration: array types carry an integer size and function
// parameters are named. The bare form appears in nested positions, array
// element types and parameter types, where arrays have empty brackets and
// parameters are unnamed.

// parseFullType parses the declaration form of a type.
func (p *parser) parseFullType() (*ast.Type, error) {
	if err := p.errorOnEmpty(); err != nil {
		return nil, err
	}
	tok, _ := p.stream.peek(1)
	switch tok.Category {
	case scanner.Identifier:
		p.stream.consume(1)
		typ := ast.TypeFromName(tok.Lexeme)
		if typ == nil {
			return nil, &UnknownTypeIdentifierError{Token: tok}
		}
		return typ, nil

	case scanner.ArrayKeyword:
		p.stream.consume(1)
		if _, err := p.expect(scanner.OpenBracket); err != nil {
			return nil, err
		}
		// The size is checked syntactically but not recorded; bounds
		// live in the initializer.
		if _, err := p.expect(scanner.Integer); err != nil {
			return nil, err
		}
		if _, err := p.expect(scanner.CloseBracket); err != nil {
			return nil, err
		}
		typ := &ast.Type{Kind: ast.TypeArray}
		sub, err := p.parseFullType()
		if err != nil {
			return nil, err
		}
		typ.AttachMostSubtype(sub)
		return typ, nil

	case scanner.FunctionKeyword:
		p.stream.consume(1)
		typ := &ast.Type{Kind: ast.TypeFunction}
		sub, err := p.parseBareType()
		if err != nil {
			return nil, err
		}
		typ.AttachMostSubtype(sub)
		params, err := p.parseNamedParameters()
		if err != nil {
			return nil, err
		}
		typ.Params = params
		return typ, nil

	default:
		return nil, &UnexpectedTokenError{Unexpected: tok, Expected: typeStarters}
	}
}

// parseBareType parses the nested form of a type.
func (p *parser) parseBareType() (*ast.Type, error) {
	if err := p.errorOnEmpty(); err != nil {
		return nil, err
	}
	tok, _ := p.stream.peek(1)
	switch tok.Category {
	case scanner.Identifier:
		p.stream.consume(1)
		typ := ast.TypeFromName(tok.Lexeme)
		if typ == nil {
			return nil, &UnknownTypeIdentifierError{Token: tok}
		}
		return typ, nil

	case scanner.ArrayKeyword:
		p.stream.consume(1)
		if _, err := p.expect(scanner.OpenBracket); err != nil {
			return nil, err
		}
		if _, err := p.expect(scanner.CloseBracket); err != nil {
			return nil, err
		}
		typ := &ast.Type{Kind: ast.TypeArray}
		sub, err := p.parseBareType()
		if err != nil {
			return nil, err
		}
		typ.AttachMostSubtype(sub)
		return typ, nil

	case scanner.FunctionKeyword:
		p.stream.consume(1)
		typ := &ast.Type{Kind: ast.TypeFunction}
		sub, err := p.parseBareType()
		if err != nil {
			return nil, err
		}
		typ.AttachMostSubtype(sub)
		params, err := p.parseUnnamedParameters()
		if err != nil {
			return nil, err
		}
		typ.Params = params
		return typ, nil

	default:
		return nil, &UnexpectedTokenError{Unexpected: tok, Expected: typeStarters}
	}
}

// parseNamedParameters parses "( (name : Type (, name : Type)*)? )" and
// returns the head of the parameter chain, nil for an empty list.
func (p *parser) parseNamedParameters() (*ast.ParameterList, error) {
	if _, err := p.expect(scanner.OpenParen); err != nil {
		return nil, err
	}
	if err := p.errorOnEmpty(); err != nil {
		return nil, err
	}
	tok, _ := p.stream.peek(1)
	switch tok.Category {
	case scanner.CloseParen:
		p.stream.consume(1)
		return nil, nil
	case scanner.Identifier:
	default:
		return nil, &UnexpectedTokenError{
			Unexpected: tok,
			Expected:   []scanner.Category{scanner.Identifier, scanner.CloseParen},
		}
	}

	head, err := p.parseNamedParameter()
	if err != nil {
		return nil, err
	}
	tail := head
	for {
		if err := p.errorOnEmpty(); err != nil {
			return nil, err
		}
		tok, _ := p.stream.peek(1)
		switch tok.Category {
		case scanner.CloseParen:
			p.stream.consume(1)
			return head, nil
		case scanner.Comma:
			p.stream.consume(1)
			param, err := p.parseNamedParameter()
			if err != nil {
				return nil, err
			}
			tail.Next = param
			tail = param
		default:
			return nil, &UnexpectedTokenError{
				Unexpected: tok,
				Expected:   []scanner.Category{scanner.Comma, scanner.CloseParen},
			}
		}
	}
}

func (p *parser) parseNamedParameter() (*ast.ParameterList, error) {
	name, err := p.expect(scanner.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(scanner.Colon); err != nil {
		return nil, err
	}
	typ, err := p.parseBareType()
	if err != nil {
		return nil, err
	}
	return &ast.ParameterList{Name: name.Lexeme, Kind: typ.Kind}, nil
}

// parseUnnamedParameters parses "( (Type (, Type)*)? )"; the parameter
// nodes carry only type kinds and empty names.
func (p *parser) parseUnnamedParameters() (*ast.ParameterList, error) {
	if _, err := p.expect(scanner.OpenParen); err != nil {
		return nil, err
	}
	if err := p.errorOnEmpty(); err != nil {
		return nil, err
	}
	tok, _ := p.stream.peek(1)
	switch tok.Category {
	case scanner.CloseParen:
		p.stream.consume(1)
		return nil, nil
	case scanner.Identifier, scanner.ArrayKeyword, scanner.FunctionKeyword:
	default:
		return nil, &UnexpectedTokenError{
			Unexpected: tok,
			Expected: []scanner.Category{
				scanner.Identifier,
				scanner.ArrayKeyword,
				scanner.FunctionKeyword,
				scanner.CloseParen,
			},
		}
	}

	typ, err := p.parseBareType()
	if err != nil {
		return nil, err
	}
	head := &ast.ParameterList{Kind: typ.Kind}
	tail := head
	for {
		if err := p.errorOnEmpty(); err != nil {
			return nil, err
		}
		tok, _ := p.stream.peek(1)
		switch tok.Category {
		case scanner.CloseParen:
			p.stream.consume(1)
			return head, nil
		case scanner.Comma:
			p.stream.consume(1)
			typ, err := p.parseBareType()
			if err != nil {
				return nil, err
			}
			param := &ast.ParameterList{Kind: typ.Kind}
			tail.Next = param
			tail = param
		default:
			return nil, &UnexpectedTokenError{
				Unexpected: tok,
				Expected:   []scanner.Category{scanner.Comma, scanner.CloseParen},
			}
		}
	}
}
