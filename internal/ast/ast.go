// Package ast defines the abstract syntax tree for B-minor programs:
// declarations, statements, expressions, types and parameter lists. All
// structures are exclusively-owned trees and singly linked lists built
// bottom-up by the parser; there is no sharing and no cycles.
package ast

import "fmt"

// TypeKind identifies a B-minor type.
type TypeKind int

const (
	TypeVoid TypeKind = iota
	TypeBoolean
	TypeCharacter
	TypeInteger
	TypeText
	TypeArray
	TypeFunction
)

var typeKindNames = map[TypeKind]string{
	TypeVoid:      "void",
	TypeBoolean:   "boolean",
	TypeCharacter: "char",
	TypeInteger:   "integer",
	TypeText:      "string",
	TypeArray:     "array",
	TypeFunction:  "function",
}

// String returns the source-level name of the type kind.
func (k TypeKind) String() string {
	if name, ok := typeKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(k))
}

// typeNames is the fixed table of base type names accepted in type
// position.
var typeNames = map[string]TypeKind{
	"void":     TypeVoid,
	"boolean":  TypeBoolean,
	"string":   TypeText,
	"function": TypeFunction,
	"array":    TypeArray,
	"integer":  TypeInteger,
	"char":     TypeCharacter,
}

// TypeFromName resolves a base type name to a fresh Type, or nil when the
// name is not in the type table.
func TypeFromName(name string) *Type {
	kind, ok := typeNames[name]
	if !ok {
		return nil
	}
	return &Type{Kind: kind}
}

// Type is a recursive type: arrays carry their element type and functions
// their return type in Subtype, and functions additionally carry a
// parameter list.
type Type struct {
	Kind    TypeKind
	Subtype *Type
	Params  *ParameterList
}

// AttachMostSubtype descends to the deepest type whose Subtype slot is
// still unset and attaches sub there, building right-nested chains such as
// Array(Array(Integer)).
func (t *Type) AttachMostSubtype(sub *Type) {
	at := t
	for at.Subtype != nil {
		at = at.Subtype
	}
	at.Subtype = sub
}

// String renders the type left-to-right, e.g. "array array integer".
func (t *Type) String() string {
	if t.Subtype == nil {
		return t.Kind.String()
	}
	return t.Kind.String() + " " + t.Subtype.String()
}

// ParameterList is one node of a function type's parameter list, in
// declaration order. The bare (unnamed) type form leaves Name empty.
// Name uniqueness is not enforced here.
type ParameterList struct {
	Name string
	Kind TypeKind
	Next *ParameterList
}

// Declaration is a named binding: a variable with an optional initializer,
// or a function with an optional body. Next links sibling declarations in
// source order.
type Declaration struct {
	Name  string
	Type  *Type
	Value *Expression
	Code  *Statement
	Next  *Declaration
}

// NewValueDeclaration builds a variable declaration.
func NewValueDeclaration(name string, typ *Type, value *Expression) *Declaration {
	return &Declaration{Name: name, Type: typ, Value: value}
}

// NewFunctionDeclaration builds a function declaration.
func NewFunctionDeclaration(name string, typ *Type, code *Statement) *Declaration {
	return &Declaration{Name: name, Type: typ, Code: code}
}

// DeclarationList builds a sibling chain of declarations with O(1)
// appends via a maintained tail reference.
type DeclarationList struct {
	head *Declaration
	tail *Declaration
}

// Append adds d to the end of the chain.
func (l *DeclarationList) Append(d *Declaration) {
	if l.head == nil {
		l.head, l.tail = d, d
		return
	}
	l.tail.Next = d
	l.tail = d
}

// Head returns the first declaration of the chain, or nil when empty.
func (l *DeclarationList) Head() *Declaration { return l.head }

// StatementKind identifies the variant of a Statement.
type StatementKind int

const (
	StatementDeclaration StatementKind = iota
	StatementExpression
	StatementIfElse
	StatementFor
	StatementPrint
	StatementReturn
	StatementBlock
)

var statementKindNames = map[StatementKind]string{
	StatementDeclaration: "declaration",
	StatementExpression:  "expression",
	StatementIfElse:      "if-else",
	StatementFor:         "for",
	StatementPrint:       "print",
	StatementReturn:      "return",
	StatementBlock:       "block",
}

func (k StatementKind) String() string {
	if name, ok := statementKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(k))
}

// Statement is a tagged variant; only the fields relevant to Kind are
// populated. NextStatement chains statements into lists: a block's inner
// statements, or a print statement's argument expressions.
type Statement struct {
	Kind          StatementKind
	Declaration   *Declaration
	Expression    *Expression
	ForInitial    *Expression
	ForNext       *Expression
	Body          *Statement
	ElseBody      *Statement
	NextStatement *Statement
}

// NewDeclarationStatement wraps a declaration appearing in statement
// position.
func NewDeclarationStatement(d *Declaration) *Statement {
	return &Statement{Kind: StatementDeclaration, Declaration: d}
}

// NewExpressionStatement wraps an expression appearing in statement
// position.
func NewExpressionStatement(e *Expression) *Statement {
	return &Statement{Kind: StatementExpression, Expression: e}
}

// NewForStatement builds a for loop. All three header expressions are nil
// for the fully-empty "for (;;)" form.
func NewForStatement(initial, condition, next *Expression, body *Statement) *Statement {
	return &Statement{
		Kind:       StatementFor,
		Expression: condition,
		ForInitial: initial,
		ForNext:    next,
		Body:       body,
	}
}

// NewIfElseStatement builds an if statement; elseBody may be nil.
func NewIfElseStatement(condition *Expression, body, elseBody *Statement) *Statement {
	return &Statement{
		Kind:       StatementIfElse,
		Expression: condition,
		Body:       body,
		ElseBody:   elseBody,
	}
}

// NewPrintStatement builds an empty print statement; its arguments are
// chained onto NextStatement as expression statements.
func NewPrintStatement() *Statement {
	return &Statement{Kind: StatementPrint}
}

// NewReturnStatement builds a return statement.
func NewReturnStatement(e *Expression) *Statement {
	return &Statement{Kind: StatementReturn, Expression: e}
}

// NewBlockStatement builds an empty block; its statements are chained onto
// NextStatement.
func NewBlockStatement() *Statement {
	return &Statement{Kind: StatementBlock}
}

// StatementList appends statements to a chain hanging off a head statement
// (a block, or a print statement collecting its arguments). The tail is
// maintained so appends do not re-walk the whole chain; appending a
// statement that already carries its own NextStatement chain (a print with
// arguments) advances the tail to the end of that chain.
type StatementList struct {
	head *Statement
	tail *Statement
}

// NewStatementList starts a chain rooted at head.
func NewStatementList(head *Statement) *StatementList {
	tail := head
	for tail.NextStatement != nil {
		tail = tail.NextStatement
	}
	return &StatementList{head: head, tail: tail}
}

// Append links s after the current tail.
func (l *StatementList) Append(s *Statement) {
	l.tail.NextStatement = s
	l.tail = s
	for l.tail.NextStatement != nil {
		l.tail = l.tail.NextStatement
	}
}

// Head returns the statement the chain is rooted at.
func (l *StatementList) Head() *Statement { return l.head }

// ExpressionKind identifies the operator, literal or name an Expression
// node represents.
type ExpressionKind int

const (
	ExprAssignment ExpressionKind = iota
	ExprAnd
	ExprOr
	ExprLess
	ExprLessEqual
	ExprMore
	ExprMoreEqual
	ExprEqual
	ExprNotEqual
	ExprAddition
	ExprSubtraction
	ExprMultiplication
	ExprDivision
	ExprModulo
	ExprPower
	ExprMinus
	ExprNegation
	ExprIncrementation
	ExprDecrementation
	ExprIdentifier
	ExprLiteral
	ExprArray
	ExprSubscript
	ExprFunctionCall
	ExprFunctionArg
)

var expressionKindNames = map[ExpressionKind]string{
	ExprAssignment:     "Assignment",
	ExprAnd:            "And",
	ExprOr:             "Or",
	ExprLess:           "Less",
	ExprLessEqual:      "LessEqual",
	ExprMore:           "More",
	ExprMoreEqual:      "MoreEqual",
	ExprEqual:          "Equal",
	ExprNotEqual:       "NotEqual",
	ExprAddition:       "Addition",
	ExprSubtraction:    "Subtraction",
	ExprMultiplication: "Multiplication",
	ExprDivision:       "Division",
	ExprModulo:         "Modulo",
	ExprPower:          "Power",
	ExprMinus:          "Minus",
	ExprNegation:       "Negation",
	ExprIncrementation: "Incrementation",
	ExprDecrementation: "Decrementation",
	ExprIdentifier:     "Identifier",
	ExprLiteral:        "Literal",
	ExprArray:          "Array",
	ExprSubscript:      "Subscript",
	ExprFunctionCall:   "FunctionCall",
	ExprFunctionArg:    "FunctionArg",
}

func (k ExpressionKind) String() string {
	if name, ok := expressionKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", int(k))
}

// ValueKind identifies the payload variant of a Value.
type ValueKind int

const (
	ValueName ValueKind = iota
	ValueInteger
	ValueFloat
	ValueCharacter
	ValueText
	ValueArray
)

// Value is the literal or name payload of a leaf (or array-literal)
// expression. Only the field matching Kind is meaningful.
type Value struct {
	Kind      ValueKind
	Name      string
	Integer   int64
	Float     float64
	Character byte
	Text      string
	Elements  []*Expression
}

// Expression is a binary tree node. Literals and identifiers have no
// children, unary operators use only Left, and binary operators use both.
type Expression struct {
	Kind  ExpressionKind
	Left  *Expression
	Right *Expression
	Value *Value
}

// NewValueExpression wraps a payload as a leaf expression, tagging names
// as identifiers and everything else as literals.
func NewValueExpression(v *Value) *Expression {
	kind := ExprLiteral
	if v.Kind == ValueName {
		kind = ExprIdentifier
	}
	return &Expression{Kind: kind, Value: v}
}

// AttachLeftmost descends the Left spine to the first node whose Left slot
// is unoccupied and attaches e there. The parser uses it to splice an
// already-parsed operand into a tail built by right-recursion.
func (x *Expression) AttachLeftmost(e *Expression) {
	at := x
	for at.Left != nil {
		at = at.Left
	}
	at.Left = e
}

// AttachRightmost descends the Right spine to the first node whose Right
// slot is unoccupied and attaches e there.
func (x *Expression) AttachRightmost(e *Expression) {
	at := x
	for at.Right != nil {
		at = at.Right
	}
	at.Right = e
}
