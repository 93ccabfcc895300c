package parser

import (
	"strconv"

	"hex/pkg/ast"
	"hex/pkg/lexer"
	"hex/pkg/object"
	"hex/pkg/token"
)

const (
	_ int = iota
	LOWEST
	EQUALS      // == !=
	LESSGREATER // > or <
	SUM         // + -
	PRODUCT     // * / %
	PREFIX      // -X
	CALL        // name(X)
	MEMBER      // object.property, object[index], module::function
)

var precedences = map[token.TokenType]int{
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.LTE:      LESSGREATER,
	token.GTE:      LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.SLASH:    PRODUCT,
	token.ASTERISK: PRODUCT,
	token.PERCENT:  PRODUCT,
	token.LPAREN:   CALL,
	token.DOT:      MEMBER,
	token.LBRACKET: MEMBER,
	token.SCOPE:    MEMBER,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

type Parser struct {
	l      *lexer.Lexer
	errors []*object.Error

	curToken  token.Token
	peekToken token.Token

	// Open ( and [ groups. While positive, newlines are plain
	// whitespace instead of statement separators, so expressions can
	// span lines inside an argument list, grouping or collection.
	depth int

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{
		l:      l,
		errors: []*object.Error{},
	}

	p.prefixParseFns = make(map[token.TokenType]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.NUMBER, p.parseNumberLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(token.LBRACKET, p.parseCollectionLiteral)
	p.registerPrefix(token.IF, p.parseIfExpression)
	p.registerPrefix(token.TRUE, p.parseBoolean)
	p.registerPrefix(token.FALSE, p.parseBoolean)
	p.registerPrefix(token.NIL, p.parseNilLiteral)

	p.infixParseFns = make(map[token.TokenType]infixParseFn)
	p.registerInfix(token.PLUS, p.parseInfixExpression)
	p.registerInfix(token.MINUS, p.parseInfixExpression)
	p.registerInfix(token.SLASH, p.parseInfixExpression)
	p.registerInfix(token.ASTERISK, p.parseInfixExpression)
	p.registerInfix(token.PERCENT, p.parseInfixExpression)
	p.registerInfix(token.EQ, p.parseInfixExpression)
	p.registerInfix(token.NOT_EQ, p.parseInfixExpression)
	p.registerInfix(token.LT, p.parseInfixExpression)
	p.registerInfix(token.GT, p.parseInfixExpression)
	p.registerInfix(token.LTE, p.parseInfixExpression)
	p.registerInfix(token.GTE, p.parseInfixExpression)
	p.registerInfix(token.LPAREN, p.parseCallExpression)
	p.registerInfix(token.SCOPE, p.parseModuleCallExpression)
	p.registerInfix(token.DOT, p.parseMemberExpression)
	p.registerInfix(token.LBRACKET, p.parseIndexExpression)

	// Read two tokens, so curToken and peekToken are both set
	p.nextToken()
	p.nextToken()

	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
	for p.depth > 0 && p.peekToken.Type == token.NEWLINE {
		p.peekToken = p.l.NextToken()
	}
}

// enterGroup marks an open ( or [. Any newline already buffered in
// peekToken is dropped so the group can start on the next line.
func (p *Parser) enterGroup() {
	p.depth++
	for p.peekToken.Type == token.NEWLINE {
		p.peekToken = p.l.NextToken()
	}
}

// leaveGroup is called before consuming the closing token, so the
// newline after ) or ] separates statements again.
func (p *Parser) leaveGroup() {
	p.depth--
}

func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	program.Statements = []ast.Statement{}

	for p.curToken.Type != token.EOF {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.VAL:
		return p.parseValStatement()
	case token.INCLUDE:
		return p.parseIncludeStatement()
	case token.NEWLINE, token.SEMICOLON:
		return nil
	case token.ILLEGAL:
		p.lexError(p.curToken)
		return nil
	case token.IDENT:
		if p.peekTokenIs(token.ASSIGN) {
			return p.parseAssignmentStatement()
		}
		fallthrough
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseValStatement() *ast.ValStatement {
	stmt := &ast.ValStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}

	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}

	p.nextToken() // move to value
	stmt.Value = p.parseExpression(LOWEST)

	p.skipStatementEnd()

	return stmt
}

func (p *Parser) parseAssignmentStatement() *ast.AssignmentStatement {
	stmt := &ast.AssignmentStatement{Token: p.curToken}
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}

	p.nextToken() // move to value
	stmt.Value = p.parseExpression(LOWEST)

	p.skipStatementEnd()

	return stmt
}

func (p *Parser) parseIncludeStatement() *ast.IncludeStatement {
	stmt := &ast.IncludeStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}

	stmt.Module = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	p.skipStatementEnd()

	return stmt
}

func (p *Parser) parseExpressionStatement() *ast.ExpressionStatement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}

	stmt.Expression = p.parseExpression(LOWEST)

	p.skipStatementEnd()

	return stmt
}

// skipStatementEnd consumes an optional trailing newline or semicolon.
// Separators are never required; the grammar itself bounds statements.
func (p *Parser) skipStatementEnd() {
	if p.peekTokenIs(token.NEWLINE) || p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
}

func (p *Parser) parseExpression(precedence int) ast.Expression {
	if p.curTokenIs(token.ILLEGAL) {
		p.lexError(p.curToken)
		return nil
	}

	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken)
		return nil
	}
	leftExp := prefix()

	for !p.peekTokenIs(token.NEWLINE) && !p.peekTokenIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}

		p.nextToken()

		leftExp = infix(leftExp)
	}

	return leftExp
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	lit := &ast.NumberLiteral{Token: p.curToken}

	value, err := strconv.ParseFloat(p.curToken.Literal, 64)
	if err != nil {
		p.parseError(p.curToken, "could not parse %q as number", p.curToken.Literal)
		return nil
	}

	lit.Value = value
	return lit
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseBoolean() ast.Expression {
	return &ast.Boolean{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parseNilLiteral() ast.Expression {
	return &ast.NilLiteral{Token: p.curToken}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expression := &ast.PrefixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
	}

	p.nextToken()

	expression.Right = p.parseExpression(PREFIX)

	return expression
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expression := &ast.InfixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
		Left:     left,
	}

	precedence := p.curPrecedence()
	p.nextToken()
	expression.Right = p.parseExpression(precedence)

	return expression
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.enterGroup()
	p.nextToken()

	exp := p.parseExpression(LOWEST)

	p.leaveGroup()
	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	return exp
}

func (p *Parser) parseIfExpression() ast.Expression {
	expression := &ast.IfExpression{Token: p.curToken}

	p.nextToken()
	expression.Condition = p.parseExpression(LOWEST)

	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	expression.Consequence = p.parseBlockStatement()

	if p.peekTokenIs(token.ELSE) {
		p.nextToken() // consume ELSE

		// else if chains parse as a nested IfExpression wrapped in an
		// ExpressionStatement to fit the Statement interface.
		if p.peekTokenIs(token.IF) {
			p.nextToken()
			elseIf := p.parseIfExpression()
			if elseIf == nil {
				return nil
			}
			expression.Alternative = &ast.ExpressionStatement{
				Token:      elseIf.(*ast.IfExpression).Token,
				Expression: elseIf,
			}
			return expression
		}

		if !p.expectPeek(token.LBRACE) {
			return nil
		}
		expression.Alternative = p.parseBlockStatement()
	}

	return expression
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.curToken}
	block.Statements = []ast.Statement{}

	p.nextToken() // consume '{'

	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.nextToken()
	}

	if p.curTokenIs(token.EOF) {
		p.parseError(p.curToken, "expected } to close block, got end of input")
		return nil
	}

	return block
}

// parseModuleCallExpression handles module::function(args). The left side
// must be a plain identifier naming the module.
func (p *Parser) parseModuleCallExpression(left ast.Expression) ast.Expression {
	expression := &ast.ModuleCallExpression{Token: p.curToken}

	module, ok := left.(*ast.Identifier)
	if !ok {
		p.parseError(p.curToken, "expected module name before ::, got %s", left.String())
		return nil
	}
	expression.Module = module

	if !p.expectPeek(token.IDENT) {
		return nil
	}

	expression.Function = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}

	expression.Arguments = p.parseCallArguments()
	return expression
}

func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	exp := &ast.CallExpression{Token: p.curToken, Function: function}
	exp.Arguments = p.parseCallArguments()
	return exp
}

func (p *Parser) parseCallArguments() []ast.Expression {
	args := []ast.Expression{}

	p.enterGroup()
	if p.peekTokenIs(token.RPAREN) {
		p.leaveGroup()
		p.nextToken()
		return args
	}

	p.nextToken()
	args = append(args, p.parseExpression(LOWEST))

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		args = append(args, p.parseExpression(LOWEST))
	}

	p.leaveGroup()
	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	return args
}

func (p *Parser) parseCollectionLiteral() ast.Expression {
	lit := &ast.CollectionLiteral{Token: p.curToken, Entries: []ast.CollectionEntry{}}

	p.enterGroup()
	if p.peekTokenIs(token.RBRACKET) {
		p.leaveGroup()
		p.nextToken()
		return lit
	}

	for {
		p.nextToken()

		entry := ast.CollectionEntry{}

		// Keyed entries: name = expr or 1 = expr. Anything else is a
		// positional entry.
		switch {
		case p.curTokenIs(token.IDENT) && p.peekTokenIs(token.ASSIGN):
			entry.Key = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
			p.nextToken() // '='
			p.nextToken()
			entry.Value = p.parseExpression(LOWEST)
		case p.curTokenIs(token.NUMBER) && p.peekTokenIs(token.ASSIGN):
			key := p.parseNumberLiteral()
			if key == nil {
				p.leaveGroup()
				return nil
			}
			entry.Key = key
			p.nextToken() // '='
			p.nextToken()
			entry.Value = p.parseExpression(LOWEST)
		default:
			entry.Value = p.parseExpression(LOWEST)
		}

		if entry.Value == nil {
			p.leaveGroup()
			return nil
		}
		lit.Entries = append(lit.Entries, entry)

		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()

		// Trailing comma before the closing bracket
		if p.peekTokenIs(token.RBRACKET) {
			break
		}
	}

	p.leaveGroup()
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}

	return lit
}

func (p *Parser) parseMemberExpression(object ast.Expression) ast.Expression {
	expression := &ast.MemberExpression{Token: p.curToken, Object: object}

	if !p.expectPeek(token.IDENT) {
		return nil
	}

	expression.Property = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
	return expression
}

func (p *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	expression := &ast.IndexExpression{Token: p.curToken, Left: left}

	p.enterGroup()
	p.nextToken()
	expression.Index = p.parseExpression(LOWEST)

	p.leaveGroup()
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}

	return expression
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peekToken.Type == t
}

func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

// Errors returns every lex and parse failure recorded so far, in source
// order. A non-empty result means no usable AST was produced.
func (p *Parser) Errors() []*object.Error {
	return p.errors
}

func (p *Parser) peekError(t token.TokenType) {
	if p.peekToken.Type == token.ILLEGAL {
		p.lexError(p.peekToken)
		return
	}
	p.errors = append(p.errors, object.NewErrorAt(object.ParseError,
		p.peekToken.Line, p.peekToken.Column,
		"expected next token to be %s, got %s instead", t, p.peekToken.Type))
}

func (p *Parser) noPrefixParseFnError(tok token.Token) {
	p.errors = append(p.errors, object.NewErrorAt(object.ParseError,
		tok.Line, tok.Column, "unexpected token %s", tok.Type))
}

func (p *Parser) lexError(tok token.Token) {
	p.errors = append(p.errors, object.NewErrorAt(object.LexError,
		tok.Line, tok.Column, "%s", tok.Literal))
}

func (p *Parser) parseError(tok token.Token, format string, a ...interface{}) {
	p.errors = append(p.errors, object.NewErrorAt(object.ParseError,
		tok.Line, tok.Column, format, a...))
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) registerPrefix(tokenType token.TokenType, fn prefixParseFn) {
	p.prefixParseFns[tokenType] = fn
}

func (p *Parser) registerInfix(tokenType token.TokenType, fn infixParseFn) {
	p.infixParseFns[tokenType] = fn
}
