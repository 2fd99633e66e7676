package parser

import (
	"fmt"
	"strconv"

	"github.com/tinybasic-tools/degoto/lexer"
)

// Parser consumes a token stream from lexer.Lexer and builds a Program.
// It performs no opportunistic GOTO/IF folding (spec.md §9 explicitly
// allows omitting it); every Goto node it emits is handled later by
// package elim.
type Parser struct {
	lex  *lexer.Lexer
	curr lexer.Token

	program *Program
	context string

	pendingGosubs map[int]bool
	seenLabels    map[int]bool
}

// NewParser returns a Parser ready to consume src.
func NewParser(src string) *Parser {
	p := &Parser{
		lex:           lexer.NewLexer(src),
		program:       NewProgram(),
		context:       "main",
		pendingGosubs: make(map[int]bool),
		seenLabels:    make(map[int]bool),
	}
	return p
}

// Parse consumes the entire token stream and returns the resulting Program,
// or the first LexError/ParseError encountered.
func (p *Parser) Parse() (*Program, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}

	for {
		stmt, err := p.parseLine()
		if err != nil {
			return nil, err
		}
		if stmt == nil {
			break
		}

		if label := stmt.Lbl(); label != nil {
			if p.seenLabels[*label] {
				return nil, p.errorf("duplicate label %d", *label)
			}
			p.seenLabels[*label] = true
			if p.pendingGosubs[*label] {
				p.context = strconv.Itoa(*label)
				p.program.ensureContext(p.context)
			}
		}

		p.program.Contexts[p.context] = append(p.program.Contexts[p.context], stmt)
	}

	if err := p.checkTargetsResolve(); err != nil {
		return nil, err
	}
	return p.program, nil
}

func (p *Parser) advance() error {
	tok, err := p.lex.NextToken()
	if err != nil {
		return err
	}
	p.curr = tok
	return nil
}

func (p *Parser) errorf(format string, args ...any) error {
	return &ParseError{Msg: fmt.Sprintf(format, args...), Line: p.curr.Line, Col: p.curr.Column}
}

func (p *Parser) expect(typ lexer.TokenType) error {
	if p.curr.Type != typ {
		return p.errorf("expected %s, got %s", typ, p.curr.Type)
	}
	return nil
}

func (p *Parser) parseLine() (Statement, error) {
	for p.curr.Type == lexer.COMMENT {
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if p.curr.Type == lexer.EOF {
		return nil, nil
	}

	var label *int
	if p.curr.Type == lexer.NUMBER {
		n, _ := strconv.Atoi(p.curr.Literal)
		label = &n
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	return p.parseStatement(label)
}

func (p *Parser) parseStatement(label *int) (Statement, error) {
	if p.curr.Type == lexer.EOF {
		return nil, nil
	}
	if err := p.expect(lexer.STATEMENT); err != nil {
		return nil, err
	}
	keyword := p.curr.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}

	switch keyword {
	case "RETURN":
		return &Return{Base: Base{Label: label}}, nil
	case "END":
		return &End{Base: Base{Label: label}}, nil
	case "LET":
		return p.parseLet(label)
	case "PRINT":
		return p.parsePrint(label)
	case "IF":
		return p.parseIf(nil, label)
	case "GOTO":
		return p.parseGoto(label)
	case "GOSUB":
		return p.parseGosub(label)
	case "INPUT":
		return p.parseInput(label)
	case "CLEAR", "LIST", "RUN":
		return nil, p.errorf("unsupported statement %s", keyword)
	default:
		return nil, p.errorf("unexpected statement %s", keyword)
	}
}

func (p *Parser) parseLet(label *int) (Statement, error) {
	if err := p.expect(lexer.VARIABLE); err != nil {
		return nil, err
	}
	lval := &VariableExpr{Name: p.curr.Literal}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.curr.Type != lexer.RELATION || p.curr.Literal != "=" {
		return nil, p.errorf("expected = in LET, got %s", p.curr.Literal)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	rval, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &Let{Base: Base{Label: label}, LValue: lval, RValue: rval}, nil
}

func (p *Parser) parsePrint(label *int) (Statement, error) {
	items := make([]PrintItem, 0, 1)
	for {
		if p.curr.Type == lexer.STRING {
			items = append(items, StringItem{Value: p.curr.Literal})
			if err := p.advance(); err != nil {
				return nil, err
			}
		} else {
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			items = append(items, ExprItem{Value: e})
		}
		if p.curr.Type == lexer.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	return &Print{Base: Base{Label: label}, Items: items}, nil
}

// parseIf parses `IF expr relop expr THEN statement`, recursing for chained
// `IF ... THEN IF ...` to accumulate an AND-linked condition list (Tiny
// BASIC source never produces OR; that only arises from synthesized
// conditions during goto elimination).
func (p *Parser) parseIf(conds []Condition, label *int) (Statement, error) {
	left, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.RELATION); err != nil {
		return nil, err
	}
	op := p.curr.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}
	right, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	link := LinkInitial
	if conds != nil {
		link = LinkAnd
	}
	conds = append(conds, Relation{Left: left, Right: right, Op: op, Link: link})

	if p.curr.Type != lexer.STATEMENT || p.curr.Literal != "THEN" {
		return nil, p.errorf("expected THEN")
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	if p.curr.Type == lexer.STATEMENT && p.curr.Literal == "GOTO" {
		if err := p.advance(); err != nil {
			return nil, err
		}
		goto_, err := p.parseGoto(label)
		if err != nil {
			return nil, err
		}
		return &If{Base: Base{Label: label}, Conditions: conds, Statements: []Statement{goto_}}, nil
	}

	if p.curr.Type == lexer.STATEMENT && p.curr.Literal == "IF" {
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.parseIf(conds, label)
	}

	inner, err := p.parseStatement(nil)
	if err != nil {
		return nil, err
	}
	return &If{Base: Base{Label: label}, Conditions: conds, Statements: []Statement{inner}}, nil
}

func (p *Parser) parseGoto(label *int) (Statement, error) {
	if err := p.expect(lexer.NUMBER); err != nil {
		return nil, err
	}
	n, _ := strconv.Atoi(p.curr.Literal)
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &Goto{Base: Base{Label: label}, TargetLabel: n}, nil
}

func (p *Parser) parseGosub(label *int) (Statement, error) {
	if err := p.expect(lexer.NUMBER); err != nil {
		return nil, err
	}
	n, _ := strconv.Atoi(p.curr.Literal)
	if err := p.advance(); err != nil {
		return nil, err
	}
	p.pendingGosubs[n] = true
	p.program.ensureContext(strconv.Itoa(n))
	return &Gosub{Base: Base{Label: label}, TargetLabel: n}, nil
}

func (p *Parser) parseInput(label *int) (Statement, error) {
	vars := make([]*VariableExpr, 0, 1)
	for {
		if err := p.expect(lexer.VARIABLE); err != nil {
			return nil, err
		}
		vars = append(vars, &VariableExpr{Name: p.curr.Literal})
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.curr.Type == lexer.COMMA {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	return &Input{Base: Base{Label: label}, Variables: vars}, nil
}

func (p *Parser) parseExpr() (Expr, error) {
	node, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.curr.Type == lexer.ARITHMETIC && (p.curr.Literal == "+" || p.curr.Literal == "-") {
		op := p.curr.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		node = &ArithmeticExpr{Left: node, Right: right, Op: op}
	}
	return node, nil
}

func (p *Parser) parseTerm() (Expr, error) {
	node, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.curr.Type == lexer.ARITHMETIC && (p.curr.Literal == "*" || p.curr.Literal == "/") {
		op := p.curr.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		node = &ArithmeticExpr{Left: node, Right: right, Op: op}
	}
	return node, nil
}

func (p *Parser) parseFactor() (Expr, error) {
	switch p.curr.Type {
	case lexer.VARIABLE:
		name := p.curr.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &VariableExpr{Name: name}, nil
	case lexer.NUMBER:
		n, _ := strconv.Atoi(p.curr.Literal)
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &NumberExpr{Value: n}, nil
	case lexer.LPAREN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ParenExpr{Inner: inner}, nil
	default:
		return nil, p.errorf("expected expression, got %s", p.curr.Type)
	}
}

// checkTargetsResolve validates that every Goto/Gosub target names a label
// actually present in the program (spec.md §3.4 invariant).
func (p *Parser) checkTargetsResolve() error {
	var walk func([]Statement) error
	walk = func(stmts []Statement) error {
		for _, s := range stmts {
			switch st := s.(type) {
			case *Goto:
				if !p.seenLabels[st.TargetLabel] {
					return &ParseError{Msg: fmt.Sprintf("unresolved GOTO target %d", st.TargetLabel)}
				}
			case *Gosub:
				if !p.seenLabels[st.TargetLabel] {
					return &ParseError{Msg: fmt.Sprintf("unresolved GOSUB target %d", st.TargetLabel)}
				}
			case *If:
				if err := walk(st.Statements); err != nil {
					return err
				}
			case *Loop:
				if err := walk(st.Statements); err != nil {
					return err
				}
			}
		}
		return nil
	}
	for _, ctx := range p.program.Order {
		if err := walk(p.program.Contexts[ctx]); err != nil {
			return err
		}
	}
	return nil
}
