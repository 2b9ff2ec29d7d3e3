package parser

import (
	"strconv"

	"github.com/sleuth-query/sleuth/internal/domain"
)

type parser struct {
	toks []token
	pos  int
}

// Parse tokenizes and parses a full Sleuth program, returning every
// statement it contains in source order.
func Parse(input string) ([]domain.Query, error) {
	toks, err := lex(input)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	return p.parseProgram()
}

func (p *parser) cur() token  { return p.toks[p.pos] }
func (p *parser) advance() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) atEOF() bool { return p.cur().kind == tokEOF }

func (p *parser) atKeyword(kw string) bool {
	t := p.cur()
	return t.kind == tokKeyword && t.text == kw
}

func (p *parser) atPunct(sym string) bool {
	t := p.cur()
	return t.kind == tokPunct && t.text == sym
}

func (p *parser) expectKeyword(rule, kw string) error {
	if !p.atKeyword(kw) {
		return &domain.ParseError{Rule: rule, Detail: "expected " + kw}
	}
	p.advance()
	return nil
}

func (p *parser) expectPunct(rule, sym string) error {
	if !p.atPunct(sym) {
		return &domain.ParseError{Rule: rule, Detail: "expected " + sym}
	}
	p.advance()
	return nil
}

func (p *parser) expectIdent(rule string) (string, error) {
	t := p.cur()
	if t.kind != tokIdent {
		return "", &domain.ParseError{Rule: rule, Detail: "expected identifier"}
	}
	p.advance()
	return t.text, nil
}

// program := statement (';' statement)* ';'?
func (p *parser) parseProgram() ([]domain.Query, error) {
	var queries []domain.Query

	for !p.atEOF() {
		q, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		queries = append(queries, q)

		if p.atPunct(";") {
			p.advance()
			continue
		}
		break
	}

	if !p.atEOF() {
		return nil, &domain.ParseError{Rule: "program", Detail: "trailing input after last statement"}
	}
	if len(queries) == 0 {
		return nil, &domain.ParseError{Rule: "program", Detail: "empty program"}
	}
	return queries, nil
}

// statement := select_query | register_query
func (p *parser) parseStatement() (domain.Query, error) {
	switch {
	case p.atKeyword("SELECT"):
		return p.parseSelectQuery()
	case p.atKeyword("REGISTER"):
		return p.parseRegisterQuery()
	default:
		return nil, &domain.ParseError{Rule: "statement", Detail: "expected SELECT or REGISTER"}
	}
}

// select_query := 'SELECT' selection_list ('FROM' source_list)? ('WHERE' binding_list)?
func (p *parser) parseSelectQuery() (domain.Query, error) {
	if err := p.expectKeyword("select_query", "SELECT"); err != nil {
		return nil, err
	}

	selections, err := p.parseSelectionList()
	if err != nil {
		return nil, err
	}

	var sources []string
	if p.atKeyword("FROM") {
		p.advance()
		sources, err = p.parseSourceList()
		if err != nil {
			return nil, err
		}
	}

	var bindings []domain.Binding
	if p.atKeyword("WHERE") {
		p.advance()
		bindings, err = p.parseBindingList()
		if err != nil {
			return nil, err
		}
	}

	return domain.SelectQuery{Select: selections, Source: sources, Bindings: bindings}, nil
}

// register_query := 'REGISTER' 'CONTRACT' identifier 'AT' address
//
//	('WITH' 'INTERFACE' '[' string (',' string)* ']')?
func (p *parser) parseRegisterQuery() (domain.Query, error) {
	const rule = "register_query"
	if err := p.expectKeyword(rule, "REGISTER"); err != nil {
		return nil, err
	}
	if err := p.expectKeyword(rule, "CONTRACT"); err != nil {
		return nil, err
	}
	name, err := p.expectIdent(rule)
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword(rule, "AT"); err != nil {
		return nil, err
	}

	t := p.cur()
	if t.kind != tokAddress {
		return nil, &domain.ParseError{Rule: rule, Detail: "expected address"}
	}
	address := t.text
	p.advance()

	var iface []string
	if p.atKeyword("WITH") {
		p.advance()
		if err := p.expectKeyword(rule, "INTERFACE"); err != nil {
			return nil, err
		}
		if err := p.expectPunct(rule, "["); err != nil {
			return nil, err
		}
		for {
			st := p.cur()
			if st.kind != tokString {
				return nil, &domain.ParseError{Rule: rule, Detail: "expected interface signature string"}
			}
			iface = append(iface, st.text)
			p.advance()
			if p.atPunct(",") {
				p.advance()
				continue
			}
			break
		}
		if err := p.expectPunct(rule, "]"); err != nil {
			return nil, err
		}
	}

	return domain.RegisterQuery{Source: name, Address: address, Interface: iface}, nil
}

// selection_list := selection_item (',' selection_item)*
func (p *parser) parseSelectionList() ([]domain.Selection, error) {
	var items []domain.Selection
	for {
		item, err := p.parseSelectionItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if p.atPunct(",") {
			p.advance()
			continue
		}
		break
	}
	return items, nil
}

// selection_item := full_select_var | literal
func (p *parser) parseSelectionItem() (domain.Selection, error) {
	t := p.cur()
	switch t.kind {
	case tokNumber, tokString, tokAddress:
		return p.parseLiteral()
	case tokIdent:
		return p.parseFullSelectVarSelection()
	case tokPunct:
		if t.text == "*" {
			return p.parseFullSelectVarSelection()
		}
	}
	return domain.Selection{}, &domain.ParseError{Rule: "selection_item", Detail: "unmatched token"}
}

// literal := number | string | address
func (p *parser) parseLiteral() (domain.Selection, error) {
	t := p.cur()
	switch t.kind {
	case tokNumber:
		n, err := strconv.ParseUint(t.text, 10, 64)
		if err != nil {
			return domain.Selection{}, &domain.ParseError{Rule: "literal", Detail: err.Error()}
		}
		p.advance()
		return domain.Selection{Kind: domain.SelNumber, Number: n}, nil
	case tokString:
		p.advance()
		return domain.Selection{Kind: domain.SelString, Str: t.text}, nil
	case tokAddress:
		p.advance()
		return domain.Selection{Kind: domain.SelAddress, Address: t.text}, nil
	default:
		return domain.Selection{}, &domain.ParseError{Rule: "literal", Detail: "expected number, string or address"}
	}
}

// full_select_var := (source '.')? (variable | wildcard) ('(' selection_list? ')')?
func (p *parser) parseFullSelectVarSelection() (domain.Selection, error) {
	sv, source, params, err := p.parseFullSelectVar()
	if err != nil {
		return domain.Selection{}, err
	}
	return domain.Selection{Kind: domain.SelVar, Var: sv, Source: source, Params: params}, nil
}

func (p *parser) parseFullSelectVar() (domain.SelectVar, *string, []domain.Selection, error) {
	const rule = "full_select_var"

	var source *string
	if p.cur().kind == tokIdent && p.peekPunct(1, ".") {
		name := p.cur().text
		source = &name
		p.advance() // source
		p.advance() // '.'
	}

	var sv domain.SelectVar
	switch {
	case p.cur().kind == tokIdent:
		sv = domain.SelectVar{Kind: domain.VarNamed, Name: p.cur().text}
		p.advance()
	case p.atPunct("*"):
		sv = domain.SelectVar{Kind: domain.VarWildcard}
		p.advance()
	default:
		return domain.SelectVar{}, nil, nil, &domain.ParseError{Rule: rule, Detail: "expected variable or wildcard"}
	}

	var params []domain.Selection
	if p.atPunct("(") {
		p.advance()
		if !p.atPunct(")") {
			items, err := p.parseSelectionList()
			if err != nil {
				return domain.SelectVar{}, nil, nil, err
			}
			params = items
		} else {
			params = []domain.Selection{}
		}
		if err := p.expectPunct(rule, ")"); err != nil {
			return domain.SelectVar{}, nil, nil, err
		}
	}

	return sv, source, params, nil
}

func (p *parser) peekPunct(offset int, sym string) bool {
	idx := p.pos + offset
	if idx >= len(p.toks) {
		return false
	}
	t := p.toks[idx]
	return t.kind == tokPunct && t.text == sym
}

// source_list := source (',' source)*
func (p *parser) parseSourceList() ([]string, error) {
	var sources []string
	for {
		name, err := p.expectIdent("source_list")
		if err != nil {
			return nil, err
		}
		sources = append(sources, name)
		if p.atPunct(",") {
			p.advance()
			continue
		}
		break
	}
	return sources, nil
}

// binding_list := binding (',' binding)*
func (p *parser) parseBindingList() ([]domain.Binding, error) {
	var bindings []domain.Binding
	for {
		b, err := p.parseBinding()
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, b)
		if p.atPunct(",") {
			p.advance()
			continue
		}
		break
	}
	return bindings, nil
}

// binding := full_select_var ('IN' '(' literal_list ')' | '=' selection_item)
func (p *parser) parseBinding() (domain.Binding, error) {
	const rule = "binding"

	sv, source, _, err := p.parseFullSelectVar()
	if err != nil {
		return domain.Binding{}, err
	}

	switch {
	case p.atKeyword("IN"):
		p.advance()
		if err := p.expectPunct(rule, "("); err != nil {
			return domain.Binding{}, err
		}
		literals, err := p.parseLiteralList()
		if err != nil {
			return domain.Binding{}, err
		}
		if err := p.expectPunct(rule, ")"); err != nil {
			return domain.Binding{}, err
		}
		return domain.Binding{Var: sv, Source: source, Expr: domain.Selection{Kind: domain.SelMulti, Multi: literals}}, nil

	case p.atPunct("="):
		p.advance()
		expr, err := p.parseSelectionItem()
		if err != nil {
			return domain.Binding{}, err
		}
		return domain.Binding{Var: sv, Source: source, Expr: expr}, nil

	default:
		return domain.Binding{}, &domain.ParseError{Rule: rule, Detail: "expected IN or ="}
	}
}

// literal_list := literal (',' literal)*
func (p *parser) parseLiteralList() ([]domain.Selection, error) {
	var items []domain.Selection
	for {
		lit, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		items = append(items, lit)
		if p.atPunct(",") {
			p.advance()
			continue
		}
		break
	}
	return items, nil
}
