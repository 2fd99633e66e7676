// Package parser turns a Tiny BASIC token stream into a Program: a mapping
// from context name to an ordered statement list, ready for goto
// elimination (package elim) and emission (package backend).
package parser

// Program is a mapping from context name ("main" or a GOSUB target label's
// string form) to its ordered statement list. Order preserves the sequence
// contexts were first created in, so the driver and the backend iterate
// deterministically instead of depending on Go's randomized map order.
type Program struct {
	Contexts map[string][]Statement
	Order    []string
}

// NewProgram returns an empty Program with its "main" context created.
func NewProgram() *Program {
	p := &Program{Contexts: make(map[string][]Statement)}
	p.ensureContext("main")
	return p
}

// ensureContext creates ctx if it does not already exist, recording it in
// Order so iteration stays deterministic.
func (p *Program) ensureContext(ctx string) {
	if _, ok := p.Contexts[ctx]; !ok {
		p.Contexts[ctx] = []Statement{}
		p.Order = append(p.Order, ctx)
	}
}

// Link is the inter-condition connector in a Condition list.
type Link int

const (
	LinkInitial Link = iota
	LinkAnd
	LinkOr
)

// Statement is the sum type of Tiny BASIC statement forms (spec §3.2).
type Statement interface {
	isStatement()
	Lbl() *int
}

type Base struct {
	Label *int
}

func (Base) isStatement()  {}
func (b Base) Lbl() *int  { return b.Label }

// Let assigns the result of an expression to a variable.
type Let struct {
	Base
	LValue *VariableExpr
	RValue Expr
}

// If executes Statements when Conditions hold.
type If struct {
	Base
	Conditions []Condition
	Statements []Statement
}

// Loop executes Statements repeatedly. A nil Conditions means infinite loop;
// otherwise the loop continues while Conditions hold.
type Loop struct {
	Base
	Conditions []Condition
	Statements []Statement
}

// Goto is an unstructured jump to TargetLabel. Only the elimination pass
// (package elim) may remove Goto nodes from a Program.
type Goto struct {
	Base
	TargetLabel int
}

// Gosub transfers control to the context keyed by TargetLabel's string form.
type Gosub struct {
	Base
	TargetLabel int
}

// Return ends a GOSUB context.
type Return struct{ Base }

// PrintItem is either a literal string or an expression to print.
type PrintItem interface{ isPrintItem() }

type StringItem struct{ Value string }
type ExprItem struct{ Value Expr }

func (StringItem) isPrintItem() {}
func (ExprItem) isPrintItem()   {}

// Print writes a comma-separated list of items.
type Print struct {
	Base
	Items []PrintItem
}

// Input reads a value into each of Variables, in order.
type Input struct {
	Base
	Variables []*VariableExpr
}

// End terminates the program.
type End struct{ Base }

// Break exits the innermost Loop. Only synthesized by goto elimination;
// never produced directly by the parser.
type Break struct{ Base }

// Expr is the sum type of Tiny BASIC expression forms (spec §3.3).
type Expr interface{ isExpr() }

type NumberExpr struct{ Value int }
type VariableExpr struct{ Name string }
type ArithmeticExpr struct {
	Left, Right Expr
	Op          string // one of + - * /
}
type BooleanExpr struct{ Conditions []Condition }
type ParenExpr struct{ Inner Expr }
type NotExpr struct{ Inner Expr }

func (NumberExpr) isExpr()     {}
func (VariableExpr) isExpr()   {}
func (ArithmeticExpr) isExpr() {}
func (BooleanExpr) isExpr()    {}
func (ParenExpr) isExpr()      {}
func (NotExpr) isExpr()        {}

// Condition is the sum type of Tiny BASIC condition forms (spec §3.4).
// Every variant carries a Link describing how it joins the previous
// condition in its enclosing list.
type Condition interface {
	isCondition()
	GetLink() Link
	WithLink(Link) Condition
}

// Relation compares two expressions with a relational operator.
type Relation struct {
	Left, Right Expr
	Op          string // one of < <= > >= = <>
	Link        Link
}

// VariableCond tests a boolean variable for truth.
type VariableCond struct {
	Name string
	Link Link
}

// NotVariableCond tests a boolean variable for falsity.
type NotVariableCond struct {
	Name string
	Link Link
}

// TrueFalseCond is a constant true/false condition, used by normalization
// to wrap bare gotos (spec §4.3).
type TrueFalseCond struct {
	Value bool
	Link  Link
}

func (Relation) isCondition()        {}
func (VariableCond) isCondition()    {}
func (NotVariableCond) isCondition() {}
func (TrueFalseCond) isCondition()   {}

func (r Relation) GetLink() Link        { return r.Link }
func (v VariableCond) GetLink() Link    { return v.Link }
func (n NotVariableCond) GetLink() Link { return n.Link }
func (t TrueFalseCond) GetLink() Link   { return t.Link }

func (r Relation) WithLink(l Link) Condition        { r.Link = l; return r }
func (v VariableCond) WithLink(l Link) Condition    { v.Link = l; return v }
func (n NotVariableCond) WithLink(l Link) Condition { n.Link = l; return n }
func (t TrueFalseCond) WithLink(l Link) Condition   { t.Link = l; return t }
