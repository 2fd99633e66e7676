package parser

// invertedRelOp maps each relational operator to its De Morgan inverse.
// A single map lookup means there is no "falling through" risk of the kind
// an if/elif chain without an early return can suffer from (see spec.md §9:
// an early implementation of this table lacked a break-on-first-match and
// produced wrong inversions for symmetric operator pairs).
var invertedRelOp = map[string]string{
	"=":  "<>",
	"<>": "=",
	"<":  ">=",
	">=": "<",
	">":  "<=",
	"<=": ">",
}

var invertedLink = map[Link]Link{
	LinkInitial: LinkInitial,
	LinkAnd:     LinkOr,
	LinkOr:      LinkAnd,
}

// InvertConditions returns the De Morgan negation of a condition list,
// preserving the left-to-right link structure (spec.md §3.4, §9).
func InvertConditions(conds []Condition) []Condition {
	out := make([]Condition, len(conds))
	for i, c := range conds {
		out[i] = invertOne(c).WithLink(invertedLink[c.GetLink()])
	}
	return out
}

// invertOne returns the logical negation of a single condition, link
// unchanged (the caller re-applies the inverted link).
func invertOne(c Condition) Condition {
	switch cond := c.(type) {
	case Relation:
		return Relation{Left: cond.Left, Right: cond.Right, Op: invertedRelOp[cond.Op], Link: cond.Link}
	case VariableCond:
		return NotVariableCond{Name: cond.Name, Link: cond.Link}
	case NotVariableCond:
		// Must invert to VariableCond, not another NotVariableCond: an
		// early revision copied the variant unchanged here (spec.md §9).
		return VariableCond{Name: cond.Name, Link: cond.Link}
	case TrueFalseCond:
		return TrueFalseCond{Value: !cond.Value, Link: cond.Link}
	default:
		panic("parser: unhandled condition variant in invertOne")
	}
}
