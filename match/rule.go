package match

import "fmt"

// Rule is a named matcher whose body is bound after construction.
//
// Rules allow grammars with mutually referencing productions: create the
// rule, use it inside other matchers, then Bind its body. A rule must be
// bound exactly once and before it is first matched.
type Rule struct {
	name string
	m    Matcher
}

// NewRule returns a new, unbound rule.
func NewRule(name string) *Rule {
	return &Rule{name: name}
}

// Name returns the rule name.
func (r *Rule) Name() string { return r.name }

// Bind sets the rule body. Panics if the rule is already bound.
func (r *Rule) Bind(m Matcher) {
	if r.m != nil {
		panic(fmt.Sprintf("match: rule %q bound twice", r.name))
	}
	r.m = m
}

// Bound returns true if the rule has a body.
func (r *Rule) Bound() bool { return r.m != nil }

// Match forwards to the bound body. Panics if the rule is unbound.
func (r *Rule) Match(in *Input, p int) int {
	if r.m == nil {
		panic(fmt.Sprintf("match: rule %q is not bound", r.name))
	}
	return r.m.Match(in, p)
}
