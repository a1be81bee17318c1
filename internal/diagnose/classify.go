package diagnose

import "strings"

// Predicate reports whether a rule applies to a record.
type Predicate func(r *Record) bool

// Rule pairs a predicate with the pattern it selects.
type Rule struct {
	ID    PatternID
	Match Predicate
}

// Classifier maps records to patterns with an ordered, first-match-wins rule
// list. The order is part of the behavior: several predicates overlap and the
// earlier rule takes the input.
type Classifier struct {
	rules []Rule
}

// NewClassifier builds a classifier over a copy of rules.
func NewClassifier(rules []Rule) *Classifier {
	c := &Classifier{rules: make([]Rule, len(rules))}
	copy(c.rules, rules)
	return c
}

// Classify returns the pattern of the first matching rule, or Generic.
func (c *Classifier) Classify(r Record) PatternID {
	if i := c.Trace(r); i >= 0 {
		return c.rules[i].ID
	}
	return Generic
}

// Trace returns the index of the rule that fires for r, or -1.
func (c *Classifier) Trace(r Record) int {
	lowered := r
	lowered.Message = strings.ToLower(r.Message)
	lowered.Raw = strings.ToLower(r.Raw)
	for i, rule := range c.rules {
		if rule.Match(&lowered) {
			return i
		}
	}
	return -1
}

// Patterns lists the rule order.
func (c *Classifier) Patterns() []PatternID {
	ids := make([]PatternID, len(c.rules))
	for i, rule := range c.rules {
		ids[i] = rule.ID
	}
	return ids
}

// Predicates see Message and Raw already lower-cased, so substrings passed to
// msgHas and rawHas must be lower case.

// msgHas matches when the message contains every substring.
func msgHas(subs ...string) Predicate {
	return func(r *Record) bool {
		return containsAll(r.Message, subs)
	}
}

// rawHas matches when the full text contains every substring.
func rawHas(subs ...string) Predicate {
	return func(r *Record) bool {
		return containsAll(r.Raw, subs)
	}
}

func codeIs(codes ...string) Predicate {
	return func(r *Record) bool {
		for _, c := range codes {
			if r.SystemCode == c {
				return true
			}
		}
		return false
	}
}

func kindIs(kind string) Predicate {
	return func(r *Record) bool {
		return r.Kind == kind
	}
}

func anyOf(preds ...Predicate) Predicate {
	return func(r *Record) bool {
		for _, p := range preds {
			if p(r) {
				return true
			}
		}
		return false
	}
}

func allOf(preds ...Predicate) Predicate {
	return func(r *Record) bool {
		for _, p := range preds {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

func containsAll(s string, subs []string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
