package feature

import (
	"fmt"
	"strings"
)

/*
Side identifies the branch a rule routes a value to. Undecided is
returned when the rule cannot be applied to the value, because it is
missing or of an incompatible kind; traversals use it to stop at the
current node instead of failing.
*/
type Side int

const (
	// Left is the branch for values failing the rule predicate
	Left Side = iota
	// Right is the branch for values satisfying the rule predicate
	Right
	// Undecided means the rule cannot be applied to the value
	Undecided
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "undecided"
}

/*
Rule represents the split predicate of a tree node: it decides the
branch a single feature value is routed to.

Its Evaluate method takes a Value and returns the Side the value
belongs to, or Undecided when the value cannot be evaluated.
*/
type Rule interface {
	Evaluate(v Value) Side
}

/*
Threshold is the Rule for numeric and ordinal features: values
strictly greater than its Value are routed to the right branch, the
rest to the left one.
*/
type Threshold struct {
	Value float64
}

/*
Evaluate returns Right when the given value is a number strictly
greater than the threshold, Left when it is a number lower or equal,
and Undecided when it is missing or not a number.
*/
func (t Threshold) Evaluate(v Value) Side {
	n, ok := v.Number()
	if !ok {
		return Undecided
	}
	if n > t.Value {
		return Right
	}
	return Left
}

func (t Threshold) String() string {
	return fmt.Sprintf("> %v", t.Value)
}

/*
Membership is the Rule for categorical features: values belonging to
its Members are routed to the right branch, the rest to the left one.
*/
type Membership struct {
	Members []string
}

/*
Evaluate returns Right when the given value is a category included in
the members of the rule, Left when it is a category not included, and
Undecided when it is missing or not a category.
*/
func (m Membership) Evaluate(v Value) Side {
	c, ok := v.Category()
	if !ok {
		return Undecided
	}
	for _, mc := range m.Members {
		if mc == c {
			return Right
		}
	}
	return Left
}

func (m Membership) String() string {
	return fmt.Sprintf("in {%s}", strings.Join(m.Members, ", "))
}
