package feature

import "fmt"

type valueKind int

const (
	missingValue valueKind = iota
	numberValue
	categoryValue
)

/*
Value is an explicitly optional feature value: a number, a category or
missing. Operations that need a specific kind ask for it and receive a
boolean instead of relying on runtime failures for absent or
incompatible values.
*/
type Value struct {
	kind     valueKind
	number   float64
	category string
}

/*
Num takes a float64 and returns a numeric Value holding it.
*/
func Num(n float64) Value {
	return Value{kind: numberValue, number: n}
}

/*
Cat takes a string and returns a categorical Value holding it.
*/
func Cat(c string) Value {
	return Value{kind: categoryValue, category: c}
}

/*
Missing returns the absent Value. It is also the zero value of the
Value type.
*/
func Missing() Value {
	return Value{}
}

/*
IsMissing returns whether the value is absent.
*/
func (v Value) IsMissing() bool {
	return v.kind == missingValue
}

/*
Number returns the float64 the value holds and true, or 0 and false
when the value is missing or holds a category.
*/
func (v Value) Number() (float64, bool) {
	return v.number, v.kind == numberValue
}

/*
Category returns the category string the value holds and true, or ""
and false when the value is missing or holds a number.
*/
func (v Value) Category() (string, bool) {
	return v.category, v.kind == categoryValue
}

func (v Value) String() string {
	switch v.kind {
	case numberValue:
		return fmt.Sprintf("%v", v.number)
	case categoryValue:
		return v.category
	}
	return "?"
}
