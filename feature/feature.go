package feature

import "fmt"

/*
Type classifies the values a feature can take and determines how
split candidates are enumerated for it: Numeric and Ordinal features
are split on thresholds, Categorical features on subsets of their
domain.
*/
type Type int

const (
	// Numeric features take arbitrary float64 values
	Numeric Type = iota
	// Ordinal features take numeric values from an ordered scale
	Ordinal
	// Categorical features take values from a finite set of categories
	Categorical
)

func (t Type) String() string {
	switch t {
	case Numeric:
		return "numeric"
	case Ordinal:
		return "ordinal"
	case Categorical:
		return "categorical"
	}
	return fmt.Sprintf("unknown type %d", int(t))
}

/*
Feature represents a property that can be observed on the samples
of a dataset. It has a name, a Type and, for categorical features,
the set of categories it can take.
*/
type Feature struct {
	name       string
	ftype      Type
	categories []string
}

/*
NewNumeric takes a name string and returns a numeric feature with the
given name.
*/
func NewNumeric(name string) *Feature {
	return &Feature{name: name, ftype: Numeric}
}

/*
NewOrdinal takes a name string and returns an ordinal feature with the
given name. Ordinal features hold numeric values and are split on
thresholds like numeric ones.
*/
func NewOrdinal(name string) *Feature {
	return &Feature{name: name, ftype: Ordinal}
}

/*
NewCategorical takes a name string and a slice of category strings and
returns a categorical feature with the given name whose values are
restricted to the given categories.
*/
func NewCategorical(name string, categories []string) *Feature {
	return &Feature{name: name, ftype: Categorical, categories: categories}
}

/*
Name returns a string with the name of the feature
*/
func (f *Feature) Name() string {
	return f.name
}

/*
Type returns the Type of the feature
*/
func (f *Feature) Type() Type {
	return f.ftype
}

/*
Categories returns a string slice with the values available for a
categorical feature. It is nil for numeric and ordinal features.
*/
func (f *Feature) Categories() []string {
	return f.categories
}

/*
Valid receives a Value and returns a boolean and an error. Missing
values are valid for every feature. Otherwise the value must match the
feature type, and for categorical features belong to its categories;
when it does not, false is returned together with an error describing
the reason.
*/
func (f *Feature) Valid(v Value) (bool, error) {
	if v.IsMissing() {
		return true, nil
	}
	switch f.ftype {
	case Numeric, Ordinal:
		if _, ok := v.Number(); !ok {
			return false, fmt.Errorf("%s feature %s expects a numeric value, got %v", f.ftype, f.name, v)
		}
		return true, nil
	case Categorical:
		c, ok := v.Category()
		if !ok {
			return false, fmt.Errorf("categorical feature %s expects a category value, got %v", f.name, v)
		}
		for _, ac := range f.categories {
			if ac == c {
				return true, nil
			}
		}
		return false, fmt.Errorf("categorical feature %s got unknown category %s", f.name, c)
	}
	return false, fmt.Errorf("feature %s has invalid type %v", f.name, f.ftype)
}

func (f *Feature) String() string {
	return f.name
}
