/*
Package impurity provides criteria to score how mixed the class
distribution of a tree node is. A score of 0 means all samples belong
to one class; higher scores mean more mixed distributions.
*/
package impurity

/*
Max is the highest score a Criterion may return and the initial best
impurity of a split search: any valid split scores below or at it.
*/
const Max = 1.0

/*
Criterion computes a purity score from a class-count distribution.

Its Score method takes a slice with the count of samples per class and
the total number of samples, and returns a score in [0, Max] where 0
indicates a pure distribution.
*/
type Criterion interface {
	Score(counts []int, total int) float64
}

/*
CriterionFunc wraps a function with the Score method signature to
implement the Criterion interface.
*/
type CriterionFunc func(counts []int, total int) float64

/*
Score invokes the CriterionFunc with the given counts and total and
returns its result.
*/
func (cf CriterionFunc) Score(counts []int, total int) float64 {
	return cf(counts, total)
}

/*
Gini returns a Criterion computing the Gini index of the distribution:
1 - Σ (count/total)². It is 0 for a pure distribution and approaches
1 - 1/k for k perfectly balanced classes. An empty distribution
(total 0) scores 0.
*/
func Gini() Criterion {
	return CriterionFunc(func(counts []int, total int) float64 {
		if total == 0 {
			return 0.0
		}
		result := 1.0
		for _, c := range counts {
			p := float64(c) / float64(total)
			result -= p * p
		}
		return result
	})
}
