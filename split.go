package ramify

import (
	"sort"

	"github.com/jackhart/ramify/feature"
	"github.com/jackhart/ramify/impurity"
)

/*
split holds the result of a best-split search over one feature
column: the winning rule, its size-weighted impurity, and the
class-count distributions of the two sides it produces, both aligned
to the full class ordering so that classes absent from a side still
contribute a zero count.
*/
type split struct {
	feature     int
	rule        feature.Rule
	impurity    float64
	leftCounts  []int
	rightCounts []int
}

/*
bestSplit searches the impurity-minimizing split of one feature
column. For numeric and ordinal columns every distinct observed value
is a candidate threshold, routing strictly greater values to the
right; for categorical columns the candidate generator produces the
subsets to evaluate as membership rules, routing members to the
right. Candidates are scored as the size-weighted average of both
sides' impurities, and the running minimum is only replaced by a
strictly lower score, so the first of equally scored candidates wins.
It returns nil when the column yields no candidate scoring below
impurity.Max.
*/
func (g *Grower) bestSplit(column []feature.Value, labels []string, ftype feature.Type, classes []string) *split {
	var best *split
	bestImpurity := impurity.Max
	for _, rule := range g.candidateRules(column, ftype) {
		leftCounts, rightCounts, nRight := distributions(column, labels, rule, classes)
		total := len(labels)
		scoreRight := g.Criterion.Score(rightCounts, nRight)
		scoreLeft := g.Criterion.Score(leftCounts, total-nRight)
		weighted := (float64(nRight)*scoreRight + float64(total-nRight)*scoreLeft) / float64(total)
		if weighted < bestImpurity {
			best = &split{rule: rule, impurity: weighted, leftCounts: leftCounts, rightCounts: rightCounts}
			bestImpurity = weighted
		}
	}
	return best
}

func (g *Grower) candidateRules(column []feature.Value, ftype feature.Type) []feature.Rule {
	var rules []feature.Rule
	if ftype == feature.Categorical {
		for _, subset := range g.Candidates(distinctCategories(column)) {
			rules = append(rules, feature.Membership{Members: subset})
		}
		return rules
	}
	for _, threshold := range distinctNumbers(column) {
		rules = append(rules, feature.Threshold{Value: threshold})
	}
	return rules
}

/*
distributions partitions the labels of a column's samples by the
given rule and returns the class-count distribution of each side over
the full class ordering, together with the number of samples routed
right. Samples whose value the rule cannot evaluate are counted on
the left side, like during the realized partition of a committed
split.
*/
func distributions(column []feature.Value, labels []string, rule feature.Rule, classes []string) (leftCounts, rightCounts []int, nRight int) {
	leftCounts = make([]int, len(classes))
	rightCounts = make([]int, len(classes))
	for i, v := range column {
		ci := classIndex(classes, labels[i])
		if ci < 0 {
			continue
		}
		if rule.Evaluate(v) == feature.Right {
			rightCounts[ci]++
			nRight++
		} else {
			leftCounts[ci]++
		}
	}
	return leftCounts, rightCounts, nRight
}

func classIndex(classes []string, label string) int {
	for ci, c := range classes {
		if c == label {
			return ci
		}
	}
	return -1
}

func distinctNumbers(column []feature.Value) []float64 {
	encountered := make(map[float64]bool)
	var numbers []float64
	for _, v := range column {
		if n, ok := v.Number(); ok && !encountered[n] {
			encountered[n] = true
			numbers = append(numbers, n)
		}
	}
	sort.Float64s(numbers)
	return numbers
}

func distinctCategories(column []feature.Value) []string {
	encountered := make(map[string]bool)
	var categories []string
	for _, v := range column {
		if c, ok := v.Category(); ok && !encountered[c] {
			encountered[c] = true
			categories = append(categories, c)
		}
	}
	sort.Strings(categories)
	return categories
}
