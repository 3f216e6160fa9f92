package tree

import (
	"fmt"
	"strings"
)

/*
Prediction represents a prediction made by a classification Tree: the
class distribution of the leaf a sample was routed to.
*/
type Prediction struct {
	classes []string
	counts  []int
	weight  int
}

// PredictionError represents an error related with predictions
type PredictionError string

/*
ErrCannotPredict is the error returned by the Predict method of a
tree when no prediction can be made for a sample, because the leaf it
is routed to represents no training samples.
*/
const ErrCannotPredict = PredictionError("no prediction available for this kind of sample")

func (pe PredictionError) Error() string {
	return string(pe)
}

/*
NewPrediction takes the class ordering of a tree and the class-count
distribution of one of its nodes and returns a prediction representing
the distribution, or an error when the distribution is empty.
*/
func NewPrediction(classes []string, counts []int) (*Prediction, error) {
	var weight int
	for _, c := range counts {
		weight += c
	}
	if weight == 0 {
		return nil, ErrCannotPredict
	}
	return &Prediction{classes, counts, weight}, nil
}

/*
ProbabilityOf takes a class string and returns the float64 probability
of that class according to the prediction.
*/
func (p *Prediction) ProbabilityOf(class string) float64 {
	for i, c := range p.classes {
		if c == class {
			return float64(p.counts[i]) / float64(p.weight)
		}
	}
	return 0.0
}

/*
Probabilities returns a map of class string to float64 containing the
probabilities of each class with samples in the prediction.
*/
func (p *Prediction) Probabilities() map[string]float64 {
	probs := make(map[string]float64)
	for i, c := range p.classes {
		if p.counts[i] > 0 {
			probs[c] = float64(p.counts[i]) / float64(p.weight)
		}
	}
	return probs
}

/*
Weight returns the weight of the prediction: an int equal to the
number of training samples represented by the leaf from which the
prediction was made.
*/
func (p *Prediction) Weight() int {
	return p.weight
}

/*
PredictedValue returns a string with the most probable class and a
float64 with its prevalence. Ties are broken in favor of the class
appearing first in the tree's class ordering.
*/
func (p *Prediction) PredictedValue() (class string, prob float64) {
	for i, c := range p.classes {
		cp := float64(p.counts[i]) / float64(p.weight)
		if cp > prob {
			class = c
			prob = cp
		}
	}
	return
}

func (p *Prediction) String() string {
	pairs := make([]string, 0, len(p.classes))
	for i, c := range p.classes {
		if p.counts[i] > 0 {
			pairs = append(pairs, fmt.Sprintf("%s:%v", c, float64(p.counts[i])/float64(p.weight)))
		}
	}
	return fmt.Sprintf("[%s]", strings.Join(pairs, " "))
}
