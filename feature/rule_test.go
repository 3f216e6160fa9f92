package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThresholdEvaluate(t *testing.T) {
	rule := Threshold{Value: 3}
	tests := []struct {
		name  string
		value Value
		side  Side
	}{
		{"strictly greater goes right", Num(3.5), Right},
		{"equal goes left", Num(3), Left},
		{"lower goes left", Num(-1), Left},
		{"missing is undecided", Missing(), Undecided},
		{"category is undecided", Cat("a"), Undecided},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.side, rule.Evaluate(tt.value))
		})
	}
}

func TestMembershipEvaluate(t *testing.T) {
	rule := Membership{Members: []string{"a", "c"}}
	tests := []struct {
		name  string
		value Value
		side  Side
	}{
		{"member goes right", Cat("a"), Right},
		{"other member goes right", Cat("c"), Right},
		{"non-member goes left", Cat("b"), Left},
		{"missing is undecided", Missing(), Undecided},
		{"number is undecided", Num(1), Undecided},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.side, rule.Evaluate(tt.value))
		})
	}
}

func TestRuleStrings(t *testing.T) {
	assert.Equal(t, "> 3.5", Threshold{Value: 3.5}.String())
	assert.Equal(t, "in {a, b}", Membership{Members: []string{"a", "b"}}.String())
}
