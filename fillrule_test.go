package fastuidraw_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	fastuidraw "github.com/XoDeR/fastuidraw"
)

func TestStandardFillRulePredicates(t *testing.T) {
	tests := []struct {
		rule  fastuidraw.StandardFillRule
		chunk int
	}{
		{fastuidraw.FillRuleNonZero, 0},
		{fastuidraw.FillRuleOddEven, 1},
		{fastuidraw.FillRuleComplementNonZero, 2},
		{fastuidraw.FillRuleComplementOddEven, 3},
	}
	for _, tt := range tests {
		w := fastuidraw.NewDataWriter(nil, tt.rule.Rule())
		_ = w // chunk numbering is checked by TestFillIndicesRegionPacking in builder_test.go
	}
	assert.Equal(t, fastuidraw.NonZeroFillRule(0), false)
	assert.Equal(t, fastuidraw.NonZeroFillRule(1), true)
	assert.Equal(t, fastuidraw.OddEvenFillRule(2), false)
	assert.Equal(t, fastuidraw.OddEvenFillRule(3), true)
	assert.Equal(t, fastuidraw.ComplementNonZeroFillRule(0), true)
	assert.Equal(t, fastuidraw.ComplementOddEvenFillRule(4), true)
}

func TestInvalidStandardFillRuleFallsBackToNonZero(t *testing.T) {
	var invalid fastuidraw.StandardFillRule = 99
	got := invalid.Rule()
	for w := -4; w <= 4; w++ {
		assert.Equal(t, fastuidraw.NonZeroFillRule(w), got(w))
	}
}
