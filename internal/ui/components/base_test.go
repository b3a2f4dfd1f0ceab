package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpacing(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		values []int
		want   Spacing
	}{
		{"uniform", []int{2}, Spacing{2, 2, 2, 2}},
		{"symmetric", []int{1, 3}, Spacing{1, 3, 1, 3}},
		{"explicit", []int{1, 2, 3, 4}, Spacing{1, 2, 3, 4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseSpacing(tc.values...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := ParseSpacing(1, 2, 3)
	assert.Error(t, err)
	_, err = ParseSpacing()
	assert.Error(t, err)
	_, err = ParseSpacing(-1)
	assert.Error(t, err)
}

func TestSpacingTotals(t *testing.T) {
	t.Parallel()

	s := CustomSpacing(1, 2, 3, 4)
	assert.Equal(t, 6, s.Horizontal())
	assert.Equal(t, 4, s.Vertical())
	assert.False(t, s.IsZero())
	assert.True(t, Spacing{}.IsZero())
}

func TestAlignmentSplit(t *testing.T) {
	t.Parallel()

	l, r := AlignLeft.split(5)
	assert.Equal(t, []int{0, 5}, []int{l, r})
	l, r = AlignCenter.split(5)
	assert.Equal(t, []int{2, 3}, []int{l, r})
	l, r = AlignRight.split(5)
	assert.Equal(t, []int{5, 0}, []int{l, r})
	l, r = AlignCenter.split(-3)
	assert.Equal(t, []int{0, 0}, []int{l, r})

	assert.Equal(t, AlignCenter, ParseAlignment("center"))
	assert.Equal(t, AlignRight, ParseAlignment("RIGHT"))
	assert.Equal(t, AlignLeft, ParseAlignment("bogus"))
	assert.Equal(t, "center", AlignCenter.String())
}
