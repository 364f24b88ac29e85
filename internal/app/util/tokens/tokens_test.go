package tokens

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimate(t *testing.T) {
	assert.Equal(t, 0, Estimate(""))
	assert.Equal(t, 0, Estimate("   \n\t"))

	short := Estimate("hi there")
	assert.Greater(t, short, 0)
	assert.Less(t, short, 10)

	longer := Estimate(strings.Repeat("the quick brown fox jumped over the lazy dog ", 10))
	assert.Greater(t, longer, short)
}

func TestExceedsWindow(t *testing.T) {
	assert.False(t, ExceedsWindow(""))
	assert.False(t, ExceedsWindow("Quirk, Quid, Quill, Inc."))

	// ~720 words is far past any plausible tokenization of 224.
	long := strings.Repeat("the quick brown fox jumped over the lazy dog ", 80)
	assert.True(t, ExceedsWindow(long))
}
