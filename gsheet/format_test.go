package gsheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderSpans(t *testing.T) {
	header := []string{"", "Development", "Development", "Operations", "Internal", "Internal", "Total", "ignored"}

	expected := []span{
		{start: 1, end: 2},
		{start: 3, end: 3},
		{start: 4, end: 5},
	}

	assert.Equal(t, expected, headerSpans(header))
}

func TestHeaderSpansWithoutTotal(t *testing.T) {
	header := []string{"", "Development", "Operations"}

	expected := []span{
		{start: 1, end: 1},
		{start: 2, end: 2},
	}

	assert.Equal(t, expected, headerSpans(header))
}

func TestHeaderSpansEmptyHeader(t *testing.T) {
	assert.Empty(t, headerSpans([]string{}))
	assert.Empty(t, headerSpans([]string{"", "Total"}))
}

func TestConsecutive(t *testing.T) {
	assert.Nil(t, consecutive(nil))

	assert.Equal(t, []span{{start: 1, end: 3}, {start: 7, end: 7}, {start: 9, end: 10}},
		consecutive([]int{1, 2, 3, 7, 9, 10}))
}
