package request

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequenceMonotonic(t *testing.T) {
	seq := NewSequence()
	for i := 1; i <= 5; i++ {
		assert.Equal(t, fmt.Sprintf("REQ-%03d", i), seq.Next())
	}
}

func TestSequenceInitializeFrom(t *testing.T) {
	seq := NewSequence()
	seq.InitializeFrom([]Request{
		{ID: "REQ-007"},
		{ID: "REQ-012"},
		{ID: "FOO-1"}, // foreign IDs are ignored
		{ID: "REQ-abc"},
	})

	assert.Equal(t, "REQ-013", seq.Next())
}

func TestSequenceInitializeFromEmpty(t *testing.T) {
	seq := NewSequence()
	seq.InitializeFrom(nil)
	assert.Equal(t, "REQ-001", seq.Next())
}

func TestSequenceNeverMovesBackward(t *testing.T) {
	seq := NewSequence()
	for i := 0; i < 9; i++ {
		seq.Next()
	}

	seq.InitializeFrom([]Request{{ID: "REQ-003"}})
	assert.Equal(t, "REQ-010", seq.Next())
}
