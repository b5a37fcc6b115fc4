package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type bid struct {
	id      string
	project string
}

func TestSingleWinner_CascadeReject(t *testing.T) {
	p := NewSingleWinner(func(b bid) string { return b.project })

	winner := bid{id: "a", project: "proj1"}
	sibling := bid{id: "b", project: "proj1"}
	unrelated := bid{id: "c", project: "proj2"}

	assert.True(t, p.CascadeReject(winner, sibling))
	assert.False(t, p.CascadeReject(winner, unrelated))
	assert.Equal(t, "single_winner", p.Name())
}

func TestNoCascade_NeverRejects(t *testing.T) {
	p := NoCascade[bid]{}

	a := bid{id: "a", project: "proj1"}
	b := bid{id: "b", project: "proj1"}

	assert.False(t, p.CascadeReject(a, b))
	assert.Equal(t, "no_cascade", p.Name())
}
