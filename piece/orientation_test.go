package piece

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrientation_CWOrderFour(t *testing.T) {
	o := R0
	seen := []Orientation{o}
	for i := 0; i < 3; i++ {
		o = o.CW()
		seen = append(seen, o)
	}
	assert.Equal(t, []Orientation{R0, R1, R2, R3}, seen)
	assert.Equal(t, R0, o.CW(), "CW should have order 4")
}

func TestOrientation_CCWIsInverseOfCW(t *testing.T) {
	for _, o := range []Orientation{R0, R1, R2, R3} {
		assert.Equal(t, o, o.CW().CCW())
		assert.Equal(t, o, o.CCW().CW())
	}
}

func TestOrientation_FlipIsTwoCW(t *testing.T) {
	for _, o := range []Orientation{R0, R1, R2, R3} {
		assert.Equal(t, o.CW().CW(), o.Flip())
	}
}
