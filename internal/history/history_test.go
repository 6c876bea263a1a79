package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptySet(t *testing.T) {
	s := New()
	assert.True(t, s.Empty())
	assert.Equal(t, []string{Other}, s.Options())
}

func TestOptionsOrdering(t *testing.T) {
	s := New("Profile", "Checkout", "Admin panel")
	assert.Equal(t, []string{Other, "Admin panel", "Checkout", "Profile"}, s.Options())
}

func TestAddIsIdempotent(t *testing.T) {
	s := New("Checkout")
	s.Add("Checkout")
	s.Add("Checkout")

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []string{Other, "Checkout"}, s.Options())
}

func TestAddGrowsWithinSession(t *testing.T) {
	s := New()
	s.Add("Checkout")

	assert.True(t, s.Contains("Checkout"))
	assert.Equal(t, []string{Other, "Checkout"}, s.Options())
}

func TestAddIgnoresEmpty(t *testing.T) {
	s := New("", "Cart")
	s.Add("")
	assert.Equal(t, 1, s.Len())
}
