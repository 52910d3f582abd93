package chatlink

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLink(t *testing.T) {
	b := NewBuilder("")

	link, err := b.Link("+91 98765-43210", "Hi Fresh Mart,\nNew Order")
	require.NoError(t, err)
	assert.Equal(t, "https://wa.me/919876543210?text=Hi%20Fresh%20Mart%2C%0ANew%20Order", link)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "Hi Fresh Mart,\nNew Order", u.Query().Get("text"))
}

func TestLink_InvalidPhone(t *testing.T) {
	_, err := NewBuilder("https://wa.me").Link("call me", "hello")
	assert.ErrorIs(t, err, ErrInvalidPhone)
}

func TestLink_BaseURLWithoutSlash(t *testing.T) {
	link, err := NewBuilder("https://chat.example/send").Link("123", "a b")
	require.NoError(t, err)
	assert.Equal(t, "https://chat.example/send/123?text=a%20b", link)
}

func TestEncode_RupeeAndBullet(t *testing.T) {
	assert.Equal(t, "%E2%80%A2%20Milk%20x%202%20-%20%E2%82%B9120.00", Encode("• Milk x 2 - ₹120.00"))
}

func TestEncode_KeepsUnreservedMarks(t *testing.T) {
	assert.Equal(t, "*Order%20Details%3A*%20(2)%20it's%20ready!", Encode("*Order Details:* (2) it's ready!"))
}
