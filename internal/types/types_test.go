package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceMatches(t *testing.T) {
	tests := []struct {
		name    string
		itemID  string
		claimed float64
		want    bool
	}{
		{name: "movie", itemID: ItemMovie, claimed: 100, want: true},
		{name: "guide", itemID: ItemGuide, claimed: 500, want: true},
		{name: "badge", itemID: ItemBadge, claimed: 1000, want: true},
		{name: "integral float", itemID: ItemMovie, claimed: 100.0, want: true},
		{name: "fractional price", itemID: ItemMovie, claimed: 100.5, want: false},
		{name: "forged price", itemID: ItemBadge, claimed: 1, want: false},
		{name: "negative price", itemID: ItemMovie, claimed: -100, want: false},
		{name: "unknown item", itemID: "item-yacht", claimed: 100, want: false},
		{name: "unknown item zero price", itemID: "item-yacht", claimed: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PriceMatches(tt.itemID, tt.claimed))
		})
	}
}

func TestPriceOf(t *testing.T) {
	price, found := PriceOf(ItemGuide)
	assert.True(t, found)
	assert.Equal(t, 500, price)

	_, found = PriceOf("")
	assert.False(t, found)
}

func TestPurchaseRequest_Complete(t *testing.T) {
	assert.True(t, PurchaseRequest{UserID: "u1", ItemID: ItemMovie, ItemPrice: 100}.Complete())
	assert.False(t, PurchaseRequest{ItemID: ItemMovie, ItemPrice: 100}.Complete())
	assert.False(t, PurchaseRequest{UserID: "u1", ItemPrice: 100}.Complete())
	assert.False(t, PurchaseRequest{UserID: "u1", ItemID: ItemMovie}.Complete())
}
