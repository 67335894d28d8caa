package orderbook

import (
	"testing"

	"github.com/feedhandler/mdfeed/internal/itch"
)

func TestOrderStruct(t *testing.T) {
	o := Order{Shares: 500, Price: itch.Price4(100.50), Side: itch.SideBuy}
	if o.Shares != 500 || o.Side != itch.SideBuy {
		t.Fatal("Order struct fields not set correctly")
	}
	if o.Price != 1005000 {
		t.Fatalf("Price = %d, want 1005000", o.Price)
	}
}
