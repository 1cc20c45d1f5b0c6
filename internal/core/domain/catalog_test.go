package domain

import "testing"

func TestDemoCatalog_Contents(t *testing.T) {
	c := DemoCatalog()
	if len(c.Categories) != 13 {
		t.Fatalf("expected 13 categories, got %d", len(c.Categories))
	}
	if len(c.TopItems) != 5 {
		t.Fatalf("expected 5 top items, got %d", len(c.TopItems))
	}
	if c.TopItems[3].Name != "Rolex Submariner" || c.TopItems[3].Tag != "Bid" {
		t.Fatalf("unexpected item: %+v", c.TopItems[3])
	}
}

func TestDemoCatalog_IsolatedCopies(t *testing.T) {
	a := DemoCatalog()
	a.TopItems[0].Name = "changed"

	if b := DemoCatalog(); b.TopItems[0].Name != "iPhone 15 Pro" {
		t.Fatalf("catalog mutated across calls: %q", b.TopItems[0].Name)
	}
}

func TestItem_Price(t *testing.T) {
	cases := map[int64]string{
		99999:  "$999.99",
		129900: "$1,299.00",
		895000: "$8,950.00",
		35000:  "$350.00",
	}
	for cents, want := range cases {
		if got := (Item{PriceCents: cents}).Price(); got != want {
			t.Fatalf("price %d: expected %q, got %q", cents, want, got)
		}
	}
}
