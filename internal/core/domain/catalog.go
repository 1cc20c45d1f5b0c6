package domain

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Category is a browse label shown on the catalog page.
type Category struct {
	Icon string
	Name string
}

// Item is a featured listing. Prices are kept in cents.
type Item struct {
	Emoji      string
	Name       string
	PriceCents int64
	Tag        string
}

var pricePrinter = message.NewPrinter(language.English)

// Price renders the item price as US dollars, e.g. "$1,299.00".
func (i Item) Price() string {
	return pricePrinter.Sprintf("$%.2f", float64(i.PriceCents)/100)
}

// Catalog is the read-only content of the home page.
type Catalog struct {
	Categories []Category
	TopItems   []Item
}

// DemoCatalog returns the fixed catalog. Each call returns fresh slices so
// callers cannot alter what other requests see.
func DemoCatalog() Catalog {
	return Catalog{
		Categories: []Category{
			{"🏺", "Antiques"}, {"🎨", "Art"}, {"🍼", "Baby Products"},
			{"📚", "Books"}, {"📷", "Cameras"}, {"📱", "Mobile Phones"},
			{"📀", "DVDs"}, {"🧸", "Toys"}, {"💻", "Computers"},
			{"⌚", "Watches"}, {"💍", "Jewelry"}, {"📺", "Electronics"},
			{"🏠", "Home Appliances"},
		},
		TopItems: []Item{
			{"📱", "iPhone 15 Pro", 99999, "Buy Now"},
			{"💻", "MacBook Air M3", 129900, "Auction"},
			{"📷", "Sony A7 IV Camera", 249900, "Auction"},
			{"⌚", "Rolex Submariner", 895000, "Bid"},
			{"🎨", "Monet Print (Signed)", 35000, "Buy Now"},
		},
	}
}
