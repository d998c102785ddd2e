package domain

// Product is a catalog entry. Featured, IsNewArrival and IsSale are independent
// flags. StockQuantity is informational only and is never decremented by orders.
type Product struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	ImageURL      string `json:"imageUrl"`
	CategoryID    int64  `json:"categoryId"`
	Featured      bool   `json:"featured"`
	IsNewArrival  bool   `json:"isNewArrival"`
	IsSale        bool   `json:"isSale"`
	OriginalPrice *Money `json:"originalPrice,omitempty"`
	Price         Money  `json:"price"`
	StockQuantity int    `json:"stockQuantity"`
	Rating        Rating `json:"rating"`
	ReviewCount   int    `json:"reviewCount"`
	Slug          string `json:"slug"`
}

// ProductFlag selects one of the boolean merchandising flags.
type ProductFlag string

const (
	FlagFeatured   ProductFlag = "featured"
	FlagNewArrival ProductFlag = "new_arrival"
	FlagSale       ProductFlag = "sale"
)

// Has reports whether p carries the flag.
func (p Product) Has(flag ProductFlag) bool {
	switch flag {
	case FlagFeatured:
		return p.Featured
	case FlagNewArrival:
		return p.IsNewArrival
	case FlagSale:
		return p.IsSale
	default:
		return false
	}
}
