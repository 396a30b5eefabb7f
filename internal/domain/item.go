package domain

// DefaultLowStockThreshold is applied to new items that do not specify one.
const DefaultLowStockThreshold = 3

// SizeStock tracks remaining stock for a single size variant.
// Stock never goes below zero; every decrementing path clamps at 0.
type SizeStock struct {
	Size  string `json:"size" validate:"required"`
	Stock int    `json:"stock" validate:"gte=0"`
}

// Item is a catalog entry. Price is what the customer pays, Cost is what the
// shop paid the vendor. Sizes is optional; items without sizes carry no
// tracked stock.
type Item struct {
	ID                string      `json:"id" validate:"required"`
	Name              string      `json:"name" validate:"required"`
	Price             Money       `json:"price" validate:"gte=0"`
	Cost              Money       `json:"cost" validate:"gte=0"`
	Vendor            string      `json:"vendor,omitempty"`
	ImageURL          string      `json:"imageUrl,omitempty"`
	Sizes             []SizeStock `json:"sizes,omitempty" validate:"dive"`
	Tags              []string    `json:"tags,omitempty"`
	LowStockThreshold int         `json:"lowStockThreshold,omitempty" validate:"gte=0"`
}

// Clone returns a deep copy independent of the receiver.
func (i Item) Clone() Item {
	out := i
	if i.Sizes != nil {
		out.Sizes = append([]SizeStock(nil), i.Sizes...)
	}
	if i.Tags != nil {
		out.Tags = append([]string(nil), i.Tags...)
	}
	return out
}

// LowStock returns the size variants at or below the item's threshold.
func (i Item) LowStock() []SizeStock {
	threshold := i.LowStockThreshold
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	var low []SizeStock
	for _, s := range i.Sizes {
		if s.Stock <= threshold {
			low = append(low, s)
		}
	}
	return low
}

// ItemInput carries the fields for creating a catalog item. The identifier
// and threshold default are assigned by the store.
type ItemInput struct {
	Name              string      `json:"name" validate:"required"`
	Price             Money       `json:"price" validate:"gte=0"`
	Cost              Money       `json:"cost" validate:"gte=0"`
	Vendor            string      `json:"vendor,omitempty"`
	ImageURL          string      `json:"imageUrl,omitempty"`
	Sizes             []SizeStock `json:"sizes,omitempty" validate:"dive"`
	Tags              []string    `json:"tags,omitempty"`
	LowStockThreshold int         `json:"lowStockThreshold,omitempty" validate:"gte=0"`
}

// ItemPatch is a partial update; nil fields are left unchanged.
type ItemPatch struct {
	Name              *string      `json:"name,omitempty"`
	Price             *Money       `json:"price,omitempty" validate:"omitempty,gte=0"`
	Cost              *Money       `json:"cost,omitempty" validate:"omitempty,gte=0"`
	Vendor            *string      `json:"vendor,omitempty"`
	ImageURL          *string      `json:"imageUrl,omitempty"`
	Sizes             *[]SizeStock `json:"sizes,omitempty" validate:"omitempty,dive"`
	Tags              *[]string    `json:"tags,omitempty"`
	LowStockThreshold *int         `json:"lowStockThreshold,omitempty" validate:"omitempty,gte=0"`
}

// Apply merges the patch onto the item.
func (p ItemPatch) Apply(item *Item) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
	if p.Cost != nil {
		item.Cost = *p.Cost
	}
	if p.Vendor != nil {
		item.Vendor = *p.Vendor
	}
	if p.ImageURL != nil {
		item.ImageURL = *p.ImageURL
	}
	if p.Sizes != nil {
		item.Sizes = append([]SizeStock(nil), (*p.Sizes)...)
	}
	if p.Tags != nil {
		item.Tags = append([]string(nil), (*p.Tags)...)
	}
	if p.LowStockThreshold != nil {
		item.LowStockThreshold = *p.LowStockThreshold
	}
}
