package shopify

// REST payload shapes for the Admin API endpoints this adapter uses.
// Prices arrive as decimal strings; IDs are numeric.

type productEnvelope struct {
	Product *restProduct `json:"product"`
}

type restProduct struct {
	ID       int64         `json:"id"`
	Title    string        `json:"title"`
	Options  []restOption  `json:"options"`
	Variants []restVariant `json:"variants"`
}

type restOption struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Position int      `json:"position"`
	Values   []string `json:"values"`
}

type restVariant struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	SKU     string `json:"sku"`
	Price   string `json:"price"`
	Option1 string `json:"option1"`
	Option2 string `json:"option2"`
	Option3 string `json:"option3"`
}

type variantUpdateRequest struct {
	Variant variantUpdate `json:"variant"`
}

type variantUpdate struct {
	ID    int64  `json:"id"`
	Price string `json:"price"`
}

type errorEnvelope struct {
	Errors any `json:"errors"`
}
