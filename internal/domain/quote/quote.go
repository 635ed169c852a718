package quote

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/revoa/backend/internal/domain/shared"
)

// QuoteStatus represents the lifecycle status of a quote
type QuoteStatus string

const (
	QuoteStatusDraft  QuoteStatus = "draft"
	QuoteStatusSynced QuoteStatus = "synced"
)

// Quote is a merchant-authored pricing/shipping proposal for a product.
// It is the aggregate root for quote-authoring operations.
type Quote struct {
	shared.MerchantAggregateRoot
	Title            string
	ShopifyProductID string // empty until a catalog product is connected
	Status           QuoteStatus
	Variants         []QuoteVariant
}

// QuoteVariant is one sellable configuration within a quote: a SKU, a
// unit cost, shipping rules, and the attribute assignment that produced
// it. Created when a combination is selected in the authoring UI.
type QuoteVariant struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	SKU         string             `json:"sku"`
	CostPerItem decimal.Decimal    `json:"cost_per_item"`
	Attributes  []ProductAttribute `json:"attributes"`
	Shipping    ShippingRules      `json:"shipping"`
}

// NewQuote creates a new draft quote for a merchant
func NewQuote(merchantID uuid.UUID, title string) (*Quote, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	q := &Quote{
		MerchantAggregateRoot: shared.NewMerchantAggregateRoot(merchantID),
		Title:                 title,
		Status:                QuoteStatusDraft,
		Variants:              make([]QuoteVariant, 0),
	}

	q.AddDomainEvent(NewQuoteCreatedEvent(q))

	return q, nil
}

// ConnectProduct associates the quote with a live Shopify product
func (q *Quote) ConnectProduct(shopifyProductID string) {
	q.ShopifyProductID = shopifyProductID
	q.Touch()
	q.IncrementVersion()
}

// AddVariant appends a sellable variant configuration to the quote
func (q *Quote) AddVariant(name, sku string, costPerItem decimal.Decimal, attributes []ProductAttribute, shipping ShippingRules) (*QuoteVariant, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return nil, ErrEmptySKU
	}
	for _, v := range q.Variants {
		if v.SKU == sku {
			return nil, ErrDuplicateSKU
		}
	}
	if costPerItem.IsNegative() {
		return nil, ErrNegativeCost
	}
	if err := shipping.Validate(); err != nil {
		return nil, err
	}

	variant := QuoteVariant{
		ID:          uuid.New(),
		Name:        name,
		SKU:         sku,
		CostPerItem: costPerItem,
		Attributes:  append([]ProductAttribute(nil), attributes...),
		Shipping:    shipping,
	}

	q.Variants = append(q.Variants, variant)
	q.Touch()
	q.IncrementVersion()

	return &q.Variants[len(q.Variants)-1], nil
}

// ReplaceVariants swaps the whole variant list, mirroring the authoring
// UI committing a freshly selected combination set.
func (q *Quote) ReplaceVariants(variants []QuoteVariant) error {
	seen := make(map[string]struct{}, len(variants))
	for _, v := range variants {
		sku := strings.TrimSpace(v.SKU)
		if sku == "" {
			return ErrEmptySKU
		}
		if _, dup := seen[sku]; dup {
			return ErrDuplicateSKU
		}
		seen[sku] = struct{}{}
		if v.CostPerItem.IsNegative() {
			return ErrNegativeCost
		}
		if err := v.Shipping.Validate(); err != nil {
			return err
		}
	}

	q.Variants = append([]QuoteVariant(nil), variants...)
	for i := range q.Variants {
		if q.Variants[i].ID == uuid.Nil {
			q.Variants[i].ID = uuid.New()
		}
	}
	q.Touch()
	q.IncrementVersion()

	q.AddDomainEvent(NewQuoteVariantsReplacedEvent(q))

	return nil
}

// RemoveVariant deletes a variant by SKU
func (q *Quote) RemoveVariant(sku string) error {
	for i, v := range q.Variants {
		if v.SKU == sku {
			q.Variants = append(q.Variants[:i], q.Variants[i+1:]...)
			q.Touch()
			q.IncrementVersion()
			return nil
		}
	}
	return ErrVariantNotFound
}

// VariantBySKU returns the variant with the given SKU
func (q *Quote) VariantBySKU(sku string) (*QuoteVariant, bool) {
	for i := range q.Variants {
		if q.Variants[i].SKU == sku {
			return &q.Variants[i], true
		}
	}
	return nil, false
}

// MarkSynced marks the quote as synced to the external catalog. This is
// unconditional: individual price-update failures during the commit
// loop do not prevent the status change.
func (q *Quote) MarkSynced() {
	q.Status = QuoteStatusSynced
	q.Touch()
	q.IncrementVersion()

	q.AddDomainEvent(NewQuoteSyncedEvent(q))
}

// IsSynced reports whether the quote has been synced
func (q *Quote) IsSynced() bool {
	return q.Status == QuoteStatusSynced
}
