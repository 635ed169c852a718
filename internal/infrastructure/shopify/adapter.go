package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/revoa/backend/internal/domain/integration"
)

// maxResponseSize is the maximum allowed response size from the Admin API (10MB)
const maxResponseSize = 10 * 1024 * 1024

// ErrInvalidVariantID indicates a variant ID that is not numeric
var ErrInvalidVariantID = errors.New("shopify: invalid variant ID format")

// Adapter implements the catalog reader and price updater against the
// Shopify Admin REST API.
type Adapter struct {
	config     *Config
	httpClient *http.Client
}

// NewAdapter creates a new Shopify adapter with the given configuration
func NewAdapter(config *Config) (*Adapter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Adapter{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
	}, nil
}

// GetProductWithVariants fetches a live product and its variants
func (a *Adapter) GetProductWithVariants(ctx context.Context, productID string) (*integration.ExternalProduct, error) {
	if err := validateNumericID(productID); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/admin/api/%s/products/%s.json", a.config.APIVersion, productID)
	body, err := a.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var envelope productEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: failed to parse response: %v", integration.ErrPlatformInvalidResponse, err)
	}
	if envelope.Product == nil {
		return nil, integration.ErrProductNotFound
	}

	return convertProduct(envelope.Product), nil
}

// UpdateVariantPrice pushes a new price for a single variant
func (a *Adapter) UpdateVariantPrice(ctx context.Context, variantID string, price decimal.Decimal) error {
	id, err := strconv.ParseInt(variantID, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidVariantID, variantID)
	}

	payload, err := json.Marshal(variantUpdateRequest{
		Variant: variantUpdate{
			ID:    id,
			Price: price.StringFixed(2),
		},
	})
	if err != nil {
		return fmt.Errorf("shopify: failed to encode request: %w", err)
	}

	path := fmt.Sprintf("/admin/api/%s/variants/%d.json", a.config.APIVersion, id)
	_, err = a.doRequest(ctx, http.MethodPut, path, payload)
	if errors.Is(err, integration.ErrProductNotFound) {
		return integration.ErrVariantNotFound
	}
	return err
}

func (a *Adapter) doRequest(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.config.apiBaseURL()+path, reader)
	if err != nil {
		return nil, fmt.Errorf("shopify: failed to create request: %w", err)
	}

	req.Header.Set("X-Shopify-Access-Token", a.config.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", integration.ErrPlatformRequestFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("shopify: failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, integration.ErrProductNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, integration.ErrPlatformRateLimited
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("%w: HTTP %d: %s", integration.ErrPlatformRequestFailed, resp.StatusCode, extractAPIError(respBody))
	}

	return respBody, nil
}

// extractAPIError pulls the errors field out of an Admin API error body
func extractAPIError(body []byte) string {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Errors == nil {
		return "unknown error"
	}
	return fmt.Sprintf("%v", envelope.Errors)
}

func validateNumericID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty ID", integration.ErrPlatformRequestFailed)
	}
	if _, err := strconv.ParseInt(id, 10, 64); err != nil {
		return fmt.Errorf("%w: non-numeric ID %q", integration.ErrPlatformRequestFailed, id)
	}
	return nil
}

// convertProduct maps a REST product into the domain view. Selected
// options are reconstructed by pairing option1..option3 slots with the
// product's declared option names, in position order.
func convertProduct(p *restProduct) *integration.ExternalProduct {
	product := &integration.ExternalProduct{
		ID:       strconv.FormatInt(p.ID, 10),
		Title:    p.Title,
		Options:  make([]integration.ProductOption, 0, len(p.Options)),
		Variants: make([]integration.ExternalVariant, 0, len(p.Variants)),
	}

	for _, opt := range p.Options {
		product.Options = append(product.Options, integration.ProductOption{
			Name:   opt.Name,
			Values: append([]string(nil), opt.Values...),
		})
	}

	for _, v := range p.Variants {
		variant := integration.ExternalVariant{
			ID:    strconv.FormatInt(v.ID, 10),
			Title: v.Title,
			SKU:   v.SKU,
			Price: parsePrice(v.Price),
		}

		slots := []string{v.Option1, v.Option2, v.Option3}
		for i, value := range slots {
			if value == "" || i >= len(p.Options) {
				continue
			}
			variant.SelectedOptions = append(variant.SelectedOptions, integration.SelectedOption{
				Name:  p.Options[i].Name,
				Value: value,
			})
		}

		product.Variants = append(product.Variants, variant)
	}

	return product
}

// parsePrice parses an Admin API price string, treating malformed
// values as zero rather than failing the whole product fetch.
func parsePrice(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

var (
	_ integration.CatalogReader = (*Adapter)(nil)
	_ integration.PriceUpdater  = (*Adapter)(nil)
)
