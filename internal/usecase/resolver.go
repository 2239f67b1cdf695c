package usecase

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/skulens/backend/internal/domain"
)

// ProductLookup is the read side of the product store. The resolver only
// ever reads; the caller performs the actual write.
type ProductLookup interface {
	Lookup(ctx context.Context, sku string) (*domain.StoredProduct, error)
}

// SKUResolver decides whether a candidate product is a duplicate, a new
// variant of an occupied base SKU, or a brand-new entry, and computes the
// final SKU to persist under. Catalogs reuse a base code across color and
// finish options, so the resolver must not clobber an existing color's entry
// while still letting the same base code acquire new color variants.
type SKUResolver struct {
	lookup ProductLookup
}

// NewSKUResolver creates a new SKU resolver
func NewSKUResolver(lookup ProductLookup) *SKUResolver {
	return &SKUResolver{lookup: lookup}
}

// Resolve runs the duplicate/variant decision for one candidate product.
// Lookup failures are absorbed as "not found": a false negative only risks a
// duplicate SKU downstream, whereas failing hard would block all saves
// during a transient database outage.
func (r *SKUResolver) Resolve(ctx context.Context, product domain.Product) domain.Resolution {
	originalSKU := product.SKU
	candidateColor := NormalizeColor(product.PrimaryColor)

	// Is the base SKU taken, and if so by which color?
	baseOccupied := false
	if existing := r.find(ctx, originalSKU); existing != nil {
		if NormalizeColor(existing.Color) == candidateColor {
			return domain.Resolution{
				Decision: domain.DecisionDuplicate,
				FinalSKU: originalSKU,
				Detail:   fmt.Sprintf("product %q already exists with color %q", originalSKU, existing.Color),
			}
		}
		baseOccupied = true
	}

	// The base SKU is either free or held by a different color. Either way a
	// variant SKU with this color may already exist from an earlier run.
	variantSKU := VariantSKU(originalSKU, product.SecondaryColor, product.PrimaryColor)
	if existing := r.find(ctx, variantSKU); existing != nil && NormalizeColor(existing.Color) == candidateColor {
		return domain.Resolution{
			Decision: domain.DecisionDuplicate,
			FinalSKU: variantSKU,
			Detail:   fmt.Sprintf("variant %q already exists with color %q", variantSKU, existing.Color),
		}
	}

	if baseOccupied {
		return domain.Resolution{
			Decision: domain.DecisionNewVariant,
			FinalSKU: variantSKU,
			Detail:   fmt.Sprintf("base SKU %q is taken by a different color, saving as %q", originalSKU, variantSKU),
		}
	}

	return domain.Resolution{
		Decision: domain.DecisionNewBase,
		FinalSKU: originalSKU,
		Detail:   fmt.Sprintf("SKU %q is free", originalSKU),
	}
}

// find looks up a SKU, treating every failure as a miss. Failures other
// than a clean not-found are logged so outages stay visible.
func (r *SKUResolver) find(ctx context.Context, sku string) *domain.StoredProduct {
	product, err := r.lookup.Lookup(ctx, sku)
	if err != nil {
		if !errors.Is(err, domain.ErrProductNotFound) {
			log.Warnf("resolver: lookup of %q failed, treating as not found: %v", sku, err)
		}
		return nil
	}
	return product
}
