package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/skulens/backend/internal/domain"
)

// CatalogServiceConfig holds configuration for the catalog service
type CatalogServiceConfig struct {
	CacheTTL time.Duration
}

// CatalogService orchestrates processing of one catalog image: extract
// candidates, resolve each against the downstream store, write the
// non-duplicates, and compose the aggregate response.
type CatalogService struct {
	extractor domain.Extractor
	store     domain.ProductStore
	cache     domain.CacheRepository
	resolver  *SKUResolver
	cacheTTL  time.Duration
}

// NewCatalogService creates a new catalog service with dependencies
func NewCatalogService(
	extractor domain.Extractor,
	store domain.ProductStore,
	cache domain.CacheRepository,
	config CatalogServiceConfig,
) *CatalogService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 10 * time.Minute
	}

	service := &CatalogService{
		extractor: extractor,
		store:     store,
		cache:     cache,
		cacheTTL:  cacheTTL,
	}

	// The resolver reads through the service so lookups are cache-first
	service.resolver = NewSKUResolver(service)

	return service
}

// ProcessImage runs the full flow for one uploaded catalog image.
// Extraction failure yields a success=false response with zero counts, not
// an error: the endpoint's contract stays uniform. Products are processed
// sequentially, in catalog order, so each lookup-then-write pair is free of
// races within the request.
func (s *CatalogService) ProcessImage(ctx context.Context, image []byte) *domain.CatalogResponse {
	products, err := s.extractor.ExtractProducts(ctx, image)
	if err != nil {
		log.Errorf("catalog: extraction failed: %v", err)
		return &domain.CatalogResponse{
			Success:  false,
			Message:  "Error processing image: " + err.Error(),
			Products: []domain.Product{},
			Results:  []domain.SaveOutcome{},
		}
	}

	outcomes := make([]domain.SaveOutcome, 0, len(products))
	for _, product := range products {
		outcomes = append(outcomes, s.saveProduct(ctx, product))
	}

	return ComposeResponse(products, outcomes)
}

// saveProduct resolves one candidate and writes it if it is not a duplicate
func (s *CatalogService) saveProduct(ctx context.Context, product domain.Product) domain.SaveOutcome {
	resolution := s.resolver.Resolve(ctx, product)

	if resolution.Decision == domain.DecisionDuplicate {
		log.Infof("catalog: skipping %q: %s", product.SKU, resolution.Detail)
		return domain.SaveOutcome{
			Status: domain.StatusDuplicate,
			SKU:    resolution.FinalSKU,
		}
	}

	payload := buildUpsertPayload(product, resolution.FinalSKU)
	if err := s.store.Upsert(ctx, payload); err != nil {
		log.Errorf("catalog: failed to save %q: %v", resolution.FinalSKU, err)
		return domain.SaveOutcome{
			Status: domain.StatusError,
			SKU:    resolution.FinalSKU,
			Error:  err.Error(),
		}
	}

	// Prime the lookup cache so a resubmission of the same image resolves to
	// duplicate without another downstream read
	s.primeCache(ctx, payload)

	log.Infof("catalog: saved %q (%s)", resolution.FinalSKU, resolution.Decision)
	return domain.SaveOutcome{
		Status:  domain.StatusSuccess,
		SKU:     resolution.FinalSKU,
		Variant: resolution.Decision == domain.DecisionNewVariant,
	}
}

// Lookup reads a SKU cache-first. Only positive lookups are cached; misses
// always fall through to the store, so a freshly written product can never
// be masked by a stale not-found entry.
func (s *CatalogService) Lookup(ctx context.Context, sku string) (*domain.StoredProduct, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, sku); err == nil {
			return cached, nil
		} else if !errors.Is(err, domain.ErrCacheMiss) {
			log.Warnf("catalog: cache read for %q failed: %v", sku, err)
		}
	}

	product, err := s.store.Lookup(ctx, sku)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, sku, product, s.cacheTTL); err != nil {
			log.Warnf("catalog: cache write for %q failed: %v", sku, err)
		}
	}

	return product, nil
}

// primeCache records a just-written product in the lookup cache
func (s *CatalogService) primeCache(ctx context.Context, payload domain.UpsertPayload) {
	if s.cache == nil {
		return
	}

	stored := &domain.StoredProduct{
		Name:    payload.Name,
		SKU:     payload.SKU,
		Color:   payload.Color,
		Pricing: payload.Pricing,
	}
	if err := s.cache.Set(ctx, payload.SKU, stored, s.cacheTTL); err != nil {
		log.Warnf("catalog: cache write for %q failed: %v", payload.SKU, err)
	}
}

// buildUpsertPayload maps a candidate product to the downstream write shape
func buildUpsertPayload(product domain.Product, finalSKU string) domain.UpsertPayload {
	price := ParsePrice(product.Price)

	return domain.UpsertPayload{
		Name:  strings.ReplaceAll(product.Name, "\n", " "),
		SKU:   finalSKU,
		Color: product.PrimaryColor,
		Pricing: domain.Pricing{
			Price:        price,
			RegularPrice: price,
		},
	}
}
