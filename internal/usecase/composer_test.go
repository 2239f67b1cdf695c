package usecase

import (
	"strings"
	"testing"

	"github.com/skulens/backend/internal/domain"
)

func TestComposeResponse(t *testing.T) {
	products := func(n int) []domain.Product {
		p := make([]domain.Product, n)
		for i := range p {
			p[i] = domain.Product{SKU: "SKU", PrimaryColor: "White"}
		}
		return p
	}

	t.Run("no products extracted", func(t *testing.T) {
		resp := ComposeResponse(nil, nil)

		if resp.Success {
			t.Error("Success = true, want false when nothing was extracted")
		}
		if !strings.Contains(resp.Message, "No highlighted products found") {
			t.Errorf("Message = %q, want no-products explanation", resp.Message)
		}
		if resp.ExtractedCount != 0 || resp.SavedCount != 0 {
			t.Errorf("counts = %d/%d, want 0/0", resp.ExtractedCount, resp.SavedCount)
		}
	})

	t.Run("all saved", func(t *testing.T) {
		outcomes := []domain.SaveOutcome{
			{Status: domain.StatusSuccess, SKU: "A"},
			{Status: domain.StatusSuccess, SKU: "B"},
		}

		resp := ComposeResponse(products(2), outcomes)

		if !resp.Success {
			t.Error("Success = false, want true")
		}
		if resp.SavedCount != 2 {
			t.Errorf("SavedCount = %d, want 2", resp.SavedCount)
		}
		if !strings.Contains(resp.Message, "saved 2 products") {
			t.Errorf("Message = %q, want all-saved wording", resp.Message)
		}
	})

	t.Run("mixed outcomes with a variant and a duplicate", func(t *testing.T) {
		outcomes := []domain.SaveOutcome{
			{Status: domain.StatusSuccess, SKU: "A"},
			{Status: domain.StatusSuccess, SKU: "B Grey_Matte", Variant: true},
			{Status: domain.StatusDuplicate, SKU: "C"},
		}

		resp := ComposeResponse(products(3), outcomes)

		if !resp.Success {
			t.Error("Success = false, want true")
		}
		if resp.ExtractedCount != 3 {
			t.Errorf("ExtractedCount = %d, want 3", resp.ExtractedCount)
		}
		if resp.SavedCount != 2 {
			t.Errorf("SavedCount = %d, want 2", resp.SavedCount)
		}
		for _, want := range []string{"identified 3 products", "saved 2", "1 as color variant", "1 duplicate"} {
			if !strings.Contains(resp.Message, want) {
				t.Errorf("Message = %q, want it to contain %q", resp.Message, want)
			}
		}
	})

	t.Run("all duplicates", func(t *testing.T) {
		outcomes := []domain.SaveOutcome{
			{Status: domain.StatusDuplicate, SKU: "A"},
			{Status: domain.StatusDuplicate, SKU: "B"},
		}

		resp := ComposeResponse(products(2), outcomes)

		if !resp.Success {
			t.Error("Success = false, want true when everything is a duplicate")
		}
		if resp.SavedCount != 0 {
			t.Errorf("SavedCount = %d, want 0", resp.SavedCount)
		}
		if !strings.Contains(resp.Message, "2 duplicates") {
			t.Errorf("Message = %q, want duplicate count", resp.Message)
		}
	})

	t.Run("failures are reported without failing the response", func(t *testing.T) {
		outcomes := []domain.SaveOutcome{
			{Status: domain.StatusSuccess, SKU: "A"},
			{Status: domain.StatusError, SKU: "B", Error: "status 500"},
		}

		resp := ComposeResponse(products(2), outcomes)

		if !resp.Success {
			t.Error("Success = false, want true despite a failed save")
		}
		if !strings.Contains(resp.Message, "1 product failed to save") {
			t.Errorf("Message = %q, want failure count", resp.Message)
		}
	})

	t.Run("all saved with variant note", func(t *testing.T) {
		outcomes := []domain.SaveOutcome{
			{Status: domain.StatusSuccess, SKU: "A Grey_Matte", Variant: true},
		}

		resp := ComposeResponse(products(1), outcomes)

		if !resp.Success {
			t.Error("Success = false, want true")
		}
		if !strings.Contains(resp.Message, "1 as color variant") {
			t.Errorf("Message = %q, want variant note", resp.Message)
		}
	})

	t.Run("echoes products and outcomes", func(t *testing.T) {
		prods := products(1)
		outcomes := []domain.SaveOutcome{{Status: domain.StatusSuccess, SKU: "SKU"}}

		resp := ComposeResponse(prods, outcomes)

		if len(resp.Products) != 1 {
			t.Errorf("len(Products) = %d, want 1", len(resp.Products))
		}
		if len(resp.Results) != 1 {
			t.Errorf("len(Results) = %d, want 1", len(resp.Results))
		}
	})
}
