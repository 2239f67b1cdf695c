package usecase

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/skulens/backend/internal/domain"
)

// ComposeResponse aggregates per-product save outcomes into the response
// returned to the caller. Pure function: the summary wording and success
// flag depend only on the outcome counts, so they stay stable regardless of
// wording changes elsewhere.
func ComposeResponse(products []domain.Product, outcomes []domain.SaveOutcome) *domain.CatalogResponse {
	saved := lo.CountBy(outcomes, func(o domain.SaveOutcome) bool { return o.Status == domain.StatusSuccess })
	duplicates := lo.CountBy(outcomes, func(o domain.SaveOutcome) bool { return o.Status == domain.StatusDuplicate })
	failed := lo.CountBy(outcomes, func(o domain.SaveOutcome) bool { return o.Status == domain.StatusError })
	variants := lo.CountBy(outcomes, func(o domain.SaveOutcome) bool { return o.Status == domain.StatusSuccess && o.Variant })

	extracted := len(products)
	success, message := composeMessage(extracted, saved, duplicates, failed, variants)

	return &domain.CatalogResponse{
		Success:        success,
		Message:        message,
		ExtractedCount: extracted,
		SavedCount:     saved,
		Products:       products,
		Results:        outcomes,
	}
}

// composeMessage builds the human-readable summary and the aggregate success
// flag. Success is false only when nothing was extracted; database-side
// trouble keeps success true with an explanatory message.
func composeMessage(extracted, saved, duplicates, failed, variants int) (bool, string) {
	if extracted == 0 {
		return false, "No highlighted products found in the image. Please ensure products are clearly marked with circles, arrows, or other visual indicators."
	}

	variantNote := ""
	if variants > 0 {
		variantNote = fmt.Sprintf(" (%d as color variant%s)", variants, plural(variants))
	}

	if saved == extracted {
		return true, fmt.Sprintf("Perfect! Successfully identified and saved %d product%s to the database%s.",
			saved, plural(saved), variantNote)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Successfully identified %d product%s from the catalog and saved %d to the database%s.",
		extracted, plural(extracted), saved, variantNote)
	if duplicates > 0 {
		fmt.Fprintf(&sb, " %d duplicate%s already in the database %s skipped.",
			duplicates, plural(duplicates), wasWere(duplicates))
	}
	if failed > 0 {
		fmt.Fprintf(&sb, " %d product%s failed to save.", failed, plural(failed))
	}

	return true, sb.String()
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func wasWere(n int) string {
	if n == 1 {
		return "was"
	}
	return "were"
}
