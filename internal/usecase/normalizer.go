package usecase

import (
	"strconv"
	"strings"
)

// Package-level replacers, built once
var (
	currencyReplacer       = strings.NewReplacer("$", "", ",", "")
	colorSeparatorReplacer = strings.NewReplacer(" ", "", "-", "", "_", "")
)

// ParsePrice converts a human-formatted price string to a float
// (e.g. "$1,595" -> 1595.0). Unparseable input yields 0.0; callers must
// treat 0.0 as "unparseable", not "free".
func ParsePrice(price string) float64 {
	clean := strings.TrimSpace(currencyReplacer.Replace(price))

	value, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0.0
	}
	return value
}

// NormalizeColor canonicalizes a free-text color/finish label for equality
// comparison. "White Matte", "white-matte" and "WHITE_MATTE" all map to the
// same key. The result is never surfaced to the user.
func NormalizeColor(color string) string {
	return colorSeparatorReplacer.Replace(strings.ToLower(strings.TrimSpace(color)))
}

// VariantSKU synthesizes a disambiguated SKU from a base SKU and a finish
// description: base SKU, one space, then the finish with internal whitespace
// collapsed to underscores. Falls back to the primary color when the finish
// is absent; with no color at all there is nothing to disambiguate with and
// the base SKU comes back unchanged.
func VariantSKU(baseSKU, secondaryColor, primaryColor string) string {
	suffix := strings.TrimSpace(secondaryColor)
	if suffix == "" {
		suffix = strings.TrimSpace(primaryColor)
	}

	joined := strings.Join(strings.Fields(suffix), "_")
	if joined == "" {
		return baseSKU
	}

	return baseSKU + " " + joined
}
