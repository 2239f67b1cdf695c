package domain

// Product represents one product entry extracted from a catalog image.
// Field names mirror the structured-output schema sent to the vision model.
type Product struct {
	Name           string `json:"name"`
	SKU            string `json:"sku"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	ColorCode      string `json:"color_code"`
	Price          string `json:"price"`
}

// Pricing holds the price fields the downstream store expects
type Pricing struct {
	Price        float64 `json:"price"`
	RegularPrice float64 `json:"regular_price"`
}

// StoredProduct is a product record as returned by the downstream database.
// Only the fields this service reads are modeled; the store carries more.
type StoredProduct struct {
	Name    string  `json:"name"`
	SKU     string  `json:"sku"`
	Color   string  `json:"color"`
	Pricing Pricing `json:"pricing"`
}

// UpsertPayload is the write shape for the downstream product database
type UpsertPayload struct {
	Name    string  `json:"name"`
	SKU     string  `json:"sku"`
	Color   string  `json:"color"`
	Pricing Pricing `json:"pricing"`
}

// Decision classifies how a candidate product relates to what the
// downstream store already holds.
type Decision string

const (
	// DecisionDuplicate means the product already exists under the final SKU
	// with the same color; nothing should be written.
	DecisionDuplicate Decision = "duplicate"

	// DecisionNewBase means the printed SKU is free and should be used as-is.
	DecisionNewBase Decision = "new_base"

	// DecisionNewVariant means the printed SKU is taken by a different color
	// and the product should be written under a disambiguated variant SKU.
	DecisionNewVariant Decision = "new_variant"
)

// Resolution is the outcome of resolving a candidate product against the
// downstream store. FinalSKU is the SKU the caller should persist under.
type Resolution struct {
	Decision Decision
	FinalSKU string
	Detail   string
}

// Per-product outcome statuses reported in the response
const (
	StatusSuccess   = "success"
	StatusDuplicate = "duplicate"
	StatusError     = "error"
)

// SaveOutcome records what happened to one candidate product during a
// request. Variant marks successful saves that went in under a
// disambiguated SKU rather than the printed one.
type SaveOutcome struct {
	Status  string `json:"status"`
	SKU     string `json:"sku"`
	Error   string `json:"error,omitempty"`
	Variant bool   `json:"-"`
}

// CatalogResponse is the aggregate result of processing one catalog image
type CatalogResponse struct {
	Success        bool          `json:"success"`
	Message        string        `json:"message"`
	ExtractedCount int           `json:"extracted_count"`
	SavedCount     int           `json:"saved_count"`
	Products       []Product     `json:"products"`
	Results        []SaveOutcome `json:"results"`
}
