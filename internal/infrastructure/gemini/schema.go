package gemini

// schema is a subset of the Gemini structured-output schema format, enough
// to describe the product catalog shape.
type schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*schema `json:"properties,omitempty"`
	Items       *schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

// catalogSchema constrains the model output to the candidate-product shape
var catalogSchema = &schema{
	Type: "object",
	Properties: map[string]*schema{
		"products": {
			Type: "array",
			Items: &schema{
				Type: "object",
				Properties: map[string]*schema{
					"name": {
						Type:        "string",
						Description: "Product name with size, material, type (convert inch symbols to 'inch')",
					},
					"sku": {
						Type:        "string",
						Description: "Product SKU/code exactly as shown",
					},
					"primary_color": {
						Type:        "string",
						Description: "Base color only (White, Grey, Beige, Black, etc.)",
					},
					"secondary_color": {
						Type:        "string",
						Description: "Full finish/color description (White Matte, Grey Matte, etc.)",
					},
					"color_code": {
						Type:        "string",
						Description: "Hex color code for the primary color (e.g. #FFFFFF for white)",
					},
					"price": {
						Type:        "string",
						Description: "Product price with currency symbol",
					},
				},
				Required: []string{"name", "sku", "primary_color", "secondary_color", "color_code", "price"},
			},
		},
	},
	Required: []string{"products"},
}
