package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"resty.dev/v3"

	"github.com/skulens/backend/internal/domain"
)

// Client handles vision-model extraction calls against the Gemini API
type Client struct {
	httpClient  *resty.Client
	apiKey      string
	baseURL     string
	model       string
	rateLimiter *rate.Limiter
}

// NewClient creates a new Gemini extraction client
func NewClient(apiKey, baseURL, model string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	httpClient := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	// Free-tier Gemini allows roughly 10 requests per minute
	limiter := rate.NewLimiter(rate.Limit(0.167), 2)

	return &Client{
		httpClient:  httpClient,
		apiKey:      apiKey,
		baseURL:     baseURL,
		model:       model,
		rateLimiter: limiter,
	}
}

// SetDebug enables request/response logging on the underlying HTTP client
func (c *Client) SetDebug(debug bool) {
	c.httpClient.SetDebug(debug)
}

// Request/response wire types for the generateContent endpoint

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	Temperature      float64 `json:"temperature"`
	ResponseMimeType string  `json:"responseMimeType"`
	ResponseSchema   *schema `json:"responseSchema,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type productCatalog struct {
	Products []domain.Product `json:"products"`
}

// ExtractProducts sends the catalog image to the vision model together with
// the fixed instruction prompt and returns the structured candidate list.
// Any transport, status, or decode failure is a hard failure for the whole
// request and surfaces as ErrExtractionFailed.
func (c *Client) ExtractProducts(ctx context.Context, image []byte) ([]domain.Product, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("%w: empty image", domain.ErrExtractionFailed)
	}

	// Wait for rate limiter
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	reqBody := generateRequest{
		Contents: []content{
			{
				Parts: []part{
					{Text: extractionPrompt},
					{InlineData: &inlineData{
						MimeType: http.DetectContentType(image),
						Data:     base64.StdEncoding.EncodeToString(image),
					}},
				},
			},
		},
		GenerationConfig: generationConfig{
			Temperature:      0,
			ResponseMimeType: "application/json",
			ResponseSchema:   catalogSchema,
		},
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)

	var genResp generateResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("x-goog-api-key", c.apiKey).
		SetBody(reqBody).
		SetResult(&genResp).
		Post(endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}

	if resp.IsError() {
		log.Warnf("gemini: generateContent returned status %d: %s", resp.StatusCode(), resp.String())
		return nil, fmt.Errorf("%w: status %d", domain.ErrExtractionFailed, resp.StatusCode())
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: model returned no candidates", domain.ErrExtractionFailed)
	}

	var catalog productCatalog
	text := genResp.Candidates[0].Content.Parts[0].Text
	if err := json.Unmarshal([]byte(text), &catalog); err != nil {
		log.Warnf("gemini: unusable model output: %v", err)
		return nil, fmt.Errorf("%w: failed to decode model output: %v", domain.ErrExtractionFailed, err)
	}

	log.Infof("gemini: extracted %d candidate product(s)", len(catalog.Products))
	return catalog.Products, nil
}
