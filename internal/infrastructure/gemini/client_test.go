package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skulens/backend/internal/domain"
)

// fakeModelResponse builds a generateContent response whose single text part
// carries the given catalog JSON
func fakeModelResponse(t *testing.T, catalog productCatalog) []byte {
	t.Helper()

	text, err := json.Marshal(catalog)
	require.NoError(t, err)

	resp := map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"parts": []map[string]interface{}{
						{"text": string(text)},
					},
				},
			},
		},
	}

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	return body
}

// pngHeader is enough bytes for content-type sniffing to say image/png
var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}

func TestNewClient(t *testing.T) {
	client := NewClient("test-api-key", "https://api.example.com", "test-model", 30*time.Second)

	assert.NotNil(t, client)
	assert.Equal(t, "test-api-key", client.apiKey)
	assert.Equal(t, "https://api.example.com", client.baseURL)
	assert.Equal(t, "test-model", client.model)
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.rateLimiter)
}

func TestExtractProducts_Success(t *testing.T) {
	catalog := productCatalog{
		Products: []domain.Product{
			{
				Name:           "60 inch Vanity",
				SKU:            "ABC123",
				PrimaryColor:   "White",
				SecondaryColor: "White Matte",
				ColorCode:      "#FFFFFF",
				Price:          "$1,595",
			},
		},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "test-api-key", r.Header.Get("x-goog-api-key"))

		var req generateRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)

		require.Len(t, req.Contents, 1)
		require.Len(t, req.Contents[0].Parts, 2)
		assert.Equal(t, extractionPrompt, req.Contents[0].Parts[0].Text)
		require.NotNil(t, req.Contents[0].Parts[1].InlineData)
		assert.Equal(t, "image/png", req.Contents[0].Parts[1].InlineData.MimeType)
		assert.NotEmpty(t, req.Contents[0].Parts[1].InlineData.Data)
		assert.Equal(t, "application/json", req.GenerationConfig.ResponseMimeType)
		assert.NotNil(t, req.GenerationConfig.ResponseSchema)

		w.Header().Set("Content-Type", "application/json")
		w.Write(fakeModelResponse(t, catalog))
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, "test-model", 30*time.Second)
	ctx := context.Background()

	products, err := client.ExtractProducts(ctx, pngHeader)

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "ABC123", products[0].SKU)
	assert.Equal(t, "White", products[0].PrimaryColor)
	assert.Equal(t, "White Matte", products[0].SecondaryColor)
	assert.Equal(t, "$1,595", products[0].Price)
}

func TestExtractProducts_EmptyCatalog(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(fakeModelResponse(t, productCatalog{Products: []domain.Product{}}))
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, "test-model", 30*time.Second)

	products, err := client.ExtractProducts(context.Background(), pngHeader)

	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestExtractProducts_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, "test-model", 30*time.Second)

	_, err := client.ExtractProducts(context.Background(), pngHeader)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
}

func TestExtractProducts_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, "test-model", 30*time.Second)

	_, err := client.ExtractProducts(context.Background(), pngHeader)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
}

func TestExtractProducts_MalformedModelOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{
					"content": map[string]interface{}{
						"parts": []map[string]interface{}{
							{"text": "not json at all"},
						},
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, "test-model", 30*time.Second)

	_, err := client.ExtractProducts(context.Background(), pngHeader)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
}

func TestExtractProducts_EmptyImage(t *testing.T) {
	client := NewClient("test-api-key", "https://api.example.com", "test-model", 30*time.Second)

	_, err := client.ExtractProducts(context.Background(), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExtractionFailed)
}
