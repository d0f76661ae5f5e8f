package Services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSearchMedicineForwardsResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "google", query.Get("engine"))
		assert.Equal(t, "in", query.Get("gl"))
		assert.Equal(t, "list online platform that sell paracetamol", query.Get("q"))
		assert.Equal(t, "key-123", query.Get("api_key"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"organic_results":[{"title":"PharmEasy"}]}`))
	}))
	defer server.Close()

	client := &SerpAPIClient{APIKey: "key-123", BaseURL: server.URL, HTTP: &http.Client{Timeout: 5 * time.Second}}
	results, err := client.SearchMedicine("paracetamol")
	assert.NoError(t, err)
	assert.Contains(t, string(results), "PharmEasy")
}

func TestSearchMedicineUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid api key"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client := &SerpAPIClient{APIKey: "bad", BaseURL: server.URL, HTTP: &http.Client{Timeout: 5 * time.Second}}
	_, err := client.SearchMedicine("paracetamol")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}
