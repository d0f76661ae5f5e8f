package Services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

type SerpAPIClient struct {
	APIKey  string
	BaseURL string
	HTTP    *http.Client
}

func NewSerpAPIClient() *SerpAPIClient {
	return &SerpAPIClient{
		APIKey:  os.Getenv("SERPAPI_KEY"),
		BaseURL: "https://serpapi.com",
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SearchMedicine asks the google engine for platforms selling the medicine
// and returns the raw response body for the handler to forward.
func (s *SerpAPIClient) SearchMedicine(name string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", fmt.Sprintf("list online platform that sell %s", name))
	params.Set("gl", "in")
	params.Set("hl", "en")
	params.Set("api_key", s.APIKey)

	resp, err := s.HTTP.Get(s.BaseURL + "/search?" + params.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("search failed with status %d: %s", resp.StatusCode, body)
	}

	return json.RawMessage(body), nil
}
