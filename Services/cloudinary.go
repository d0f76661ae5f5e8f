package Services

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type CloudinaryClient struct {
	CloudName string
	APIKey    string
	APISecret string
	BaseURL   string
	HTTP      *http.Client
}

func NewCloudinaryClient() *CloudinaryClient {
	return &CloudinaryClient{
		CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		BaseURL:   "https://api.cloudinary.com/v1_1",
		HTTP:      &http.Client{Timeout: 60 * time.Second},
	}
}

type CloudinaryUploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

// UploadImage performs a signed upload of a base64 data-URI.
func (c *CloudinaryClient) UploadImage(imageData, folder string) (*CloudinaryUploadResponse, error) {
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	publicID := uuid.New().String()

	form := url.Values{}
	form.Set("file", imageData)
	form.Set("api_key", c.APIKey)
	form.Set("timestamp", timestamp)
	form.Set("folder", folder)
	form.Set("public_id", publicID)
	form.Set("signature", c.sign(folder, publicID, timestamp))

	endpoint := fmt.Sprintf("%s/%s/image/upload", c.BaseURL, c.CloudName)
	resp, err := c.HTTP.PostForm(endpoint, form)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("cloudinary upload failed with status %d: %s", resp.StatusCode, body)
	}

	var result CloudinaryUploadResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// sign hashes the alphabetically ordered upload parameters with the API
// secret, per the Cloudinary signed-upload contract.
func (c *CloudinaryClient) sign(folder, publicID, timestamp string) string {
	toSign := fmt.Sprintf("folder=%s&public_id=%s&timestamp=%s%s", folder, publicID, timestamp, c.APISecret)
	sum := sha1.Sum([]byte(toSign))
	return hex.EncodeToString(sum[:])
}
