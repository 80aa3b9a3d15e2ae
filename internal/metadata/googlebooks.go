package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// GoogleBooksClient fetches book metadata from the Google Books volumes API.
type GoogleBooksClient struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rateLimiter
}

// NewGoogleBooksClient creates a new Google Books API client with rate limiting.
func NewGoogleBooksClient() *GoogleBooksClient {
	return &GoogleBooksClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:     "https://www.googleapis.com",
		rateLimiter: newRateLimiter(time.Second),
	}
}

func (c *GoogleBooksClient) Name() string {
	return "googlebooks"
}

// LookupByISBN queries the volumes endpoint with an isbn: filter. A response
// without items means the key matched nothing and yields ErrNoMatch.
func (c *GoogleBooksClient) LookupByISBN(ctx context.Context, isbnCode string) (*Result, error) {
	searchURL := fmt.Sprintf("%s/books/v1/volumes?q=%s", c.baseURL, url.QueryEscape("isbn:"+isbnCode))

	c.rateLimiter.wait()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "Shelfstreak/1.0 (https://github.com/mrlokans/shelfstreak)")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch volume data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var volumes googleVolumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&volumes); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if len(volumes.Items) == 0 {
		return nil, ErrNoMatch
	}

	return convertVolumeInfo(&volumes.Items[0].VolumeInfo, isbnCode), nil
}

func convertVolumeInfo(info *googleVolumeInfo, isbnCode string) *Result {
	return &Result{
		Title:       info.Title,
		Author:      strings.Join(info.Authors, ", "),
		Pages:       info.PageCount,
		ISBN:        isbnCode,
		Thumbnail:   info.ImageLinks.Thumbnail,
		Description: info.Description,
	}
}

// Google Books API response types (internal)

type googleVolumesResponse struct {
	TotalItems int            `json:"totalItems"`
	Items      []googleVolume `json:"items"`
}

type googleVolume struct {
	VolumeInfo googleVolumeInfo `json:"volumeInfo"`
}

type googleVolumeInfo struct {
	Title       string           `json:"title"`
	Authors     []string         `json:"authors"`
	PageCount   int              `json:"pageCount"`
	Description string           `json:"description"`
	ImageLinks  googleImageLinks `json:"imageLinks"`
}

type googleImageLinks struct {
	SmallThumbnail string `json:"smallThumbnail"`
	Thumbnail      string `json:"thumbnail"`
}
