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

// OpenLibraryClient fetches book metadata from the OpenLibrary books API.
type OpenLibraryClient struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rateLimiter
}

// NewOpenLibraryClient creates a new OpenLibrary API client with rate limiting.
func NewOpenLibraryClient() *OpenLibraryClient {
	return &OpenLibraryClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:     "https://openlibrary.org",
		rateLimiter: newRateLimiter(time.Second), // 1 request per second
	}
}

func (c *OpenLibraryClient) Name() string {
	return "openlibrary"
}

// LookupByISBN queries the books endpoint keyed by "ISBN:<code>". The
// response is a map; a missing key means no entry matched and yields
// ErrNoMatch.
func (c *OpenLibraryClient) LookupByISBN(ctx context.Context, isbnCode string) (*Result, error) {
	bibkey := "ISBN:" + isbnCode
	lookupURL := fmt.Sprintf("%s/api/books?bibkeys=%s&format=json&jscmd=data", c.baseURL, url.QueryEscape(bibkey))

	c.rateLimiter.wait()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "Shelfstreak/1.0 (https://github.com/mrlokans/shelfstreak)")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch ISBN data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var entries map[string]openLibraryBook
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	book, ok := entries[bibkey]
	if !ok {
		return nil, ErrNoMatch
	}

	return convertOpenLibraryBook(&book, isbnCode), nil
}

func convertOpenLibraryBook(book *openLibraryBook, isbnCode string) *Result {
	authors := make([]string, 0, len(book.Authors))
	for _, a := range book.Authors {
		if a.Name != "" {
			authors = append(authors, a.Name)
		}
	}

	thumbnail := book.Cover.Medium
	if thumbnail == "" {
		thumbnail = book.Cover.Small
	}

	return &Result{
		Title:       book.Title,
		Author:      strings.Join(authors, ", "),
		Pages:       book.NumberOfPages,
		ISBN:        isbnCode,
		Thumbnail:   thumbnail,
		Description: book.Subtitle,
	}
}

// OpenLibrary API response types (internal)

type openLibraryBook struct {
	Title         string            `json:"title"`
	Subtitle      string            `json:"subtitle"`
	Authors       []openLibraryName `json:"authors"`
	NumberOfPages int               `json:"number_of_pages"`
	Cover         openLibraryCover  `json:"cover"`
	Publishers    []openLibraryName `json:"publishers"`
}

type openLibraryName struct {
	Name string `json:"name"`
}

type openLibraryCover struct {
	Small  string `json:"small"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
}
