package news

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

type MassiveClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewMassiveClient(apiKey string) *MassiveClient {
	return &MassiveClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *MassiveClient) Name() string {
	return "Massive"
}

// Latest returns up to limit articles for ticker, newest first.
func (c *MassiveClient) Latest(ticker string, limit int) ([]Article, error) {
	reqURL := fmt.Sprintf(
		"https://api.massive.com/v2/reference/news?ticker=%s&limit=%d&order=desc&sort=published_utc&apiKey=%s",
		url.QueryEscape(ticker), limit, c.apiKey,
	)

	resp, err := c.httpClient.Get(reqURL)
	if err != nil {
		return nil, fmt.Errorf("massive fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("massive fetch: status %d", resp.StatusCode)
	}

	var raw massiveResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("massive decode: %w", err)
	}

	articles := make([]Article, 0, len(raw.Results))
	for _, item := range raw.Results {
		// Timestamps are strictly YYYY-MM-DDTHH:MM:SSZ. An article whose
		// timestamp does not parse has no valid partition, so it is
		// dropped rather than filed under the zero time.
		publishedAt, err := time.Parse(time.RFC3339, item.PublishedUTC)
		if err != nil {
			slog.Warn("skipping article with malformed timestamp",
				"ticker", ticker, "published_utc", item.PublishedUTC, "url", item.ArticleURL)
			continue
		}

		externalID := item.ID
		if externalID == "" {
			externalID = generateExternalID(item.ArticleURL)
		}

		articles = append(articles, Article{
			ExternalID:  externalID,
			Headline:    item.Title,
			Detail:      item.Description,
			URL:         item.ArticleURL,
			Publisher:   item.Publisher.Name,
			PublishedAt: publishedAt,
			Symbols:     item.Tickers,
			Source:      c.Name(),
		})
	}

	return articles, nil
}

// generateExternalID derives a stable id from the article URL for feed
// items that arrive without one.
func generateExternalID(url string) string {
	sum := sha256.Sum256([]byte(url))
	return fmt.Sprintf("%x", sum)[:16]
}

type massiveResponse struct {
	Results []massiveResult `json:"results"`
}

type massiveResult struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	ArticleURL   string           `json:"article_url"`
	PublishedUTC string           `json:"published_utc"`
	Tickers      []string         `json:"tickers"`
	Publisher    massivePublisher `json:"publisher"`
}

type massivePublisher struct {
	Name string `json:"name"`
}
