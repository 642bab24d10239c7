package news

import "time"

type Article struct {
	ExternalID  string
	Headline    string
	Detail      string
	URL         string
	Source      string
	PublishedAt time.Time
	Symbols     []string
	Publisher   string
}

// TickerNewsClient fetches the most recent articles for one ticker,
// newest first.
type TickerNewsClient interface {
	Latest(ticker string, limit int) ([]Article, error)
	Name() string
}
