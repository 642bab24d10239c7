package vector

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Match is one similarity-search hit. Text carries the indexed document
// back out of the match metadata.
type Match struct {
	ID    string
	Score float32
	Text  string
}

// Vector is one document to upsert: id, embedding, and the source text
// stored as metadata so queries can return it.
type Vector struct {
	ID     string
	Values []float32
	Text   string
}

// Index is the slice of the vector service the pipeline needs.
type Index interface {
	Query(vector []float32, topK int) ([]Match, error)
	Upsert(vectors []Vector) (int, error)
}

// PineconeIndex talks to one Pinecone index over its data-plane REST API.
type PineconeIndex struct {
	host       string
	apiKey     string
	httpClient *http.Client
}

func NewPineconeIndex(host, apiKey string) *PineconeIndex {
	if !strings.HasPrefix(host, "http") {
		host = "https://" + host
	}
	return &PineconeIndex{
		host:       strings.TrimSuffix(host, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Query returns the topK nearest matches for the given embedding.
func (p *PineconeIndex) Query(vector []float32, topK int) ([]Match, error) {
	body := queryRequest{
		Vector:          vector,
		TopK:            topK,
		IncludeMetadata: true,
	}

	var raw queryResponse
	if err := p.post("/query", body, &raw); err != nil {
		return nil, fmt.Errorf("pinecone query: %w", err)
	}

	matches := make([]Match, 0, len(raw.Matches))
	for _, m := range raw.Matches {
		matches = append(matches, Match{
			ID:    m.ID,
			Score: m.Score,
			Text:  m.Metadata.Text,
		})
	}
	return matches, nil
}

// Upsert writes vectors into the index, overwriting existing ids, and
// returns the count the service acknowledged.
func (p *PineconeIndex) Upsert(vectors []Vector) (int, error) {
	body := upsertRequest{Vectors: make([]upsertVector, 0, len(vectors))}
	for _, v := range vectors {
		body.Vectors = append(body.Vectors, upsertVector{
			ID:       v.ID,
			Values:   v.Values,
			Metadata: vectorMetadata{Text: v.Text},
		})
	}

	var raw upsertResponse
	if err := p.post("/vectors/upsert", body, &raw); err != nil {
		return 0, fmt.Errorf("pinecone upsert: %w", err)
	}
	return raw.UpsertedCount, nil
}

func (p *PineconeIndex) post(path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, p.host+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Api-Key", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

type queryRequest struct {
	Vector          []float32 `json:"vector"`
	TopK            int       `json:"topK"`
	IncludeMetadata bool      `json:"includeMetadata"`
}

type queryResponse struct {
	Matches []queryMatch `json:"matches"`
}

type queryMatch struct {
	ID       string         `json:"id"`
	Score    float32        `json:"score"`
	Metadata vectorMetadata `json:"metadata"`
}

type vectorMetadata struct {
	Text string `json:"text"`
}

type upsertRequest struct {
	Vectors []upsertVector `json:"vectors"`
}

type upsertVector struct {
	ID       string         `json:"id"`
	Values   []float32      `json:"values"`
	Metadata vectorMetadata `json:"metadata"`
}

type upsertResponse struct {
	UpsertedCount int `json:"upsertedCount"`
}
