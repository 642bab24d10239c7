package handler

type PredictRequest struct {
	Query string `json:"query"`
}

type PredictResponse struct {
	Answer string `json:"answer"`
}

type TransformRequest struct {
	Tickers []string `json:"tickers"`
	Year    int      `json:"year"`
	Months  []int    `json:"months"`
}

type TransformResponse struct {
	Message  string `json:"message"`
	Exported int    `json:"exported"`
	Skipped  int    `json:"skipped"`
}

type FeedbackRequest struct {
	IncrementBy int64 `json:"increment_by"`
}

type FeedbackResponse struct {
	Counter int64 `json:"counter"`
}

type StoredObjectResponse struct {
	Source     string `json:"source"`
	Bucket     string `json:"bucket"`
	ObjectPath string `json:"object_path"`
	Kind       string `json:"kind"`
	WrittenAt  string `json:"written_at"`
}

type SourceCountResponse struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

type StatusResponse struct {
	Recent  []StoredObjectResponse `json:"recent"`
	Sources []SourceCountResponse  `json:"sources"`
}
