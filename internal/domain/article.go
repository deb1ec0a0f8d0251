package domain

// ProcessingStatus classifies the terminal state of a single article run.
type ProcessingStatus string

const (
	StatusOK            ProcessingStatus = "OK"
	StatusFetchError    ProcessingStatus = "FETCH_ERROR"
	StatusParsingError  ProcessingStatus = "PARSING_ERROR"
	StatusBadURL        ProcessingStatus = "BAD_URL"
	StatusRemoteTimeout ProcessingStatus = "REMOTE_TIMEOUT"
	StatusLocalTimeout  ProcessingStatus = "LOCAL_TIMEOUT"
	// StatusInternalError covers defects in sanitizers or the tokenizer.
	StatusInternalError ProcessingStatus = "INTERNAL_ERROR"
)

// Statuses lists every status in a stable order (used for metrics and docs).
func Statuses() []ProcessingStatus {
	return []ProcessingStatus{
		StatusOK,
		StatusFetchError,
		StatusParsingError,
		StatusBadURL,
		StatusRemoteTimeout,
		StatusLocalTimeout,
		StatusInternalError,
	}
}

// ArticleResult is the outcome of processing one URL.
// Score and WordCount are set only when Status is StatusOK.
type ArticleResult struct {
	URL       string           `json:"url"`
	Status    ProcessingStatus `json:"status"`
	Score     *float64         `json:"score"`
	WordCount *int             `json:"word count"`
}

// Succeeded builds an OK result carrying the jaundice rate and word count.
func Succeeded(url string, score float64, words int) ArticleResult {
	return ArticleResult{
		URL:       url,
		Status:    StatusOK,
		Score:     &score,
		WordCount: &words,
	}
}

// Failed builds a result without score and word count.
func Failed(url string, status ProcessingStatus) ArticleResult {
	return ArticleResult{URL: url, Status: status}
}

// Analysis is the local scoring outcome of one article.
type Analysis struct {
	Score     float64
	WordCount int
}
