package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/Demureaxs/weaver-final-v1/internal/domain/entities"
)

// Modifier lists expanded around the seed keyword, one autocomplete query
// per permutation.
var (
	questionModifiers = []string{
		"who", "what", "when", "where", "why", "how", "is", "are", "can",
		"do", "does", "which", "will", "how much", "how many", "how long",
		"how often",
	}
	prepositionModifiers = []string{
		"for", "with", "without", "to", "like", "as", "at", "from", "in",
		"on", "near", "over", "under", "about",
	}
	comparisonModifiers = []string{
		"vs", "versus", "or", "and", "like", "better than", "worse than",
		"alternative to", "similar to",
	}
	alphabeticalModifiers = strings.Split("abcdefghijklmnopqrstuvwxyz", "")
)

var questionPrefix = regexp.MustCompile(`(?i)^(who|what|when|where|why|how)`)

type KeywordMetrics struct {
	Keyword      string `json:"keyword"`
	SearchVolume string `json:"searchVolume"`
	Difficulty   string `json:"difficulty"`
}

type KeywordSuggestions struct {
	Questions    []KeywordMetrics `json:"questions"`
	Prepositions []KeywordMetrics `json:"prepositions"`
	Comparisons  []KeywordMetrics `json:"comparisons"`
	Alphabetical []KeywordMetrics `json:"alphabetical"`
}

// SuggestFetcher returns autocomplete completions for one query. Swappable
// in tests.
type SuggestFetcher func(ctx context.Context, query string) []string

type KeywordService struct {
	fetch SuggestFetcher
}

func NewKeywordService() *KeywordService {
	client := &http.Client{Timeout: 5 * time.Second}
	return &KeywordService{fetch: googleAutocomplete(client)}
}

func NewKeywordServiceWithFetcher(fetch SuggestFetcher) *KeywordService {
	return &KeywordService{fetch: fetch}
}

// Suggest expands the seed keyword through every modifier list, fetches the
// batches concurrently, and attaches heuristic volume/difficulty scores.
func (s *KeywordService) Suggest(ctx context.Context, keyword string) (*KeywordSuggestions, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, entities.ErrInvalidRequest
	}

	var (
		wg     sync.WaitGroup
		result KeywordSuggestions
	)

	run := func(queries []string, dst *[]KeywordMetrics) {
		defer wg.Done()
		*dst = s.processBatch(ctx, queries)
	}

	wg.Add(4)
	go run(prefixQueries(questionModifiers, keyword), &result.Questions)
	go run(suffixQueries(keyword, prepositionModifiers), &result.Prepositions)
	go run(suffixQueries(keyword, comparisonModifiers), &result.Comparisons)
	go run(suffixQueries(keyword, alphabeticalModifiers), &result.Alphabetical)
	wg.Wait()

	return &result, nil
}

// processBatch fans out one fetch per query, then de-duplicates and scores.
func (s *KeywordService) processBatch(ctx context.Context, queries []string) []KeywordMetrics {
	results := make([][]string, len(queries))
	var wg sync.WaitGroup
	for i, q := range queries {
		wg.Add(1)
		go func(i int, q string) {
			defer wg.Done()
			results[i] = s.fetch(ctx, q)
		}(i, q)
	}
	wg.Wait()

	seen := make(map[string]struct{})
	var unique []string
	for _, batch := range results {
		for _, kw := range batch {
			if _, ok := seen[kw]; ok {
				continue
			}
			seen[kw] = struct{}{}
			unique = append(unique, kw)
		}
	}

	metrics := make([]KeywordMetrics, 0, len(unique))
	for _, kw := range unique {
		metrics = append(metrics, KeywordMetrics{
			Keyword:      kw,
			SearchVolume: EstimateSearchVolume(kw, len(unique)),
			Difficulty:   EstimateDifficulty(kw),
		})
	}
	return metrics
}

func prefixQueries(modifiers []string, keyword string) []string {
	out := make([]string, len(modifiers))
	for i, m := range modifiers {
		out[i] = m + " " + keyword
	}
	return out
}

func suffixQueries(keyword string, modifiers []string) []string {
	out := make([]string, len(modifiers))
	for i, m := range modifiers {
		out[i] = keyword + " " + m
	}
	return out
}

// EstimateSearchVolume is a heuristic, not real data: popularity scales with
// how many completions the batch produced, and shorter keywords score higher.
func EstimateSearchVolume(keyword string, suggestionCount int) string {
	wordCount := len(strings.Fields(keyword))
	volume := float64(suggestionCount * 100)

	if wordCount <= 2 {
		volume *= 2
	}
	if wordCount >= 5 {
		volume *= 0.5
	}

	switch {
	case volume >= 10000:
		return fmt.Sprintf("%dK", int(volume/1000+0.5))
	case volume >= 1000:
		return fmt.Sprintf("%.1fK", volume/1000)
	default:
		return fmt.Sprintf("%d", int(volume))
	}
}

// EstimateDifficulty buckets a 0-100 heuristic into Easy/Medium/Hard.
func EstimateDifficulty(keyword string) string {
	wordCount := len(strings.Fields(keyword))
	charCount := len(keyword)

	difficulty := 50
	switch {
	case wordCount == 1:
		difficulty += 30
	case wordCount == 2:
		difficulty += 15
	case wordCount >= 4:
		difficulty -= 20
	}
	if charCount < 10 {
		difficulty += 10
	}
	if questionPrefix.MatchString(keyword) {
		difficulty -= 15
	}

	if difficulty < 0 {
		difficulty = 0
	}
	if difficulty > 100 {
		difficulty = 100
	}

	switch {
	case difficulty < 30:
		return "Easy"
	case difficulty < 60:
		return "Medium"
	default:
		return "Hard"
	}
}

// googleAutocomplete queries the public completion endpoint. Failures yield
// an empty batch rather than an error.
func googleAutocomplete(client *http.Client) SuggestFetcher {
	return func(ctx context.Context, query string) []string {
		endpoint := "https://google.com/complete/search?client=chrome&q=" + url.QueryEscape(query)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil
		}

		body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if err != nil {
			return nil
		}

		// Response shape: [query, [suggestions...], ...]
		var payload []json.RawMessage
		if err := json.Unmarshal(body, &payload); err != nil || len(payload) < 2 {
			return nil
		}
		var suggestions []string
		if err := json.Unmarshal(payload[1], &suggestions); err != nil {
			return nil
		}
		return suggestions
	}
}
