package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"nutritrack/models"
)

const defaultEdamamBaseURL = "https://api.edamam.com"

type EdamamService struct {
	appID, appKey string
	baseURL       string
	client        *http.Client
}

// NewEdamamService initializes the EdamamService with credentials and HTTP client
func NewEdamamService(appID, appKey string) *EdamamService {
	return &EdamamService{
		appID:   appID,
		appKey:  appKey,
		baseURL: defaultEdamamBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// WithBaseURL points the client at another host (tests, proxies).
func (s *EdamamService) WithBaseURL(u string) *EdamamService {
	s.baseURL = u
	return s
}

type edamamFood struct {
	FoodID    string             `json:"foodId"`
	Label     string             `json:"label"`
	Nutrients map[string]float64 `json:"nutrients"`
}

type foodParserResponse struct {
	Parsed []struct {
		Food edamamFood `json:"food"`
	} `json:"parsed"`
	Hints []struct {
		Food edamamFood `json:"food"`
	} `json:"hints"`
}

// Lookup calls the food-database parser endpoint and returns the first
// match's nutrients (Edamam reports them per 100 g).
func (s *EdamamService) Lookup(ctx context.Context, query string) (models.Nutrients, error) {
	cleaned := NormalizeFoodQuery(query)
	if cleaned == "" {
		return models.Nutrients{}, fmt.Errorf("empty query %q: %w", query, ErrFoodNotFound)
	}

	u := fmt.Sprintf(
		"%s/api/food-database/v2/parser?ingr=%s&app_id=%s&app_key=%s",
		s.baseURL, url.QueryEscape(cleaned), url.QueryEscape(s.appID), url.QueryEscape(s.appKey),
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return models.Nutrients{}, fmt.Errorf("failed to create parser request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return models.Nutrients{}, fmt.Errorf("failed to call Edamam parser: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Nutrients{}, fmt.Errorf("failed to read Edamam parser response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return models.Nutrients{}, fmt.Errorf("edamam parser API error %d: %s", resp.StatusCode, string(body))
	}

	var pr foodParserResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return models.Nutrients{}, fmt.Errorf("failed to parse Edamam parser JSON: %w", err)
	}

	var food *edamamFood
	switch {
	case len(pr.Parsed) > 0:
		food = &pr.Parsed[0].Food
	case len(pr.Hints) > 0:
		food = &pr.Hints[0].Food
	default:
		return models.Nutrients{}, fmt.Errorf("%q: %w", cleaned, ErrFoodNotFound)
	}

	n := food.Nutrients
	return models.Nutrients{
		Calories: n["ENERC_KCAL"],
		Protein:  n["PROCNT"],
		Carbs:    n["CHOCDF"],
		Fat:      n["FAT"],
		Fiber:    n["FIBTG"],
		Sugar:    n["SUGAR"],
	}, nil
}
