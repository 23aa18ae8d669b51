package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// MealDBService is the client for TheMealDB lookup API. Response bodies are
// opaque JSON passed through to callers unchanged; no schema is imposed.
type MealDBService struct {
	baseURL string
	client  *http.Client
}

func NewMealDBService(baseURL string) *MealDBService {
	return &MealDBService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// SearchByIngredient lists meals containing the given ingredient.
func (s *MealDBService) SearchByIngredient(ingredient string) (json.RawMessage, error) {
	return s.get("filter.php", url.Values{"i": {ingredient}})
}

// SearchByName searches meals by name.
func (s *MealDBService) SearchByName(name string) (json.RawMessage, error) {
	return s.get("search.php", url.Values{"s": {name}})
}

// SearchByCategory lists meals in the given category.
func (s *MealDBService) SearchByCategory(category string) (json.RawMessage, error) {
	return s.get("filter.php", url.Values{"c": {category}})
}

// LookupByID fetches the full recipe for a meal identifier.
func (s *MealDBService) LookupByID(mealID string) (json.RawMessage, error) {
	return s.get("lookup.php", url.Values{"i": {mealID}})
}

// Categories lists all recipe categories.
func (s *MealDBService) Categories() (json.RawMessage, error) {
	return s.get("categories.php", nil)
}

func (s *MealDBService) get(endpoint string, params url.Values) (json.RawMessage, error) {
	u := s.baseURL + "/" + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call TheMealDB: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read TheMealDB response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("TheMealDB API error %d: %s", resp.StatusCode, string(body))
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("invalid JSON from TheMealDB")
	}
	return json.RawMessage(body), nil
}

// MealCount reports how many entries the payload's "meals" array holds.
// TheMealDB returns {"meals": null} for empty results, which counts as zero.
func MealCount(payload json.RawMessage) int {
	var probe struct {
		Meals []json.RawMessage `json:"meals"`
	}
	if err := json.Unmarshal(payload, &probe); err != nil {
		return 0
	}
	return len(probe.Meals)
}
