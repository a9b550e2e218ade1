// Package nyt fetches the day's Letter Boxed puzzle from the NYT page and
// extracts the game state embedded in it.
package nyt

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultURL is the public puzzle page.
const DefaultURL = "https://www.nytimes.com/puzzles/letter-boxed"

// gameDataMarker precedes the JSON blob holding the puzzle state.
const gameDataMarker = "window.gameData = "

// GameData is the puzzle state embedded in the page. The dictionary is
// pre-filtered by the puzzle's own rules, so callers can index it without
// re-validating.
type GameData struct {
	Sides       []string `json:"sides"`
	Dictionary  []string `json:"dictionary"`
	OurSolution []string `json:"ourSolution"`
	Par         int      `json:"par"`
	PrintDate   string   `json:"printDate"`
}

// Parse extracts the embedded game data from the puzzle page HTML and
// normalizes all letters to lowercase.
func Parse(page []byte) (*GameData, error) {
	i := bytes.Index(page, []byte(gameDataMarker))
	if i < 0 {
		return nil, errors.New("no game data found in page")
	}

	var gd GameData
	dec := json.NewDecoder(bytes.NewReader(page[i+len(gameDataMarker):]))
	if err := dec.Decode(&gd); err != nil {
		return nil, fmt.Errorf("decoding game data: %w", err)
	}
	if len(gd.Sides) != 4 {
		return nil, fmt.Errorf("game data has %d sides, want 4", len(gd.Sides))
	}

	lower(gd.Sides)
	lower(gd.Dictionary)
	lower(gd.OurSolution)
	return &gd, nil
}

// Fetch downloads the puzzle page at url (DefaultURL if empty) and parses
// the embedded game data.
func Fetch(ctx context.Context, url string) (*GameData, error) {
	if url == "" {
		url = DefaultURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	page, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return Parse(page)
}

func lower(words []string) {
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
}
