package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"

	"github.com/jsmatfess/ltrbxd"
	"github.com/jsmatfess/ltrbxd/internal/dictionary"
)

type SolvePuzzleRequest struct {
	Sides     []string `json:"sides"`
	Words     []string `json:"words"`
	WordScope string   `json:"wordScope"`
	MaxWords  int      `json:"maxWords"`
}

type SolutionJSON struct {
	Words   []string `json:"words"`
	Letters int      `json:"letters"`
}

type SolvePuzzleResponse struct {
	Success   bool           `json:"success"`
	Solutions []SolutionJSON `json:"solutions"`
	Error     string         `json:"error,omitempty"`
}

func execute(ctx context.Context, req SolvePuzzleRequest) ([]SolutionJSON, error) {
	if req.MaxWords <= 0 {
		return nil, fmt.Errorf("maxWords must be at least 1")
	}
	if req.MaxWords > 5 {
		return nil, fmt.Errorf("maxWords must be at most 5")
	}

	for i, word := range req.Words {
		req.Words[i] = strings.ToLower(word)
	}

	if req.WordScope != "" {
		projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
		if projectID == "" {
			return nil, fmt.Errorf("GOOGLE_CLOUD_PROJECT is not set")
		}
		words, err := dictionary.FromBigQuery(ctx, projectID, req.WordScope)
		if err != nil {
			return nil, fmt.Errorf("dictionary.FromBigQuery: %w", err)
		}
		fmt.Printf("Loaded %d words for scope %q\n", len(words), req.WordScope)
		req.Words = append(req.Words, words...)
	}

	if len(req.Words) == 0 {
		return nil, fmt.Errorf("words must not be empty")
	}

	puzzle, err := ltrbxd.NewPuzzle(req.Sides)
	if err != nil {
		return nil, err
	}
	index := ltrbxd.BuildIndex(req.Words, puzzle, false)

	deadline, ok := ctx.Deadline()
	timeout := 1 * time.Minute
	if ok {
		timeout = time.Until(deadline) - 5*time.Second
		fmt.Printf("Setting timeout to %v\n", timeout)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	solver := ltrbxd.NewSolver(puzzle, index, req.MaxWords)

	var solutions []SolutionJSON
	for sol := range solver.Solutions(ctx) {
		fmt.Printf("Found solution with %d letters\n", sol.Letters)
		solutions = append(solutions, SolutionJSON{Words: sol.Words, Letters: sol.Letters})
	}

	return solutions, ctx.Err()
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func solvePuzzle(w http.ResponseWriter, r *http.Request) {
	// Set CORS headers
	setCORSHeaders(w)

	// Handle OPTIONS request for CORS preflight
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		fmt.Fprintf(w, `{"success": false, "error": "Method %s not allowed"}`, r.Method)
		return
	}

	var req SolvePuzzleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fmt.Printf("Error parsing JSON body: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		response := SolvePuzzleResponse{
			Success: false,
			Error:   fmt.Sprintf("Invalid JSON: %v", err),
		}
		json.NewEncoder(w).Encode(response)
		return
	}

	solutions, err := execute(r.Context(), req)

	response := SolvePuzzleResponse{
		Success:   err == nil,
		Solutions: solutions,
	}

	if err != nil {
		response.Error = err.Error()
	} else if len(solutions) == 0 {
		response.Error = "No solution found within the given word bound"
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		fmt.Printf("Error marshaling response: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"success": false, "error": "Internal server error"}`)
		return
	}
}

func main() {
	funcframework.RegisterHTTPFunction("/solve", solvePuzzle)

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	hostname := ""
	if localOnly := os.Getenv("LOCAL_ONLY"); localOnly == "true" {
		hostname = "127.0.0.1"
	}
	if err := funcframework.StartHostPort(hostname, port); err != nil {
		log.Fatalf("funcframework.StartHostPort: %v\n", err)
	}
}
