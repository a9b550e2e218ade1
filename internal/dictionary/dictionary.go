// Package dictionary supplies raw word lists for the solver, from a local
// file or from the words table in BigQuery. The solver itself never does
// I/O; these loaders hand it plain lowercase strings.
package dictionary

import (
	"bufio"
	"os"
	"strings"
)

// Load reads a word list file, one word per line. Words are lowercased;
// blank lines and '#' comments are skipped. Words containing anything
// outside a-z can never be played, so they are dropped here.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
scan:
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		for i := 0; i < len(word); i++ {
			if word[i] < 'a' || word[i] > 'z' {
				continue scan
			}
		}
		words = append(words, word)
	}
	return words, scanner.Err()
}
