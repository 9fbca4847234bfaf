// Package picker provides interactive fuzzy selection of aggregation
// targets.
package picker

import (
	"fmt"
	"os"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"golang.org/x/term"
)

// Pick lets the user fuzzy-select any number of candidates and returns
// the selection in the order it was made. It requires an interactive
// terminal on stdin.
func Pick(candidates []string) ([]string, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no candidates to pick from")
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, fmt.Errorf("interactive picking requires a terminal")
	}

	indexes, err := fuzzyfinder.FindMulti(candidates, func(i int) string {
		return candidates[i]
	})
	if err != nil {
		return nil, fmt.Errorf("selection aborted: %w", err)
	}

	picked := make([]string, 0, len(indexes))
	for _, i := range indexes {
		picked = append(picked, candidates[i])
	}
	return picked, nil
}
