package reel

import "strings"

// DefaultMaxScenes is the scene cap when none is configured.
const DefaultMaxScenes = 5

// Summarise splits article into non-empty trimmed paragraphs and picks up to
// max of them, evenly spaced from the start. Returns nil for an empty article.
func Summarise(article string, max int) []string {
	if max <= 0 {
		max = DefaultMaxScenes
	}
	var paras []string
	for _, line := range strings.Split(article, "\n") {
		if p := strings.TrimSpace(line); p != "" {
			paras = append(paras, p)
		}
	}
	if len(paras) == 0 {
		return nil
	}
	n := min(max, len(paras))
	out := make([]string, n)
	for i := range n {
		// floor(i * len/n)
		out[i] = paras[i*len(paras)/n]
	}
	return out
}
