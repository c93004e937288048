// Package tokenizer provides token counting under a fixed approximation
// scheme. Every chunk-size decision in the pipeline goes through this
// package so boundaries stay reproducible.
package tokenizer

import (
	"strings"
	"unicode"
)

// Count approximates the token count of text.
//
// The scheme is fixed: whitespace-split words weighted at ~1.3 tokens
// per word, plus half the punctuation runes. It deliberately mirrors
// how subword tokenizers behave on English legal prose without pulling
// in a model-specific encoder; what matters downstream is that the
// same text always yields the same count.
func Count(text string) int {
	if text == "" {
		return 0
	}

	wordCount := len(strings.Fields(text))

	punctCount := 0
	for _, r := range text {
		if unicode.IsPunct(r) {
			punctCount++
		}
	}

	return int(float64(wordCount)*1.3) + punctCount/2
}

// CountAll sums Count over every text.
func CountAll(texts []string) int {
	total := 0
	for _, t := range texts {
		total += Count(t)
	}
	return total
}
