package analysis

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/telegram-chat-stats/internal/models"
)

// wordPattern matches runs of Unicode letters and digits; punctuation,
// whitespace and emoji act as separators
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}]+`)

// TopWords tokenizes the extracted text of every message, lowercases
// each token, drops tokens shorter than two runes and tokens from the
// stop-word set, and ranks the rest by descending count with ascending
// lexicographic order breaking ties. The result is truncated to limit
// entries; limit <= 0 disables truncation.
func TopWords(messages []models.Message, stopWords map[string]struct{}, limit int) []models.WordCount {
	counts := make(map[string]int)

	for i := range messages {
		text := messages[i].Text.String()
		for _, token := range wordPattern.FindAllString(text, -1) {
			token = strings.ToLower(token)
			if utf8.RuneCountInString(token) < 2 {
				continue
			}
			if _, skip := stopWords[token]; skip {
				continue
			}
			counts[token]++
		}
	}

	items := make([]models.WordCount, 0, len(counts))
	for word, count := range counts {
		items = append(items, models.WordCount{Word: word, Count: count})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Word < items[j].Word
	})

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}
