package analysis

import (
	"math"

	"github.com/telegram-chat-stats/internal/models"
)

// variationSelector is U+FE0F, the emoji presentation selector
const variationSelector = '️'

// emojiRanges are the Unicode blocks treated as emoji bases: regional
// indicators, pictographs, emoticons, transport/map symbols,
// supplemental symbols, dingbats and misc symbols
var emojiRanges = [][2]rune{
	{0x1F1E6, 0x1F1FF},
	{0x1F300, 0x1F5FF},
	{0x1F600, 0x1F64F},
	{0x1F680, 0x1F6FF},
	{0x1F700, 0x1F77F},
	{0x1F780, 0x1F7FF},
	{0x1F800, 0x1F8FF},
	{0x1F900, 0x1F9FF},
	{0x1FA00, 0x1FAFF},
	{0x2600, 0x26FF},
	{0x2700, 0x27BF},
}

func isEmojiRune(r rune) bool {
	for _, block := range emojiRanges {
		if r >= block[0] && r <= block[1] {
			return true
		}
	}
	return false
}

// ExtractEmojis scans text for emoji bases. A base immediately followed
// by the variation selector keeps the selector as part of its token.
// Longer multi-codepoint sequences (ZWJ combinations, flag pairs) are
// not merged; each base is scanned independently.
func ExtractEmojis(text string) []string {
	var emojis []string

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		if !isEmojiRune(runes[i]) {
			continue
		}
		emoji := string(runes[i])
		if i+1 < len(runes) && runes[i+1] == variationSelector {
			emoji += string(variationSelector)
			i++
		}
		emojis = append(emojis, emoji)
	}

	return emojis
}

// TopEmoji returns the single most frequent emoji across all extracted
// text. Ties keep the emoji that was seen first, so repeated runs over
// the same input produce identical reports.
func TopEmoji(messages []models.Message) models.EmojiStats {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	for i := range messages {
		for _, emoji := range ExtractEmojis(messages[i].Text.String()) {
			if _, ok := counts[emoji]; !ok {
				firstSeen[emoji] = len(firstSeen)
			}
			counts[emoji]++
		}
	}

	best := models.EmojiStats{}
	bestSeen := math.MaxInt
	for emoji, count := range counts {
		if count > best.Count || (count == best.Count && firstSeen[emoji] < bestSeen) {
			best = models.EmojiStats{Emoji: emoji, Count: count}
			bestSeen = firstSeen[emoji]
		}
	}

	return best
}
