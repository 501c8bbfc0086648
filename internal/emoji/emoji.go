package emoji

import "sync/atomic"

// emojiMap holds emoji and fallback mappings
var emojiMap = map[string][2]string{
	// [emoji, fallback]
	"heart":     {"❤️", "<3"},
	"brand":     {"🫀", "[+]"},
	"dashboard": {"📊", "[#]"},
	"upload":    {"📤", "[^]"},
	"analysis":  {"🧠", "[AI]"},
	"trends":    {"📈", "[~]"},
	"history":   {"📅", "[H]"},
	"alerts":    {"🔔", "[!]"},
	"reports":   {"📄", "[R]"},
	"settings":  {"⚙️", "[*]"},

	"pressure":    {"🩺", "[BP]"},
	"cholesterol": {"🧪", "[CH]"},
	"pulse":       {"💓", "[HR]"},
	"shield":      {"🛡️", "[RS]"},
	"trend_up":    {"↗", "+"},
	"trend_down":  {"↘", "-"},

	"file":      {"📎", "[F]"},
	"drop":      {"📥", "[v]"},
	"success":   {"✅", "[OK]"},
	"error":     {"❌", "[ERR]"},
	"warning":   {"⚠️", "[WRN]"},
	"info":      {"ℹ️", "[INF]"},
	"calendar":  {"🗓️", "[D]"},
	"insight":   {"💡", "[INS]"},
	"target":    {"🎯", "[>]"},
	"clock":     {"🕘", "[T]"},
	"soon":      {"🚧", "[..]"},
	"help":      {"❓", "[?]"},
	"door":      {"🚪", "[EXIT]"},
	"statistic": {"📊", "[STATS]"},
}

var emojiDisabled atomic.Bool

// SetEmojiDisabled sets the global emoji disabled state
func SetEmojiDisabled(disabled bool) {
	emojiDisabled.Store(disabled)
}

// IsEmojiDisabled returns the current emoji disabled state
func IsEmojiDisabled() bool {
	return emojiDisabled.Load()
}

// GetEmoji returns emoji or fallback based on no-emoji setting
func GetEmoji(key string) string {
	if mapping, exists := emojiMap[key]; exists {
		if emojiDisabled.Load() {
			return mapping[1]
		}
		return mapping[0]
	}
	return "[?]"
}
