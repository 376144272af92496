package helpers

import (
	"strings"
	"unicode/utf16"
)

var avatarColors = []string{
	"bg-red-500",
	"bg-orange-500",
	"bg-amber-500",
	"bg-yellow-500",
	"bg-lime-500",
	"bg-green-500",
	"bg-emerald-500",
	"bg-teal-500",
	"bg-cyan-500",
	"bg-sky-500",
	"bg-blue-500",
	"bg-indigo-500",
	"bg-violet-500",
	"bg-purple-500",
	"bg-fuchsia-500",
	"bg-pink-500",
	"bg-rose-500",
}

// GetAvatarColor picks a stable palette class for s. The hash runs over UTF-16
// code units with 32-bit wraparound so web clients compute the same colour.
func GetAvatarColor(s string) string {
	var hash int32
	for _, c := range utf16.Encode([]rune(s)) {
		hash = int32(c) + ((hash << 5) - hash)
	}
	h := int64(hash)
	if h < 0 {
		h = -h
	}
	return avatarColors[h%int64(len(avatarColors))]
}

// GetInitials returns the first letters of the first two words, or the first two
// letters of a single-word name, uppercased.
func GetInitials(name string) string {
	parts := strings.Split(name, " ")
	if len(parts) >= 2 {
		return strings.ToUpper(firstRune(parts[0]) + firstRune(parts[1]))
	}
	r := []rune(name)
	if len(r) > 2 {
		r = r[:2]
	}
	return strings.ToUpper(string(r))
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
