// Package basename formats Base account names and addresses for display.
package basename

import (
	"regexp"
	"strings"
)

const Suffix = ".base.eth"

var pattern = regexp.MustCompile(`^[a-z0-9\-]+\.base\.eth$`)

func IsValid(name string) bool {
	return pattern.MatchString(name)
}

// Format appends the .base.eth suffix when missing.
func Format(name string) string {
	if strings.HasSuffix(name, Suffix) {
		return name
	}
	return name + Suffix
}

// ShortenAddress keeps the 0x prefix plus chars on each side.
func ShortenAddress(address string, chars int) string {
	if address == "" {
		return ""
	}
	if len(address) <= 2*chars+2 {
		return address
	}
	return address[:chars+2] + "..." + address[len(address)-chars:]
}

// DisplayName prefers a valid basename, then a shortened address.
func DisplayName(name, address string) string {
	if name != "" && IsValid(name) {
		return name
	}
	if address != "" {
		return ShortenAddress(address, 4)
	}
	return "Unknown"
}
