package task

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSlug derives a short display identifier from the parent board's
// name: first three characters of the lowercased, hyphen-collapsed name,
// uppercased, plus a random 4-digit suffix. "My Board" -> "MY--4821".
// Slugs are best-effort labels, not keys: no uniqueness, no collision retry.
func GenerateSlug(source string) string {
	prefix := strings.ToLower(source)
	prefix = nonAlphanumeric.ReplaceAllString(prefix, "-")
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	prefix = strings.ToUpper(prefix)

	suffix := 1000 + rand.Intn(9000)

	return fmt.Sprintf("%s-%d", prefix, suffix)
}
