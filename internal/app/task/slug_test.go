package task

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var slugPattern = regexp.MustCompile(`^[A-Z0-9-]{1,3}-\d{4}$`)

func TestGenerateSlug_Format(t *testing.T) {
	sources := []string{
		"Sprint 1",
		"My Board",
		"a",
		"12 monkeys",
		"  padded  ",
		"UPPER CASE",
		"sym!bols#here",
		"板板板", // every rune collapses to a single hyphen
	}

	for _, source := range sources {
		t.Run(source, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				slug := GenerateSlug(source)
				assert.Regexp(t, slugPattern, slug)
			}
		})
	}
}

func TestGenerateSlug_Prefix(t *testing.T) {
	tests := []struct {
		name   string
		source string
		prefix string
	}{
		{name: "plain word", source: "Sprint 1", prefix: "SPR"},
		{name: "short source", source: "a", prefix: "A"},
		{name: "separator lands inside the prefix", source: "My Board", prefix: "MY-"},
		{name: "digits are kept", source: "12 monkeys", prefix: "12-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slug := GenerateSlug(tt.source)
			assert.True(t, strings.HasPrefix(slug, tt.prefix+"-"), "slug %q should start with %q", slug, tt.prefix+"-")
		})
	}
}

func TestGenerateSlug_SuffixRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		slug := GenerateSlug("Sprint")
		parts := strings.Split(slug, "-")
		suffix, err := strconv.Atoi(parts[len(parts)-1])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, suffix, 1000)
		assert.LessOrEqual(t, suffix, 9999)
	}
}
