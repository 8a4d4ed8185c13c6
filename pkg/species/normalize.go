package species

import (
	"strings"
	"unicode"
)

// tagSynonyms folds spelling variants of appearance tags found in the
// source data onto a single canonical form.
var tagSynonyms = map[string]string{
	"멋지다": "멋있다",
	"멋있고": "멋있다",
	"멋지고": "멋있다",
}

// NormalizeName strips all whitespace from a species name.
// Used for duplicate detection and name lookup.
func NormalizeName(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, name)
}

// NormalizeTag trims a single appearance tag and folds known synonyms.
func NormalizeTag(tag string) string {
	tag = strings.TrimSpace(tag)
	if canonical, ok := tagSynonyms[tag]; ok {
		return canonical
	}
	return tag
}

// ParseTags splits a comma-delimited tag string into normalized tags,
// dropping empties.
func ParseTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		if tag := NormalizeTag(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
