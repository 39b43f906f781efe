package hanfish

import (
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// CharFilter rewrites text before tokenization. Token offsets refer to the
// filtered text.
type CharFilter interface {
	Filter(string) string
}

type MappingCharFilter struct {
	replacer *strings.Replacer
}

// NewMappingCharFilter replaces every key of mapper with its value. Longer
// keys win over their prefixes.
func NewMappingCharFilter(mapper map[string]string) *MappingCharFilter {
	keys := make([]string, 0, len(mapper))
	for k := range mapper {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, k, mapper[k])
	}
	return &MappingCharFilter{replacer: strings.NewReplacer(pairs...)}
}

func (c *MappingCharFilter) Filter(s string) string {
	return c.replacer.Replace(s)
}

// NormalizeCharFilter composes text to NFC, which also joins conjoining
// Hangul jamo into syllables.
type NormalizeCharFilter struct{}

func NewNormalizeCharFilter() *NormalizeCharFilter {
	return &NormalizeCharFilter{}
}

func (c *NormalizeCharFilter) Filter(s string) string {
	return norm.NFC.String(s)
}

// WidthCharFilter folds fullwidth forms such as "ＬＧ" to their narrow
// counterparts.
type WidthCharFilter struct{}

func NewWidthCharFilter() *WidthCharFilter {
	return &WidthCharFilter{}
}

func (c *WidthCharFilter) Filter(s string) string {
	return width.Fold.String(s)
}
