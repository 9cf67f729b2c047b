package variant

import (
	"sort"
	"strings"
)

// Descriptor is the resolved presentation of one component configuration:
// class tokens in deterministic order with no duplicates, and the ARIA
// attributes whose triggering condition holds. Identical inputs always
// produce byte-identical descriptors.
type Descriptor struct {
	Classes []string
	ARIA    map[string]string
}

// ClassString joins the class tokens with single spaces, ready for a
// class attribute.
func (d Descriptor) ClassString() string {
	return strings.Join(d.Classes, " ")
}

// HasClass reports whether the token appears in the class list.
func (d Descriptor) HasClass(token string) bool {
	for _, c := range d.Classes {
		if c == token {
			return true
		}
	}
	return false
}

// ARIAKeys returns the emitted ARIA attribute names in sorted order.
func (d Descriptor) ARIAKeys() []string {
	keys := make([]string, 0, len(d.ARIA))
	for k := range d.ARIA {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func appendUnique(tokens []string, token string) []string {
	for _, t := range tokens {
		if t == token {
			return tokens
		}
	}
	return append(tokens, token)
}
