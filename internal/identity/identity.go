// Package identity builds the composite keys that combined measurement
// records are stored under. Keys are a pure function of the entity ids in
// canonical dimension order (location, clientIsp, transitIsp); two distinct
// id tuples never produce the same key.
package identity

import (
	"strings"
)

// Separator joins the escaped id components of a composite key.
const Separator = "_"

// escaper makes ids safe to join: the separator and the escape character are
// both escaped, so the joined form stays reversible and collision-free even
// for ids that contain them.
var escaper = strings.NewReplacer(`\`, `\\`, Separator, `\`+Separator)

// CombineKey returns the composite key for 2 or 3 entity ids. Callers must
// pass the ids in canonical dimension order; the key encodes the values, not
// the roles, so a location/clientIsp pair yields the same key no matter which
// of the two is the facet.
func CombineKey(ids ...string) string {
	escaped := make([]string, len(ids))
	for i, id := range ids {
		escaped[i] = escaper.Replace(id)
	}
	return strings.Join(escaped, Separator)
}

// SplitKey reverses CombineKey. The boolean is false for malformed keys
// (trailing escape character).
func SplitKey(key string) ([]string, bool) {
	var ids []string
	var current strings.Builder

	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c == '\\':
			if i+1 >= len(key) {
				return nil, false
			}
			i++
			current.WriteByte(key[i])
		case string(c) == Separator:
			ids = append(ids, current.String())
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}
	ids = append(ids, current.String())
	return ids, true
}
