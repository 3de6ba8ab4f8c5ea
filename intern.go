package blt

import "github.com/puzpuzpuz/xsync/v4"

// maxInternedLen bounds the byte length of strings admitted to the intern
// cache, so the cache cannot grow with arbitrary payloads.
const maxInternedLen = 64

// interned deduplicates short decoded strings for the whole process.
// Using a concurrent map makes the cache safe to share between decode loops
// running on different buffers.
var interned = xsync.NewMap[string, string]()

// Intern returns a canonical copy of s. Short strings that recur across
// decodes collapse to a single allocation; strings over the cap are returned
// as-is.
func Intern(s string) string {
	if len(s) > maxInternedLen {
		return s
	}
	canonical, _ := interned.LoadOrStore(s, s)
	return canonical
}

// DeserializeInternedString behaves exactly like DeserializeString but routes
// the result through the intern cache. Intended for decode loops dominated by
// a small set of recurring keys, such as repeated field names.
func DeserializeInternedString(buf *[]byte) (string, error) {
	s, err := DeserializeString(buf)
	if err != nil {
		return "", err
	}
	return Intern(s), nil
}
