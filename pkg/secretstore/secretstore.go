package secretstore

import "strings"

// DefaultField is the field read when a reference does not name one.
const DefaultField = "Password"

// Group is a container node of an opened store.
//
// Implementations expose their direct children only. Order matters: when
// several children share a name, the first one returned wins.
type Group interface {
	// Name returns the group's display name.
	Name() string

	// Groups returns the child groups in stored order.
	Groups() []Group

	// Entries returns the child entries in stored order.
	Entries() []Entry
}

// Entry is a leaf node of an opened store holding named string fields.
type Entry interface {
	// Name returns the entry's display name (the KeePass Title).
	Name() string

	// Field returns the raw value of the named field. Lookup is exact and
	// case-sensitive; standard and custom fields are treated alike.
	Field(name string) (string, bool)
}

// Locate walks root along path and returns the entry it addresses.
//
// All segments except the last are matched against child groups; the last
// is matched against the entries of the group reached so far. An empty path,
// an unmatched segment or a final segment that names only a group yields
// false.
func Locate(root Group, path []string) (Entry, bool) {
	if root == nil || len(path) == 0 {
		return nil, false
	}

	current := root
	for _, segment := range path[:len(path)-1] {
		next, ok := childGroup(current, segment)
		if !ok {
			return nil, false
		}
		current = next
	}

	return childEntry(current, path[len(path)-1])
}

func childGroup(parent Group, name string) (Group, bool) {
	for _, g := range parent.Groups() {
		if g.Name() == name {
			return g, true
		}
	}
	return nil, false
}

func childEntry(parent Group, name string) (Entry, bool) {
	for _, e := range parent.Entries() {
		if e.Name() == name {
			return e, true
		}
	}
	return nil, false
}

// ReadField returns the named field of entry with line endings normalized.
func ReadField(entry Entry, field string) (string, bool) {
	if entry == nil {
		return "", false
	}
	raw, ok := entry.Field(field)
	if !ok {
		return "", false
	}
	return NormalizeLineEndings(raw), true
}

// NormalizeLineEndings converts every CRLF sequence to LF. A carriage return
// that is not followed by a line feed is left in place.
func NormalizeLineEndings(s string) string {
	if !strings.Contains(s, "\r\n") {
		return s
	}
	return strings.ReplaceAll(s, "\r\n", "\n")
}
