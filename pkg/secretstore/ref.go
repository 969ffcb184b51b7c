package secretstore

import "strings"

const (
	fieldSeparator = "|"
	pathSeparator  = "/"
)

// SecretRef addresses one field on one entry of a store.
//
// Example:
//
//	SecretRef{
//	    Raw:   "aws/iam/user/robot|access_key_id",
//	    Path:  []string{"aws", "iam", "user", "robot"},
//	    Field: "access_key_id",
//	}
type SecretRef struct {
	// Raw is the reference exactly as the caller supplied it. Error messages
	// quote it so the user sees what they typed.
	Raw string

	// Path holds the group names followed by the entry name. It always has
	// at least one element.
	Path []string

	// Field is the name of the field to read. Defaults to DefaultField.
	Field string
}

// ParseSecretRef parses a group[/subgroup...]/entry[|field] reference.
//
// The raw string is split on "|". One part selects the default field, two
// parts select the named field, and anything else is a ValidationError.
// Path segments are passed through verbatim, empty ones included.
func ParseSecretRef(raw string) (SecretRef, error) {
	parts := strings.Split(raw, fieldSeparator)

	var field string
	switch len(parts) {
	case 1:
		field = DefaultField
	case 2:
		field = parts[1]
	default:
		return SecretRef{}, ValidationError{
			Ref:     raw,
			Message: "is no valid secret path",
		}
	}

	return SecretRef{
		Raw:   raw,
		Path:  strings.Split(parts[0], pathSeparator),
		Field: field,
	}, nil
}

// EntryName returns the last path segment.
func (ref SecretRef) EntryName() string {
	if len(ref.Path) == 0 {
		return ""
	}
	return ref.Path[len(ref.Path)-1]
}

// GroupPath returns the path segments leading to the entry.
func (ref SecretRef) GroupPath() []string {
	if len(ref.Path) == 0 {
		return nil
	}
	return ref.Path[:len(ref.Path)-1]
}

// String renders the reference in its canonical form, always naming the
// field explicitly.
func (ref SecretRef) String() string {
	return strings.Join(ref.Path, pathSeparator) + fieldSeparator + ref.Field
}
