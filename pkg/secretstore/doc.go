// Package secretstore defines how secrets are addressed and looked up inside
// a hierarchical credential store.
//
// A credential store is a tree: groups contain further groups and entries,
// and entries carry named string fields (Password, UserName, URL, or any
// custom field). This package knows nothing about how a store is decrypted
// or parsed. It only depends on the narrow capability surface described by
// the Group and Entry interfaces, so any opened store can be traversed by
// adapting its nodes to them.
//
// # Secret References
//
// A secret is addressed by a compact reference string:
//
//	group[/subgroup...]/entry[|field]
//
// The part before the pipe is split on "/" into a group path whose last
// element is the entry name. The optional part after the pipe names the
// field to read; it defaults to "Password". Examples:
//
//	ref, err := ParseSecretRef("simple-entry")
//	// ref.Path == []string{"simple-entry"}, ref.Field == "Password"
//
//	ref, err := ParseSecretRef("aws/iam/user/robot|access_key_id")
//	// ref.Path == []string{"aws", "iam", "user", "robot"}
//	// ref.Field == "access_key_id"
//
// A reference with more than one pipe is rejected with a ValidationError.
// Empty path segments (from leading, trailing or doubled slashes) are kept
// as they are; they simply never match a node during lookup.
//
// # Lookup
//
// Locate walks the tree one segment at a time. Every segment but the last
// must name a child group, and the last must name an entry in the group
// reached so far. Matching is exact and case-sensitive.
//
//	entry, ok := secretstore.Locate(root, ref.Path)
//	if !ok {
//	    return secretstore.NotFoundError{Path: ref.Raw}
//	}
//	value, ok := secretstore.ReadField(entry, ref.Field)
//
// ReadField converts CRLF line endings to LF and returns everything else
// verbatim.
//
// # Ownership
//
// The tree belongs to whatever opened the store. Functions in this package
// only borrow nodes for the duration of a call and never modify them.
package secretstore
