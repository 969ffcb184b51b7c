// Package fakes provides test doubles for the store interfaces.
//
// Fakes are manually implemented (not generated) in-memory trees that
// satisfy secretstore.Group and secretstore.Entry, plus an opener that hands
// such a tree to the resolver. They let resolution be tested without
// writing an encrypted database to disk.
//
// Usage:
//
//	root := fakes.NewGroup("Root").
//	    WithEntry(fakes.NewEntry("simple-entry").WithField("Password", "simple-password")).
//	    WithGroup(fakes.NewGroup("aws").
//	        WithEntry(fakes.NewEntry("robot").WithField("access_key_id", "AKIA...")))
//
//	opener := &fakes.FakeOpener{Root: root}
package fakes
