// Package filesystem discovers source directories and files for regeneration.
//
// Walk visits a directory tree with optional ignore rules, Dirs collects the
// root and every directory below it, and Files lists the entries of a single
// directory that carry a given extension:
//
//	dirs, err := filesystem.Dirs("gns3", filesystem.WalkOptions{})
//	for _, dir := range dirs {
//	    files, err := filesystem.Files(dir, ".ui")
//	    ...
//	}
package filesystem
