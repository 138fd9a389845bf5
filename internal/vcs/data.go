// Package vcs introspects a live Git repository and turns it into a
// VcsData record (§3, §4.1). Only Git is implemented, but the probe's
// contract — produce a VcsData, classify errors into the zerrors
// taxonomy — is deliberately small so another backend could implement
// the same Prober interface later. Git command strings never leak
// past this package.
package vcs

// Data is the raw extraction described in §3.
type Data struct {
	TagName             string
	TagCommitHash       string
	TagTimestamp        *uint64
	TagBranch           string
	HeadCommitHash      string
	HeadCommitHashShort string
	HeadBranch          string // empty means detached HEAD
	HeadTimestamp       uint64
	Distance            uint
	Dirty               bool
	Shallow             bool
}

// HasTag reports whether a reachable tag was found.
func (d *Data) HasTag() bool {
	return d != nil && d.TagName != ""
}

// Prober locates a repository and extracts its Data. Git is the only
// implementation today; future VCS backends plug in here without
// touching any caller.
type Prober interface {
	// FindRoot walks up from dir looking for a repository marker,
	// returning the repository root.
	FindRoot(dir string) (string, error)
	// Extract produces a Data record for the repository rooted at root.
	Extract(root string) (*Data, error)
}
