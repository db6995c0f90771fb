// Package compare reports what differs between the shallow contents of two directories.
//
// Matching is by name only: an entry that is a file on one side and a directory
// on the other still counts as common. ModeContent is a separate, opt-in mode
// that additionally flags common names whose contents differ.
package compare
