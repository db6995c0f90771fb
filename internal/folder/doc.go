// Package folder answers "how big is this directory and what does it contain".
//
// It walks directory trees using fastwalk for parallel traversal, sums the
// size of every regular file, counts every entry below a root, and builds
// sorted listings of the immediate children of a directory. Entries that
// cannot be read during a walk are logged, counted and skipped, so a single
// unreadable subtree never invalidates the totals for the rest of the tree.
package folder
