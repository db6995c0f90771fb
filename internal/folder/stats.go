package folder

import (
	"sync"
	"time"
)

// Entry is one filesystem object with display-relevant metadata.
type Entry struct {
	// Name is the base name of the entry.
	Name string `json:"name"`
	// Path is the path of the entry as reached from the listed root.
	Path string `json:"path"`
	// IsDir reports whether the entry is a directory.
	IsDir bool `json:"is_dir"`
	// Size is the byte length of a file, or the recursive total of a directory.
	Size int64 `json:"size"`
	// FileCount is the recursive entry count of a directory; nil for files.
	FileCount *int64 `json:"num_files,omitempty"`
	// Created is the creation time, or the closest timestamp the platform offers.
	Created time.Time `json:"created"`
	// Modified is the last modification time.
	Modified time.Time `json:"modified"`
}

// Summary aggregates a recursive walk below a directory.
type Summary struct {
	// Path is the walked directory.
	Path string `json:"path"`
	// TotalSize is the byte sum of every regular file below Path.
	TotalSize int64 `json:"total_size"`
	// FileCount is the number of files and directories below Path.
	FileCount int64 `json:"file_count"`
	// Errors is the number of entries skipped because they could not be read.
	Errors int64 `json:"errors"`
	// Created is the creation time of Path.
	Created time.Time `json:"created"`
}

// Options configures directory walks.
type Options struct {
	// Follow makes walks follow symbolic links. A directory reached a second
	// time, through a loop or a sibling link, is skipped and counted as an error.
	Follow bool
	// ProgressHook, if set, receives periodic (entries, bytes) updates.
	ProgressHook func(files, bytes int64)
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
}

// collector aggregates results from concurrent fastwalk callbacks using a mutex.
type collector struct {
	mu         sync.Mutex
	fileCount  int64
	totalBytes int64
	errorCount int64
	files      []Entry
	dirs       map[dirID]struct{}
}

// addEntry records one entry encountered below the root, with the bytes it contributes.
func (c *collector) addEntry(size int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.fileCount++
	c.totalBytes += size
}

// addFile keeps a matching file for later reporting.
func (c *collector) addFile(e Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.files = append(c.files, e)
}

// addError increments the skipped-entry counter.
func (c *collector) addError() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.errorCount++
}

// snapshot returns the running totals.
func (c *collector) snapshot() (files, bytes int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.fileCount, c.totalBytes
}

// skipped returns the number of entries skipped so far.
func (c *collector) skipped() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.errorCount
}

// claimDir records a directory identity and reports whether it was seen for the first time.
func (c *collector) claimDir(id dirID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.dirs == nil {
		c.dirs = make(map[dirID]struct{})
	}

	if _, seen := c.dirs[id]; seen {
		return false
	}

	c.dirs[id] = struct{}{}

	return true
}
