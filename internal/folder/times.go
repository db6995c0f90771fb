package folder

import (
	"io/fs"
	"time"

	"github.com/djherbis/times"
)

// createdTime returns the creation time carried by info.
func createdTime(info fs.FileInfo) time.Time {
	return created(times.Get(info))
}

// createdAt prefers a fresh stat of path, which can expose the birth time on
// platforms where FileInfo does not carry it.
func createdAt(path string, info fs.FileInfo) time.Time {
	if ts, err := times.Stat(path); err == nil {
		return created(ts)
	}

	return createdTime(info)
}

// created picks the birth time, then the status change time, then the modification time.
func created(ts times.Timespec) time.Time {
	switch {
	case ts.HasBirthTime():
		return ts.BirthTime()
	case ts.HasChangeTime():
		return ts.ChangeTime()
	default:
		return ts.ModTime()
	}
}
