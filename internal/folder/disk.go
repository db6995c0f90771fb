package folder

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/disk"
)

// Disk describes the volume holding a path.
type Disk struct {
	Path        string  `json:"path"`
	Filesystem  string  `json:"filesystem"`
	Total       uint64  `json:"total"`
	Free        uint64  `json:"free"`
	Used        uint64  `json:"used"`
	UsedPercent float64 `json:"used_percent"`
}

// DiskUsage reports capacity and free space of the volume holding path.
func DiskUsage(path string) (*Disk, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return nil, fmt.Errorf("reading disk usage for %q: %w", path, err)
	}

	return &Disk{
		Path:        path,
		Filesystem:  usage.Fstype,
		Total:       usage.Total,
		Free:        usage.Free,
		Used:        usage.Used,
		UsedPercent: usage.UsedPercent,
	}, nil
}
