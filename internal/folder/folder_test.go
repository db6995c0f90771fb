package folder

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

// writeFile creates a file of the given size below root, creating parents.
func writeFile(t *testing.T, root, rel string, size int) string {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte(strings.Repeat("x", size)), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0.0 "},
		{1, "1.0 "},
		{1023, "1023.0 "},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
		{1073741824, "1.0 GB"},
		{1 << 40, "1.0 TB"},
		{1 << 50, "1.0 PB"},
		{3 << 50, "3.0 PB"},
		{-2048, "-2.0 KB"},
	}

	for _, tt := range tests {
		if got := FormatSize(tt.bytes); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestFormatSizeUnitSuffix(t *testing.T) {
	units := []string{" ", " KB", " MB", " GB", " TB", " PB"}

	for b := int64(1); b > 0 && b < 1<<62; b = b*3 + 7 {
		got := FormatSize(b)

		ok := false

		for _, u := range units {
			if strings.HasSuffix(got, u) {
				ok = true

				break
			}
		}

		if !ok {
			t.Errorf("FormatSize(%d) = %q has no known unit", b, got)
		}
	}
}

func TestSummarizeScenario(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "x.txt", 10)
	writeFile(t, root, "y.txt", 20)
	writeFile(t, root, "sub/z.txt", 5)

	s, err := Summarize(t.Context(), root, Options{})
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if s.TotalSize != 35 {
		t.Errorf("TotalSize = %d, want 35", s.TotalSize)
	}

	// Directories count too: x.txt, y.txt, sub, sub/z.txt.
	if s.FileCount != 4 {
		t.Errorf("FileCount = %d, want 4", s.FileCount)
	}

	if s.Errors != 0 {
		t.Errorf("Errors = %d, want 0", s.Errors)
	}

	if s.Created.IsZero() {
		t.Error("Created is zero")
	}
}

func TestTotalSizeAdditive(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "top.bin", 7)
	writeFile(t, root, "x/a", 100)
	writeFile(t, root, "x/b", 23)
	writeFile(t, root, "y/deep/er/c", 512)

	ctx := t.Context()

	total, err := TotalSize(ctx, root, Options{})
	if err != nil {
		t.Fatal(err)
	}

	x, err := TotalSize(ctx, filepath.Join(root, "x"), Options{})
	if err != nil {
		t.Fatal(err)
	}

	y, err := TotalSize(ctx, filepath.Join(root, "y"), Options{})
	if err != nil {
		t.Fatal(err)
	}

	if total != x+y+7 {
		t.Errorf("TotalSize(root) = %d, want %d + %d + 7", total, x, y)
	}

	count, err := FileCount(ctx, root, Options{})
	if err != nil {
		t.Fatal(err)
	}

	// top.bin, x, x/a, x/b, y, y/deep, y/deep/er, y/deep/er/c
	if count != 8 {
		t.Errorf("FileCount(root) = %d, want 8", count)
	}
}

func TestEmptyDirectory(t *testing.T) {
	s, err := Summarize(t.Context(), t.TempDir(), Options{})
	if err != nil {
		t.Fatal(err)
	}

	if s.TotalSize != 0 || s.FileCount != 0 {
		t.Errorf("got size %d count %d, want 0 and 0", s.TotalSize, s.FileCount)
	}
}

func TestNotFound(t *testing.T) {
	root := t.TempDir()
	file := writeFile(t, root, "plain.txt", 3)

	for _, path := range []string{filepath.Join(root, "missing"), file} {
		if _, err := TotalSize(t.Context(), path, Options{}); !errors.Is(err, ErrNotFound) {
			t.Errorf("TotalSize(%q) error = %v, want ErrNotFound", path, err)
		}

		if _, err := ListImmediateEntries(t.Context(), path, Options{}); !errors.Is(err, ErrNotFound) {
			t.Errorf("ListImmediateEntries(%q) error = %v, want ErrNotFound", path, err)
		}
	}
}

func TestSymlinkNotFollowed(t *testing.T) {
	root := t.TempDir()
	target := writeFile(t, root, "data", 10)

	if err := os.Symlink(target, filepath.Join(root, "link")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	s, err := Summarize(t.Context(), root, Options{})
	if err != nil {
		t.Fatal(err)
	}

	if s.TotalSize != 10 {
		t.Errorf("TotalSize = %d, want 10", s.TotalSize)
	}

	if s.FileCount != 2 {
		t.Errorf("FileCount = %d, want 2", s.FileCount)
	}
}

func TestUnreadableSubdirectorySkipped(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}

	root := t.TempDir()
	writeFile(t, root, "ok.txt", 10)
	writeFile(t, root, "locked/hidden.txt", 99)

	locked := filepath.Join(root, "locked")
	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	s, err := Summarize(t.Context(), root, Options{})
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if s.TotalSize != 10 {
		t.Errorf("TotalSize = %d, want 10", s.TotalSize)
	}

	if s.Errors == 0 {
		t.Error("Errors = 0, want the locked directory to be counted")
	}
}

func TestFollowSkipsRevisitedDirectories(t *testing.T) {
	tests := []struct {
		name       string
		loop       bool
		wantSize   int64
		wantCount  int64
		wantErrors int64
	}{
		{name: "sibling link", wantSize: 5, wantCount: 3, wantErrors: 1},
		{name: "sibling link and loop", loop: true, wantSize: 15, wantCount: 6, wantErrors: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeFile(t, root, "b/g.txt", 5)

			if err := os.Symlink(filepath.Join(root, "b"), filepath.Join(root, "blink")); err != nil {
				t.Skipf("symlinks unsupported: %v", err)
			}

			if tt.loop {
				writeFile(t, root, "a/f.txt", 10)

				if err := os.Symlink(root, filepath.Join(root, "a", "back")); err != nil {
					t.Fatal(err)
				}
			}

			s, err := Summarize(t.Context(), root, Options{Follow: true})
			if err != nil {
				t.Fatalf("Summarize() error = %v", err)
			}

			if s.TotalSize != tt.wantSize {
				t.Errorf("TotalSize = %d, want %d", s.TotalSize, tt.wantSize)
			}

			if s.FileCount != tt.wantCount {
				t.Errorf("FileCount = %d, want %d", s.FileCount, tt.wantCount)
			}

			if s.Errors != tt.wantErrors {
				t.Errorf("Errors = %d, want %d", s.Errors, tt.wantErrors)
			}
		})
	}
}

func TestEntryWithoutMetadataSkipped(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "ok.txt", 10)
	writeFile(t, root, "sub/kept.txt", 3)
	writeFile(t, root, "sub/gone.txt", 99)

	original := dirEntryInfo
	t.Cleanup(func() { dirEntryInfo = original })

	dirEntryInfo = func(d fs.DirEntry) (fs.FileInfo, error) {
		if d.Name() == "gone.txt" {
			return nil, fs.ErrNotExist
		}

		return original(d)
	}

	s, err := Summarize(t.Context(), root, Options{})
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}

	if s.TotalSize != 13 {
		t.Errorf("TotalSize = %d, want 13", s.TotalSize)
	}

	if s.FileCount != 3 {
		t.Errorf("FileCount = %d, want 3", s.FileCount)
	}

	if s.Errors != 1 {
		t.Errorf("Errors = %d, want 1", s.Errors)
	}
}

func TestProgressStopsWithWalk(t *testing.T) {
	root := t.TempDir()
	for i := range 50 {
		writeFile(t, root, filepath.Join("d", strings.Repeat("f", i+1)), 1)
	}

	var calls atomic.Int64

	opts := Options{
		ProgressHook:     func(int64, int64) { calls.Add(1) },
		ProgressInterval: time.Millisecond,
	}

	if _, err := Summarize(t.Context(), root, opts); err != nil {
		t.Fatal(err)
	}

	after := calls.Load()

	time.Sleep(20 * time.Millisecond)

	if got := calls.Load(); got != after {
		t.Errorf("progress hook called %d times after Summarize returned", got-after)
	}
}

func TestCancelledWalk(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a/b/c.txt", 1)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	if _, err := Summarize(ctx, root, Options{}); !errors.Is(err, context.Canceled) {
		t.Errorf("Summarize() error = %v, want context.Canceled", err)
	}
}

func TestListImmediateEntries(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "big.txt", 30)
	writeFile(t, root, "small.txt", 10)
	writeFile(t, root, "d1/one", 5)
	writeFile(t, root, "d2/two", 60)
	writeFile(t, root, "d2/nested/three", 40)

	entries, err := ListImmediateEntries(t.Context(), root, Options{})
	if err != nil {
		t.Fatal(err)
	}

	wantNames := []string{"small.txt", "big.txt", "d1", "d2"}
	if len(entries) != len(wantNames) {
		t.Fatalf("got %d entries, want %d", len(entries), len(wantNames))
	}

	for i, name := range wantNames {
		if entries[i].Name != name {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i].Name, name)
		}
	}

	for _, e := range entries[:2] {
		if e.IsDir || e.FileCount != nil {
			t.Errorf("file %q: IsDir=%v FileCount=%v", e.Name, e.IsDir, e.FileCount)
		}
	}

	d2 := entries[3]
	if !d2.IsDir || d2.Size != 100 {
		t.Errorf("d2: IsDir=%v Size=%d, want dir of 100 bytes", d2.IsDir, d2.Size)
	}

	// two, nested, nested/three
	if d2.FileCount == nil || *d2.FileCount != 3 {
		t.Errorf("d2 FileCount = %v, want 3", d2.FileCount)
	}

	if d2.Modified.IsZero() || d2.Created.IsZero() {
		t.Error("d2 timestamps not set")
	}
}

func TestSortEntriesStable(t *testing.T) {
	entries := []Entry{
		{Name: "dir-b", IsDir: true, Size: 5},
		{Name: "file-a", Size: 5},
		{Name: "dir-a", IsDir: true, Size: 5},
		{Name: "file-b", Size: 5},
		{Name: "file-c", Size: 1},
	}

	SortEntries(entries)

	want := []string{"file-c", "file-a", "file-b", "dir-b", "dir-a"}
	for i, name := range want {
		if entries[i].Name != name {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i].Name, name)
		}
	}
}

func TestFindLargeOld(t *testing.T) {
	root := t.TempDir()
	oldBig := writeFile(t, root, "archive/old-big.bin", 2048)
	oldSmall := writeFile(t, root, "old-small.bin", 16)
	writeFile(t, root, "new-big.bin", 4096)
	oldBigger := writeFile(t, root, "archive/deeper/old-bigger.bin", 8192)

	past := time.Now().AddDate(-3, 0, 0)
	for _, p := range []string{oldBig, oldSmall, oldBigger} {
		if err := os.Chtimes(p, past, past); err != nil {
			t.Fatal(err)
		}
	}

	cutoff := time.Now().AddDate(-1, 0, 0)

	files, err := FindLargeOld(t.Context(), root, cutoff, 1024, Options{})
	if err != nil {
		t.Fatal(err)
	}

	if len(files) != 2 {
		t.Fatalf("got %d files, want 2: %+v", len(files), files)
	}

	if files[0].Path != oldBigger || files[1].Path != oldBig {
		t.Errorf("got %q, %q; want %q, %q", files[0].Path, files[1].Path, oldBigger, oldBig)
	}

	if files[0].Name != "old-bigger.bin" || files[0].Size != 8192 {
		t.Errorf("unexpected first entry %+v", files[0])
	}
}

func TestDiskUsage(t *testing.T) {
	d, err := DiskUsage(t.TempDir())
	if err != nil {
		t.Skipf("disk usage unavailable: %v", err)
	}

	if d.Total == 0 || d.Free > d.Total {
		t.Errorf("implausible usage %+v", d)
	}
}
