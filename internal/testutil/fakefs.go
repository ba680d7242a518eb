package testutil

import (
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/leapstack-labs/standardcheck/pkg/fsmeta"
)

// FakeFS is an in-memory fsmeta.FS. Paths are used verbatim as keys; a
// directory's entries are the nodes whose path.Dir equals it.
type FakeFS struct {
	Nodes map[string]fsmeta.Info

	// Errors injected per operation, keyed by path.
	LstatErr   map[string]error
	StatErr    map[string]error
	OpenDirErr map[string]error

	// Targets maps symlink paths to the path Stat should describe.
	Targets map[string]string

	// Reads counts entries handed out by directory iterators.
	Reads int

	// CaseInsensitive makes lookups match node paths under case folding,
	// like APFS or NTFS. Directory listings keep the stored names.
	CaseInsensitive bool
}

// resolve maps p to the stored node path.
func (f *FakeFS) resolve(p string) string {
	if _, ok := f.Nodes[p]; ok || !f.CaseInsensitive {
		return p
	}
	for stored := range f.Nodes {
		if strings.EqualFold(stored, p) {
			return stored
		}
	}
	return p
}

// NewFakeFS returns an empty FakeFS.
func NewFakeFS() *FakeFS {
	return &FakeFS{
		Nodes:      map[string]fsmeta.Info{},
		LstatErr:   map[string]error{},
		StatErr:    map[string]error{},
		OpenDirErr: map[string]error{},
		Targets:    map[string]string{},
	}
}

// File adds a regular file of size bytes.
func (f *FakeFS) File(p string, size int64) *FakeFS {
	f.Nodes[p] = fsmeta.Info{Mode: 0o644, Size: size, Nlink: 1}
	return f
}

// Dir adds a directory.
func (f *FakeFS) Dir(p string) *FakeFS {
	f.Nodes[p] = fsmeta.Info{Mode: fs.ModeDir | 0o755, Size: 4096, Nlink: 2}
	return f
}

// Symlink adds a symbolic link pointing at target.
func (f *FakeFS) Symlink(p, target string) *FakeFS {
	f.Nodes[p] = fsmeta.Info{Mode: fs.ModeSymlink | 0o777, Size: int64(len(target)), Nlink: 1}
	f.Targets[p] = target
	return f
}

// Links sets the link count of an existing node.
func (f *FakeFS) Links(p string, n uint64) *FakeFS {
	info := f.Nodes[p]
	info.Nlink = n
	f.Nodes[p] = info
	return f
}

func (f *FakeFS) Lstat(p string) (fsmeta.Info, error) {
	p = f.resolve(p)
	if err := f.LstatErr[p]; err != nil {
		return fsmeta.Info{}, err
	}
	info, ok := f.Nodes[p]
	if !ok {
		return fsmeta.Info{}, &fs.PathError{Op: "lstat", Path: p, Err: fs.ErrNotExist}
	}
	return info, nil
}

func (f *FakeFS) Stat(p string) (fsmeta.Info, error) {
	p = f.resolve(p)
	if err := f.StatErr[p]; err != nil {
		return fsmeta.Info{}, err
	}
	seen := 0
	for {
		target, ok := f.Targets[p]
		if !ok {
			break
		}
		if seen++; seen > 8 {
			return fsmeta.Info{}, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrInvalid}
		}
		p = f.resolve(target)
	}
	info, ok := f.Nodes[p]
	if !ok {
		return fsmeta.Info{}, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrNotExist}
	}
	return info, nil
}

func (f *FakeFS) OpenDir(p string) (fsmeta.DirIter, error) {
	p = f.resolve(p)
	if err := f.OpenDirErr[p]; err != nil {
		return nil, err
	}
	info, ok := f.Nodes[p]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: p, Err: fs.ErrInvalid}
	}

	var names []string
	for child := range f.Nodes {
		if child != p && path.Dir(child) == p {
			names = append(names, child)
		}
	}
	sort.Strings(names)

	entries := make([]fsmeta.Entry, 0, len(names))
	for _, child := range names {
		entries = append(entries, fsmeta.Entry{Name: path.Base(child), Type: f.Nodes[child].Mode.Type()})
	}
	return &fakeDir{fs: f, entries: entries}, nil
}

type fakeDir struct {
	fs      *FakeFS
	entries []fsmeta.Entry
}

func (d *fakeDir) Next() (fsmeta.Entry, error) {
	if len(d.entries) == 0 {
		return fsmeta.Entry{}, io.EOF
	}
	e := d.entries[0]
	d.entries = d.entries[1:]
	d.fs.Reads++
	return e, nil
}

func (d *fakeDir) Close() error { return nil }
