// Package fsmeta reads the filesystem metadata needed by compliance checks.
//
// All reads go through the FS interface so the engine can be exercised
// against fakes. OS returns the real implementation.
package fsmeta

import (
	"errors"
	"io"
	"io/fs"
	"os"
)

// Info is the subset of file metadata the checks use.
type Info struct {
	Mode  fs.FileMode
	Size  int64
	Nlink uint64
}

// IsDir reports whether the entry is a directory.
func (i Info) IsDir() bool { return i.Mode.IsDir() }

// IsSymlink reports whether the entry is a symbolic link.
func (i Info) IsSymlink() bool { return i.Mode&fs.ModeSymlink != 0 }

// IsRegular reports whether the entry is a regular file.
func (i Info) IsRegular() bool { return i.Mode.IsRegular() }

// Entry is one immediate child of a directory.
type Entry struct {
	Name string
	Type fs.FileMode // type bits only
}

// IsRegular reports whether the entry is a regular file.
func (e Entry) IsRegular() bool { return e.Type.IsRegular() }

// DirIter yields directory entries. Next returns io.EOF after the last entry.
type DirIter interface {
	Next() (Entry, error)
	Close() error
}

// FS is the metadata source used by the compliance engine.
type FS interface {
	// Lstat describes path without following a trailing symlink.
	Lstat(path string) (Info, error)
	// Stat describes path, following symlinks.
	Stat(path string) (Info, error)
	// OpenDir starts iterating the immediate entries of a directory.
	OpenDir(path string) (DirIter, error)
}

// IsPermission reports whether err is an access failure.
func IsPermission(err error) bool {
	return errors.Is(err, fs.ErrPermission)
}

// IsNotExist reports whether err means the path is missing.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// readBatch is the number of entries fetched per directory read.
const readBatch = 64

// osDir iterates a directory in batches so callers can stop early.
type osDir struct {
	f   *os.File
	buf []os.DirEntry
	eof bool
}

func openDir(path string) (DirIter, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &osDir{f: f}, nil
}

func (d *osDir) Next() (Entry, error) {
	for len(d.buf) == 0 {
		if d.eof {
			return Entry{}, io.EOF
		}
		entries, err := d.f.ReadDir(readBatch)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return Entry{}, err
			}
			d.eof = true
		}
		d.buf = entries
	}
	e := d.buf[0]
	d.buf = d.buf[1:]
	return Entry{Name: e.Name(), Type: e.Type()}, nil
}

func (d *osDir) Close() error {
	return d.f.Close()
}

// ReadNames returns every entry name of a directory.
func ReadNames(fsys FS, path string) ([]string, error) {
	it, err := fsys.OpenDir(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = it.Close() }()

	var names []string
	for {
		e, err := it.Next()
		if errors.Is(err, io.EOF) {
			return names, nil
		}
		if err != nil {
			return nil, err
		}
		names = append(names, e.Name)
	}
}
