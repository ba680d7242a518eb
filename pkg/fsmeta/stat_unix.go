//go:build unix

package fsmeta

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

type osFS struct{}

// OS returns the FS backed by the operating system.
func OS() FS { return osFS{} }

func (osFS) Lstat(path string) (Info, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return Info{}, &fs.PathError{Op: "lstat", Path: path, Err: err}
	}
	return fromStat(&st), nil
}

func (osFS) Stat(path string) (Info, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return Info{}, &fs.PathError{Op: "stat", Path: path, Err: err}
	}
	return fromStat(&st), nil
}

func (osFS) OpenDir(path string) (DirIter, error) {
	return openDir(path)
}

func fromStat(st *unix.Stat_t) Info {
	return Info{
		Mode:  modeOf(uint32(st.Mode)),
		Size:  st.Size,
		Nlink: uint64(st.Nlink),
	}
}

// modeOf maps the S_IFMT bits of st_mode onto fs.FileMode type bits.
func modeOf(m uint32) fs.FileMode {
	mode := fs.FileMode(m & 0o777)
	switch m & unix.S_IFMT {
	case unix.S_IFDIR:
		mode |= fs.ModeDir
	case unix.S_IFLNK:
		mode |= fs.ModeSymlink
	case unix.S_IFIFO:
		mode |= fs.ModeNamedPipe
	case unix.S_IFSOCK:
		mode |= fs.ModeSocket
	case unix.S_IFCHR:
		mode |= fs.ModeDevice | fs.ModeCharDevice
	case unix.S_IFBLK:
		mode |= fs.ModeDevice
	}
	return mode
}
