//go:build !unix

package fsmeta

import "os"

type osFS struct{}

// OS returns the FS backed by the operating system. Link counts are not
// available on this platform and are reported as 1.
func OS() FS { return osFS{} }

func (osFS) Lstat(path string) (Info, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		return Info{}, err
	}
	return Info{Mode: fi.Mode(), Size: fi.Size(), Nlink: 1}, nil
}

func (osFS) Stat(path string) (Info, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return Info{}, err
	}
	return Info{Mode: fi.Mode(), Size: fi.Size(), Nlink: 1}, nil
}

func (osFS) OpenDir(path string) (DirIter, error) {
	return openDir(path)
}
