package check

import (
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/leapstack-labs/standardcheck/pkg/fsmeta"
	"github.com/leapstack-labs/standardcheck/pkg/standard"
	"golang.org/x/text/cases"
)

// PathLength reports whether the literal path fits within max characters.
func PathLength(path string, max standard.Limit) bool {
	return !max.Exceeded(uint64(utf8.RuneCountInString(path)))
}

// ComponentLength reports whether every slash separated segment of path fits
// within max characters. A path without a separator is a single component.
func ComponentLength(path string, max standard.Limit) bool {
	for _, component := range strings.Split(path, "/") {
		if max.Exceeded(uint64(utf8.RuneCountInString(component))) {
			return false
		}
	}
	return true
}

// Characters reports whether path satisfies the charset. In blacklist mode no
// character may be listed; in whitelist mode every character must be listed.
// A nil charset accepts everything.
func Characters(path string, cs *standard.Charset) bool {
	if cs == nil {
		return true
	}
	for _, r := range path {
		listed := cs.Contains(r)
		switch cs.Mode {
		case standard.Blacklist:
			if listed {
				return false
			}
		case standard.Whitelist:
			if !listed {
				return false
			}
		}
	}
	return true
}

// FileSize reports whether size bytes fits within max.
func FileSize(size int64, max standard.Limit) bool {
	if size < 0 {
		size = 0
	}
	return !max.Exceeded(uint64(size))
}

// EntryCount reports whether the directory behind it holds at most max
// regular files. It stops reading as soon as the count goes over.
func EntryCount(it fsmeta.DirIter, max standard.Limit) (bool, error) {
	var count uint64
	for {
		e, err := it.Next()
		if errors.Is(err, io.EOF) {
			return true, nil
		}
		if err != nil {
			return false, err
		}
		if !e.IsRegular() {
			continue
		}
		count++
		if max.Exceeded(count) {
			return false, nil
		}
	}
}

// Symlink reports whether info passes a symlink rule.
func Symlink(info fsmeta.Info, allowed bool) bool {
	return allowed || !info.IsSymlink()
}

// Hardlink reports whether info passes a hard link rule. Directories always
// pass: their link count counts subdirectories, not extra names.
func Hardlink(info fsmeta.Info, allowed bool) bool {
	return allowed || info.IsDir() || info.Nlink <= 1
}

// DuplicateName reports whether base is free of case-insensitive collisions
// among siblings. The path itself may be listed under a different case on
// case-insensitive volumes, so only a second fold-equal name is a collision.
func DuplicateName(base string, siblings []string) bool {
	folded := cases.Fold().String(base)
	matches := 0
	for _, s := range siblings {
		if cases.Fold().String(s) == folded {
			matches++
		}
	}
	return matches < 2
}
