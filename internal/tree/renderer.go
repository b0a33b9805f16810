// Package tree renders a directory hierarchy as connector-annotated text lines.
package tree

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// Connector glyphs and prefix extensions. Each one is four display columns wide.
const (
	ConnectorBranch  = "├── "
	ConnectorLast    = "└── "
	PrefixContinue   = "│   "
	PrefixClosed     = "    "
	lineTerminator   = "\n"
	prefixColumnSize = 4
)

const (
	// errorReadDirectoryFormat is used when a directory cannot be listed.
	errorReadDirectoryFormat = "reading directory %s: %w"
	// errorAbsolutePathFormat is used when the absolute root path cannot be determined.
	errorAbsolutePathFormat = "getting absolute path for %s: %w"
	// errorWriteLineFormat is used when a rendered line cannot be written.
	errorWriteLineFormat = "writing line for %s: %w"
)

// Entry is a single directory entry discovered during traversal.
type Entry struct {
	Name        string
	Path        string
	IsDirectory bool
	Depth       int
}

// Line is one rendered output line.
type Line struct {
	Prefix    string
	Connector string
	Entry     Entry
	IsLast    bool
}

// String returns the printable form of the line without a terminator.
func (line Line) String() string {
	return line.Prefix + line.Connector + line.Entry.Name
}

// EmitFunc receives lines in traversal order. A non-nil error stops the traversal.
type EmitFunc func(Line) error

// Render lists directory, emits one line per visible entry and recurses into
// every visible subdirectory with an extended prefix. Directories come first,
// then everything else, each group in byte order. Listing failures are
// returned immediately; lines emitted before the failure are not retracted.
func Render(directory string, prefix string, ignoreSet IgnoreSet, emit EmitFunc) error {
	return render(directory, prefix, len([]rune(prefix))/prefixColumnSize, ignoreSet, emit)
}

// RenderTo writes every line produced by Render to writer, one per line.
func RenderTo(writer io.Writer, directory string, prefix string, ignoreSet IgnoreSet) error {
	return Render(directory, prefix, ignoreSet, func(line Line) error {
		if _, writeError := io.WriteString(writer, line.String()+lineTerminator); writeError != nil {
			return fmt.Errorf(errorWriteLineFormat, line.Entry.Path, writeError)
		}
		return nil
	})
}

// RootName returns the base name of the absolute form of path. Relative
// paths and trailing separators resolve to the same name as their absolute
// counterparts.
func RootName(path string) (string, error) {
	absolutePath, absolutePathError := filepath.Abs(path)
	if absolutePathError != nil {
		return "", fmt.Errorf(errorAbsolutePathFormat, path, absolutePathError)
	}
	return filepath.Base(absolutePath), nil
}

func render(directory string, prefix string, depth int, ignoreSet IgnoreSet, emit EmitFunc) error {
	entries, listError := listEntries(directory, depth, ignoreSet)
	if listError != nil {
		return listError
	}

	for index, entry := range entries {
		isLast := index == len(entries)-1
		connector := ConnectorBranch
		childPrefix := prefix + PrefixContinue
		if isLast {
			connector = ConnectorLast
			childPrefix = prefix + PrefixClosed
		}

		if emitError := emit(Line{Prefix: prefix, Connector: connector, Entry: entry, IsLast: isLast}); emitError != nil {
			return emitError
		}

		// Ignored directories are never descended into.
		if entry.IsDirectory && !ignoreSet.Contains(entry.Name) {
			if renderError := render(entry.Path, childPrefix, depth+1, ignoreSet, emit); renderError != nil {
				return renderError
			}
		}
	}
	return nil
}

// listEntries returns the visible entries of directory ordered directories first.
func listEntries(directory string, depth int, ignoreSet IgnoreSet) ([]Entry, error) {
	directoryEntries, readDirectoryError := os.ReadDir(directory)
	if readDirectoryError != nil {
		return nil, fmt.Errorf(errorReadDirectoryFormat, directory, readDirectoryError)
	}

	var directories []Entry
	var files []Entry
	for _, directoryEntry := range directoryEntries {
		entry := Entry{
			Name:  directoryEntry.Name(),
			Path:  filepath.Join(directory, directoryEntry.Name()),
			Depth: depth,
		}
		entry.IsDirectory = isDirectory(entry.Path)
		if !entry.IsDirectory {
			files = append(files, entry)
			continue
		}
		if ignoreSet.Contains(entry.Name) {
			continue
		}
		directories = append(directories, entry)
	}

	sortByName(directories)
	sortByName(files)
	return append(directories, files...), nil
}

// isDirectory follows symbolic links. Entries that cannot be stated count as files.
func isDirectory(path string) bool {
	fileInformation, statError := os.Stat(path)
	if statError != nil {
		return false
	}
	return fileInformation.IsDir()
}

func sortByName(entries []Entry) {
	sort.Slice(entries, func(left, right int) bool {
		return entries[left].Name < entries[right].Name
	})
}
