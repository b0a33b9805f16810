// Package types defines every cross‑package data structure used by the dirtree CLI.
package types

const (
	NodeTypeFile      = "file"
	NodeTypeDirectory = "directory"

	CommandTree = "tree"

	FormatRaw  = "raw"
	FormatJSON = "json"
)

// TreeNode represents one node of a rendered directory tree.
type TreeNode struct {
	Path     string      `json:"path"`
	Name     string      `json:"name"`
	Type     string      `json:"type"`
	Children []*TreeNode `json:"children,omitempty"`
}

// IsSupportedFormat reports whether format names a known output format.
func IsSupportedFormat(format string) bool {
	switch format {
	case FormatRaw, FormatJSON:
		return true
	default:
		return false
	}
}
