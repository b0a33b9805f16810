// Package output renders traversal events in the supported output formats.
package output

import (
	"fmt"
	"io"

	"github.com/temirov/dirtree/internal/types"
)

const invalidFormatMessage = "Invalid format value '%s'"

// NewStreamRenderer returns the renderer for format writing to stdout.
func NewStreamRenderer(format string, stdout io.Writer) (StreamRenderer, error) {
	switch format {
	case types.FormatRaw:
		return NewRawStreamRenderer(stdout), nil
	case types.FormatJSON:
		return NewJSONStreamRenderer(stdout), nil
	default:
		return nil, fmt.Errorf(invalidFormatMessage, format)
	}
}
