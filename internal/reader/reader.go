// Package reader flattens the supported WordPress export formats into a
// uniform sequence of posts.
package reader

import (
	"fmt"
	"io"

	"github.com/hsolberg/wp2md/internal/model"
)

// PostReader extracts posts from one export format.
type PostReader interface {
	Read(r io.Reader) ([]model.Post, error)
}

// ForFormat selects the reader for an input format.
func ForFormat(format model.InputFormat) (PostReader, error) {
	switch format {
	case model.InputWPRSS:
		return WXRReader{}, nil
	case model.InputPMAXML:
		return PMAReader{}, nil
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
}
