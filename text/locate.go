package text

import (
	"fmt"
	"strings"

	"github.com/flopp/go-findfont"
)

// LocateFont resolves a font reference to a file path.
//
// A reference containing a path separator is returned unchanged. A bare
// file name is looked up in the working directory, then in the user and
// system font directories, falling back to the closest partial match.
func LocateFont(ref string) (string, error) {
	if ref == "" {
		return "", fmt.Errorf("text: locate font: %w", ErrEmptyFontData)
	}
	if strings.ContainsAny(ref, `/\`) {
		return ref, nil
	}
	path, err := findfont.Find(ref)
	if err != nil {
		return "", fmt.Errorf("text: locate font %q: %w", ref, err)
	}
	return path, nil
}
