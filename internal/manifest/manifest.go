// Package manifest reads the cube list that names which cards the
// collection should contain.
//
// The list is a plain-text export: a single header line followed by a fixed
// number of card lines. Anything past that window (sideboard, maybe-board)
// is ignored. This is tied to one known export layout, not a general parser.
package manifest

import (
	"bufio"
	"os"
	"strings"

	"github.com/agentstation/cubesync/pkg/constants"
	"github.com/agentstation/cubesync/pkg/errors"
)

// Window selects the manifest lines holding card names.
type Window struct {
	Header int // lines skipped at the top
	Body   int // lines taken after the header
}

// DefaultWindow returns the layout of the cube list export.
func DefaultWindow() Window {
	return Window{
		Header: constants.ManifestHeaderLines,
		Body:   constants.ManifestBodyLines,
	}
}

// Load reads path and returns the card names inside w, trimmed, with blank
// lines dropped. A file shorter than the window yields the lines it has.
// Failing to open or read the file is returned as an *errors.IOError.
func Load(path string, w Window) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer func() { _ = f.Close() }()

	if w.Header < 0 {
		w.Header = 0
	}

	var names []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		if line <= w.Header {
			continue
		}
		if line > w.Header+w.Body {
			break
		}
		if name := strings.TrimSpace(scanner.Text()); name != "" {
			names = append(names, name)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	return names, nil
}
