// Package save provides options controlling how the collection is written.
package save

import (
	"os"

	"github.com/agentstation/cubesync/pkg/constants"
)

// Options is the configuration for a collection write.
type Options struct {
	atomic bool
	indent string
	perm   os.FileMode
}

// Atomic reports whether the write goes through a temp file and rename.
func (s *Options) Atomic() bool {
	return s.atomic
}

// Indent returns the JSON indentation string.
func (s *Options) Indent() string {
	return s.indent
}

// Perm returns the file mode used when the file is created.
func (s *Options) Perm() os.FileMode {
	return s.perm
}

// Defaults returns the default save options: in-place overwrite, two-space
// indentation.
func Defaults() *Options {
	return &Options{
		atomic: false,
		indent: "  ",
		perm:   constants.FilePermissions,
	}
}

// Apply applies the given options to the save options.
func (s *Options) Apply(opts ...Option) Options {
	for _, opt := range opts {
		opt(s)
	}
	return *s
}

// Option is a function that configures save options.
type Option func(*Options)

// WithAtomic writes to a temp file in the target directory and renames it
// over the target, so readers never observe a partial file.
func WithAtomic(atomic bool) Option {
	return func(s *Options) {
		s.atomic = atomic
	}
}

// WithIndent sets the JSON indentation. Empty produces compact output.
func WithIndent(indent string) Option {
	return func(s *Options) {
		s.indent = indent
	}
}

// WithPerm sets the file mode for newly created files.
func WithPerm(perm os.FileMode) Option {
	return func(s *Options) {
		s.perm = perm
	}
}
