package normalize

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"

	"github.com/glamberson/occfix/internal/checksum"
	"github.com/glamberson/occfix/internal/files/filesystem"
	"github.com/glamberson/occfix/pkg/occfix"
)

// Status is the outcome of normalizing one file.
type Status int

const (
	StatusFixed     Status = iota // normalized and written
	StatusNotFound                // path does not exist; skipped
	StatusError                   // read, parse or write failed; skipped
	StatusUnchanged               // check mode: already canonical
	StatusWouldFix                // check mode: normalization would change the file
)

func (s Status) String() string {
	switch s {
	case StatusFixed:
		return "fixed"
	case StatusNotFound:
		return "not found"
	case StatusError:
		return "error"
	case StatusUnchanged:
		return "unchanged"
	case StatusWouldFix:
		return "would fix"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result describes what happened to one path.
type Result struct {
	Path   string
	Status Status
	Err    error
}

// Report collects the per-file results of a batch in input order.
type Report struct {
	Results []Result
}

// Count returns the number of results with the given status.
func (r *Report) Count(status Status) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}
	return n
}

// Err combines the errors of every missing or failed file, or returns nil.
func (r *Report) Err() error {
	var err error
	for _, res := range r.Results {
		if res.Err != nil {
			err = multierr.Append(err, fmt.Errorf("%s: %w", res.Path, res.Err))
		}
	}
	return err
}

// Normalizer rewrites structure definition files in place. Each file is
// handled on its own: a missing or malformed file is recorded and the batch
// moves on.
type Normalizer struct {
	fs        filesystem.WritableFileSystem
	logger    occfix.Logger
	root      string
	checkOnly bool
	calc      checksum.SHA256

	// OnResult, when set, is called after each file with its result.
	OnResult func(Result)
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithRoot resolves relative paths against root.
func WithRoot(root string) Option {
	return func(n *Normalizer) { n.root = root }
}

// WithCheckOnly reports which files would change without writing them.
func WithCheckOnly(checkOnly bool) Option {
	return func(n *Normalizer) { n.checkOnly = checkOnly }
}

// NewNormalizer creates a Normalizer over fsys.
func NewNormalizer(fsys filesystem.WritableFileSystem, logger occfix.Logger, opts ...Option) *Normalizer {
	n := &Normalizer{
		fs:     fsys,
		logger: logger,
		calc:   checksum.New(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Run normalizes every path in order.
func (n *Normalizer) Run(paths []string) *Report {
	report := &Report{Results: make([]Result, 0, len(paths))}
	for _, p := range paths {
		res := n.NormalizeFile(p)
		report.Results = append(report.Results, res)
		if n.OnResult != nil {
			n.OnResult(res)
		}
	}
	return report
}

// NormalizeFile normalizes a single path. It never panics on bad input;
// every failure is returned inside the Result.
func (n *Normalizer) NormalizeFile(p string) Result {
	target := n.resolve(p)

	info, err := n.fs.Stat(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Path: p, Status: StatusNotFound, Err: occfix.ErrNotFound}
		}
		return Result{Path: p, Status: StatusError, Err: err}
	}
	if info.IsDir() {
		return Result{Path: p, Status: StatusError, Err: fmt.Errorf("%s is a directory", p)}
	}

	original, err := n.fs.ReadFile(target)
	if err != nil {
		return Result{Path: p, Status: StatusError, Err: err}
	}
	n.logger.Verbose("Read %s (%d bytes)", target, len(original))

	out, err := Normalize(string(original))
	if err != nil {
		return Result{Path: p, Status: StatusError, Err: err}
	}

	if n.checkOnly {
		if n.calc.Equal(original, out) {
			return Result{Path: p, Status: StatusUnchanged}
		}
		return Result{Path: p, Status: StatusWouldFix}
	}

	if err := n.fs.WriteFile(target, out); err != nil {
		return Result{Path: p, Status: StatusError, Err: err}
	}
	n.logger.Verbose("Wrote %s (%d bytes, sha256 %s)", target, len(out), n.calc.CalculateRaw(out))
	return Result{Path: p, Status: StatusFixed}
}

func (n *Normalizer) resolve(p string) string {
	if n.root == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(n.root, p)
}

// Discover lists the YAML files below dir in lexical order. dir is
// resolved like any other path; returned paths are dir joined with each
// file's relative path, ready to pass to Run.
func (n *Normalizer) Discover(dir string) ([]string, error) {
	d, err := n.fs.Open(n.resolve(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", dir, err)
	}

	var paths []string
	err = d.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return err
		}
		if file.Info().IsDir() {
			return nil
		}
		switch strings.ToLower(path.Ext(file.RelativePath())) {
		case ".yaml", ".yml":
			paths = append(paths, filepath.Join(dir, filepath.FromSlash(file.RelativePath())))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	return paths, nil
}
