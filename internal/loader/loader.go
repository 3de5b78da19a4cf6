// Package loader turns text files into documents.
//
// An input path is a single file, a directory tree or "-" for stdin. Each
// text is parsed for "@title" and "@tags" directives, the directives are
// stripped from the content, and the result goes through document.Factory.
//
// Design: The factory clock for a file is its modification time, so a
// directory of notes keeps the dates it already has and date filters on
// search mean something. Stdin has no modification time and uses the
// current time.
//
// Directory walks use os.Root so symlinks cannot lead the walk outside the
// directory that was named on the command line.
package loader

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jpl-au/docrec/document"
	"github.com/jpl-au/docrec/internal/logger"
	"github.com/jpl-au/docrec/internal/progress"
	"github.com/jpl-au/docrec/internal/validate"
)

// Extensions lists the file extensions picked up when walking a directory.
// Files named explicitly are read whatever their extension.
var Extensions = []string{".md", ".markdown", ".txt"}

// StdinName is the source name reported for documents read from stdin.
const StdinName = "stdin"

// Options configures a load.
type Options struct {
	Title      string               // Overrides every derived title
	Tags       []string             // Added before any @tags values
	Hidden     bool                 // Include hidden files and directories
	Strict     bool                 // Fail on the first bad file found in a directory
	MaxContent int64                // Max bytes per input; 0 means no limit
	IDs        document.IDGenerator // nil uses document.TimeRandomID
	Now        func() time.Time     // Creation time for stdin; nil uses time.Now
	Stdin      io.Reader            // nil uses os.Stdin
	Logger     *zap.Logger          // nil uses the logger carried by ctx
}

// Source pairs a document with where it came from.
type Source struct {
	Path string
	Doc  document.Document
}

// Skip records a file that was passed over during a directory walk.
type Skip struct {
	Path string
	Err  error
}

// Result contains the outcome of a load.
type Result struct {
	Sources []Source
	Skipped []Skip
}

// Documents returns the loaded documents in load order.
func (r Result) Documents() []document.Document {
	docs := make([]document.Document, len(r.Sources))
	for i, s := range r.Sources {
		docs[i] = s.Doc
	}
	return docs
}

// Load reads every path in order. Errors in files named directly are
// returned; errors in files found by walking a directory are logged and
// skipped unless opts.Strict is set.
func Load(ctx context.Context, paths []string, opts Options) (Result, error) {
	var result Result
	if err := validate.Args(paths); err != nil {
		return result, err
	}

	l := &loader{opts: opts, log: opts.Logger}
	if l.log == nil {
		l.log = logger.FromContext(ctx)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := l.load(ctx, p, &result); err != nil {
			return result, err
		}
	}
	return result, nil
}

// File loads exactly one document from path, or from stdin when path is "-".
func File(ctx context.Context, path string, opts Options) (Source, error) {
	if path != validate.Stdin {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return Source{}, fmt.Errorf("%w: %q is a directory", validate.ErrInvalidPath, path)
		}
	}
	res, err := Load(ctx, []string{path}, opts)
	if err != nil {
		return Source{}, err
	}
	return res.Sources[0], nil
}

type loader struct {
	opts Options
	log  *zap.Logger
}

func (l *loader) load(ctx context.Context, path string, result *Result) error {
	if path == validate.Stdin {
		src, err := l.stdin()
		if err != nil {
			return err
		}
		result.Sources = append(result.Sources, src)
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		src, err := l.file(path, info)
		if err != nil {
			return fmt.Errorf("loading %q: %w", path, err)
		}
		result.Sources = append(result.Sources, src)
		return nil
	}
	return l.dir(ctx, path, result)
}

func (l *loader) stdin() (Source, error) {
	r := l.opts.Stdin
	if r == nil {
		r = os.Stdin
	}
	if l.opts.MaxContent > 0 {
		r = io.LimitReader(r, l.opts.MaxContent+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return Source{}, fmt.Errorf("reading stdin: %w", err)
	}
	if err := validate.Size(int64(len(data)), l.opts.MaxContent); err != nil {
		return Source{}, fmt.Errorf("reading stdin: %w", err)
	}

	now := time.Now
	if l.opts.Now != nil {
		now = l.opts.Now
	}
	doc, err := l.build(StdinName, string(data), now())
	if err != nil {
		return Source{}, fmt.Errorf("loading stdin: %w", err)
	}
	return Source{Path: validate.Stdin, Doc: doc}, nil
}

func (l *loader) file(path string, info os.FileInfo) (Source, error) {
	if err := validate.Size(info.Size(), l.opts.MaxContent); err != nil {
		return Source{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, err
	}
	doc, err := l.build(path, string(data), info.ModTime())
	if err != nil {
		return Source{}, err
	}
	return Source{Path: path, Doc: doc}, nil
}

func (l *loader) dir(ctx context.Context, dir string, result *Result) error {
	root, err := os.OpenRoot(dir)
	if err != nil {
		return fmt.Errorf("opening %q: %w", dir, err)
	}
	defer root.Close()

	spin := progress.NewSpinner("Scanning " + dir)
	spin.Start()
	files, err := scanRoot(root, "", l.opts.Hidden, spin)
	spin.Stop()
	if err != nil {
		return fmt.Errorf("scanning %q: %w", dir, err)
	}
	l.log.Debug("scanned directory", zap.String("dir", dir), zap.Int("files", len(files)))

	prog := progress.New("Loading", len(files))
	defer prog.Done()

	for _, rel := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		full := filepath.Join(dir, rel)
		src, err := l.fileInRoot(root, rel, full)
		prog.Increment()
		if err != nil {
			if l.opts.Strict {
				return fmt.Errorf("loading %q: %w", full, err)
			}
			l.log.Warn("skipping file", zap.String("path", full), zap.Error(err))
			result.Skipped = append(result.Skipped, Skip{Path: full, Err: err})
			continue
		}
		result.Sources = append(result.Sources, src)
	}
	return nil
}

func (l *loader) fileInRoot(root *os.Root, rel, full string) (Source, error) {
	f, err := root.Open(rel)
	if err != nil {
		return Source{}, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Source{}, err
	}
	if err := validate.Size(info.Size(), l.opts.MaxContent); err != nil {
		return Source{}, err
	}

	content := make([]byte, info.Size())
	if _, err := io.ReadFull(f, content); err != nil {
		return Source{}, err
	}

	doc, err := l.build(full, string(content), info.ModTime())
	if err != nil {
		return Source{}, err
	}
	return Source{Path: full, Doc: doc}, nil
}

// build derives title, tags and content from text and creates the document
// with createdAt pinned to created.
func (l *loader) build(name, text string, created time.Time) (document.Document, error) {
	title := l.opts.Title
	if title == "" {
		title = Title(name, text)
	}

	tags := slices.Concat(l.opts.Tags, document.ExtractTags(text))
	factory := document.Factory{
		IDs:   l.opts.IDs,
		Clock: func() time.Time { return created },
	}
	return factory.Create(title, document.StripDirectives(text), tags...)
}

// Title picks a title for text read from name: the "@title" directive if it
// has a value, then the first markdown heading, then the file name without
// its extension.
func Title(name, text string) string {
	if t, _, ok := document.ExtractTitle(text); ok && t != "" {
		return t
	}
	if h := Heading(text); h != "" {
		return h
	}
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Heading returns the text of the first ATX markdown heading ("# Title",
// "## Title", ...), or "" if there is none.
func Heading(text string) string {
	for line := range strings.Lines(text) {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "#") {
			continue
		}
		rest := strings.TrimLeft(line, "#")
		if len(line)-len(rest) > 6 {
			continue
		}
		if rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
			continue
		}
		if h := strings.TrimSpace(strings.TrimRight(rest, "# \t")); h != "" {
			return h
		}
	}
	return ""
}

// scanRoot recursively finds text files within an os.Root.
// Returns relative paths from the root in directory order.
func scanRoot(root *os.Root, dir string, includeHidden bool, spin *progress.Spinner) ([]string, error) {
	var files []string

	path := dir
	if path == "" {
		path = "."
	}

	f, err := root.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(entries, func(a, b os.DirEntry) int { return strings.Compare(a.Name(), b.Name()) })

	for _, entry := range entries {
		name := entry.Name()
		spin.Tick()

		// Skip hidden files/dirs unless requested
		if !includeHidden && strings.HasPrefix(name, ".") {
			continue
		}

		rel := name
		if dir != "" {
			rel = filepath.Join(dir, name)
		}

		if entry.IsDir() {
			sub, err := scanRoot(root, rel, includeHidden, spin)
			if err != nil {
				return nil, err
			}
			files = append(files, sub...)
		} else if isText(name) {
			files = append(files, rel)
		}
	}

	return files, nil
}

func isText(name string) bool {
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(name)))
}
