package triples

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/numlab/distmatch/internal/model"
)

// maxLineBytes bounds a single dump line. Infobox literals can get long but
// stay far below this; anything larger is treated as malformed.
const maxLineBytes = 1024 * 1024

// Reader streams statements out of a triple-per-line dump file. It never
// buffers the whole file; each call to Each is one full pass over the dump.
type Reader struct {
	path     string
	verbose  bool
	progress rate.Sometimes

	// Per-pass counters, reset at the start of Each.
	Lines   int64 // lines seen, including skipped ones
	Skipped int64 // malformed lines skipped
}

// NewReader creates a reader for the given dump path.
func NewReader(path string, verbose bool) *Reader {
	return &Reader{
		path:     path,
		verbose:  verbose,
		progress: rate.Sometimes{Interval: 2 * time.Second},
	}
}

// Each streams the dump once, invoking fn for every well-formed statement.
// Malformed lines are counted and skipped; only an unreadable file is an error.
func (r *Reader) Each(fn func(model.Statement)) error {
	f, err := os.Open(r.path)
	if err != nil {
		return fmt.Errorf("open dump: %w", err)
	}
	defer func() { _ = f.Close() }()

	r.Lines = 0
	r.Skipped = 0

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	for scanner.Scan() {
		r.Lines++
		if r.verbose {
			r.progress.Do(func() {
				fmt.Fprintf(os.Stderr, "  ... %d lines read (%d skipped)\n", r.Lines, r.Skipped)
			})
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		stmt, ok := ParseLine(line)
		if !ok {
			r.Skipped++
			continue
		}
		fn(stmt)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read dump: %w", err)
	}
	return nil
}

// ParseLine parses one `<subject> <predicate> object .` dump line. The object
// is either a URI or a literal, optionally carrying a `^^<datatype>` suffix or
// a language tag. Returns false for anything that does not fit that shape.
func ParseLine(line string) (model.Statement, bool) {
	rest, ok := strings.CutSuffix(line, ".")
	if !ok {
		return model.Statement{}, false
	}
	rest = strings.TrimSpace(rest)

	subject, rest, ok := cutURI(rest)
	if !ok {
		return model.Statement{}, false
	}
	predicate, rest, ok := cutURI(rest)
	if !ok {
		return model.Statement{}, false
	}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		return model.Statement{}, false
	}

	stmt := model.Statement{Subject: subject, Predicate: predicate}

	if strings.HasPrefix(rest, "<") {
		object, tail, ok := cutURI(rest)
		if !ok || strings.TrimSpace(tail) != "" {
			return model.Statement{}, false
		}
		stmt.Object = object
		return stmt, true
	}

	if strings.HasPrefix(rest, "\"") {
		end := strings.LastIndex(rest[1:], "\"")
		if end < 0 {
			return model.Statement{}, false
		}
		stmt.Object = rest[1 : 1+end]
		stmt.IsLiteral = true

		tail := rest[2+end:]
		if dt, found := strings.CutPrefix(tail, "^^<"); found {
			if i := strings.IndexByte(dt, '>'); i >= 0 {
				stmt.Datatype = dt[:i]
			}
		}
		return stmt, true
	}

	return model.Statement{}, false
}

// cutURI consumes a leading `<...>` group, returning its contents and the
// remainder of the string.
func cutURI(s string) (uri, rest string, ok bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "<") {
		return "", "", false
	}
	end := strings.IndexByte(s, '>')
	if end < 0 {
		return "", "", false
	}
	return s[1:end], s[end+1:], true
}
