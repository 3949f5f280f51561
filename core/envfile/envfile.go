package envfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Record is an immutable set of key/value pairs parsed from a configuration file.
// The zero value is an empty record.
type Record struct {
	values map[string]string
	keys   []string
}

// Path returns the location of the configuration file inside dir.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Exists reports whether a configuration file is present at path.
// Any stat result other than "not exist" counts as present, so a file we
// cannot inspect is never overwritten.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

// Load reads and parses the file at path.
// A missing file is not an error: it yields an empty record and found == false.
func Load(path string) (rec Record, found bool, err error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	rec, err = Parse(f)
	if err != nil {
		return Record{}, true, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return rec, true, nil
}

// Parse reads KEY=VALUE lines from r.
//
// Each line is split on its first '='; key and value are trimmed. Blank lines,
// '#' comments, lines without '=' and lines with an empty key are skipped.
// When a key repeats, the last value wins. Lines may be of any length.
func Parse(r io.Reader) (Record, error) {
	rec := Record{values: make(map[string]string)}

	br := bufio.NewReader(r)
	for {
		raw, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return Record{}, err
		}
		rec.add(raw)
		if err != nil {
			break
		}
	}

	return rec, nil
}

func (r *Record) add(raw string) {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}

	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return
	}

	if _, seen := r.values[key]; !seen {
		r.keys = append(r.keys, key)
	}
	r.values[key] = strings.TrimSpace(value)
}

// ParseString is Parse for in-memory content.
func ParseString(s string) Record {
	// strings.Reader never fails.
	rec, _ := Parse(strings.NewReader(s))
	return rec
}

// Get returns the value stored for key.
func (r Record) Get(key string) (string, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the keys in the order they first appeared.
func (r Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of distinct keys.
func (r Record) Len() int {
	return len(r.keys)
}
