package apkindex

import (
	"archive/tar"
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"strings"

	"go.trai.ch/apkpin/internal/core/domain"
	"go.trai.ch/zerr"
)

const indexEntryName = "APKINDEX"

// Entry is one package record of an APKINDEX.
type Entry struct {
	Name    string
	Version string
	Arch    string
	Origin  string
}

// Index is a parsed APKINDEX, grouped by package name.
type Index struct {
	packages map[string][]Entry
}

// Lookup returns the entries for name in index order.
func (i *Index) Lookup(name string) []Entry {
	return i.packages[name]
}

// Len returns the number of distinct package names.
func (i *Index) Len() int {
	return len(i.packages)
}

// ParseArchive reads an APKINDEX.tar.gz. Signed indexes are two concatenated
// gzip members; the reader treats them as one tar stream.
func ParseArchive(data []byte) (*Index, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrRegistryParseFailed.Error())
	}
	defer gz.Close() //nolint:errcheck // read-only

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil, zerr.With(domain.ErrRegistryParseFailed, "reason", "archive has no APKINDEX entry")
		}
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrRegistryParseFailed.Error())
		}
		if hdr.Name == indexEntryName {
			return Parse(tr)
		}
	}
}

// Parse reads the plain-text APKINDEX format: blank-line separated records of
// single-letter "K:value" lines. Only P, V, A and o are kept.
func Parse(r io.Reader) (*Index, error) {
	idx := &Index{packages: make(map[string][]Entry)}

	var cur Entry
	flush := func() {
		if cur.Name != "" && cur.Version != "" {
			idx.packages[cur.Name] = append(idx.packages[cur.Name], cur)
		}
		cur = Entry{}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			flush()
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		switch key {
		case "P":
			cur.Name = value
		case "V":
			cur.Version = value
		case "A":
			cur.Arch = value
		case "o":
			cur.Origin = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrRegistryParseFailed.Error())
	}
	flush()

	return idx, nil
}
