// Package store implements the durable record store: an append-only CSV file
// that is both the system's output and its own recovery log. The link column
// holds canonical identities, so reading the file at startup is enough to
// rebuild the dedup set.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gofrs/flock"

	"github.com/jobsift/jobsift/internal/model"
)

// Header is the fixed on-disk schema. Column order is part of the format
// contract and must not change without a migration.
var Header = []string{
	"Title", "Company", "Date", "Location", "Link",
	"Match", "Keywords", "Years of Experience", "Salary",
}

const linkColumn = 4

// ErrLocked is returned by Open when another process holds the store.
var ErrLocked = errors.New("record store is locked by another process")

// CSV is an open record store. A single CSV owns the file for the lifetime
// of the process; a flock sidecar keeps a second run from interleaving
// appends.
type CSV struct {
	path string
	lock *flock.Flock
}

// Open opens the record store at path, creating it with the header row when
// absent. It returns the store together with every canonical link already
// recorded, in file order, for seeding the dedup set.
func Open(path string) (*CSV, []string, error) {
	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, nil, fmt.Errorf("locking record store: %w", err)
	}
	if !locked {
		return nil, nil, fmt.Errorf("open %s: %w", path, ErrLocked)
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := writeHeader(path); err != nil {
			lock.Unlock()
			return nil, nil, err
		}
		return &CSV{path: path, lock: lock}, nil, nil
	}

	keys, err := readLinks(path)
	if err != nil {
		lock.Unlock()
		return nil, nil, err
	}
	return &CSV{path: path, lock: lock}, keys, nil
}

// Append adds one record row. The file is opened, written, flushed, and
// closed within the call, so a reader opened immediately after Append returns
// sees the new row. Prior rows are never rewritten or reordered.
func (s *CSV) Append(rec model.Record) error {
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening record store for append: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(row(rec)); err != nil {
		f.Close()
		return fmt.Errorf("writing record: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flushing record: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing record store: %w", err)
	}
	return nil
}

// Records reads every persisted record back, in append order.
func (s *CSV) Records() ([]model.Record, error) {
	return ReadRecords(s.path)
}

// Close releases the store lock.
func (s *CSV) Close() error {
	return s.lock.Unlock()
}

// ReadRecords parses all records from the store file at path.
func ReadRecords(path string) ([]model.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening record store: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	if _, err := readHeader(r, path); err != nil {
		return nil, err
	}

	var recs []model.Record
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record row: %w", err)
		}
		recs = append(recs, fromRow(row))
	}
	return recs, nil
}

func writeHeader(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("creating record store: %w", err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		f.Close()
		return fmt.Errorf("writing header: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flushing header: %w", err)
	}
	return f.Close()
}

// readLinks scans the link column of every row. Links are stored already
// canonicalized, so no normalization happens here.
func readLinks(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening record store: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	if _, err := readHeader(r, path); err != nil {
		return nil, err
	}

	var links []string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record row: %w", err)
		}
		if linkColumn < len(row) {
			links = append(links, row[linkColumn])
		}
	}
	return links, nil
}

func readHeader(r *csv.Reader, path string) ([]string, error) {
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header of %s: %w", path, err)
	}
	if len(header) != len(Header) || header[linkColumn] != Header[linkColumn] {
		return nil, fmt.Errorf("%s has unexpected header %v", path, header)
	}
	return header, nil
}

func row(rec model.Record) []string {
	return []string{
		rec.Title,
		rec.Company,
		rec.Date,
		rec.Location,
		rec.Link,
		rec.Match,
		strings.Join(rec.Keywords, ", "),
		rec.YearsExp,
		rec.Salary,
	}
}

func fromRow(row []string) model.Record {
	rec := model.Record{}
	get := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	rec.Title = get(0)
	rec.Company = get(1)
	rec.Date = get(2)
	rec.Location = get(3)
	rec.Link = get(4)
	rec.Match = get(5)
	if kw := get(6); kw != "" {
		rec.Keywords = strings.Split(kw, ", ")
	}
	rec.YearsExp = get(7)
	rec.Salary = get(8)
	return rec
}
