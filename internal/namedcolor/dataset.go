package namedcolor

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

//go:embed colors.json
var embeddedColors []byte

// Record is one reference-color entry supplied to NewDataset. Records are
// positional: the dataset preserves their order, and that order breaks
// distance ties during matching.
type Record struct {
	Name     string `json:"name"`     // Display name, e.g. "Dodger Blue"
	Category string `json:"category"` // Source collection, e.g. "CSS", "Material"
	R        int    `json:"r"`
	G        int    `json:"g"`
	B        int    `json:"b"`
}

// Entry is a validated reference color held by a Dataset.
type Entry struct {
	Name     string         `json:"name"`
	Category string         `json:"category"`
	Color    colorspace.RGB `json:"rgb"`
	Hex      string         `json:"hex"`
}

// Dataset is an ordered, immutable collection of named reference colors.
//
// A Dataset is constructed once and never mutated, so it is safe for
// concurrent reads without locking.
type Dataset struct {
	entries []Entry
}

// NewDataset validates the given records and builds a dataset preserving
// their order.
//
// Returns an error wrapping colorspace.ErrInvalidInput if the record list is
// empty, a name is blank, or any channel value is outside [0,255].
func NewDataset(records []Record) (*Dataset, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: reference dataset is empty", colorspace.ErrInvalidInput)
	}

	entries := make([]Entry, 0, len(records))
	for i, rec := range records {
		if rec.Name == "" {
			return nil, fmt.Errorf("%w: record %d has no name", colorspace.ErrInvalidInput, i)
		}
		c, err := colorspace.New(rec.R, rec.G, rec.B)
		if err != nil {
			return nil, fmt.Errorf("record %d (%s): %w", i, rec.Name, err)
		}
		entries = append(entries, Entry{
			Name:     rec.Name,
			Category: rec.Category,
			Color:    c,
			Hex:      c.Hex(),
		})
	}
	return &Dataset{entries: entries}, nil
}

// Len returns the number of reference colors.
func (d *Dataset) Len() int { return len(d.entries) }

// Entries returns all reference colors in dataset order. The returned slice
// is a copy; mutating it does not affect the dataset.
func (d *Dataset) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// embeddedFile mirrors the layout of colors.json.
type embeddedFile struct {
	Colors []struct {
		Name     string `json:"name"`
		Category string `json:"category"`
		Hex      string `json:"hex"`
		RGB      [3]int `json:"rgb"`
	} `json:"colors"`
}

var (
	defaultOnce sync.Once
	defaultSet  *Dataset
	defaultErr  error
)

// Default returns the embedded reference dataset: the CSS extended color
// keywords plus the 2014 Material Design palette, ~275 entries in total.
//
// The dataset is parsed on first call and shared by all callers thereafter.
func Default() (*Dataset, error) {
	defaultOnce.Do(func() {
		var file embeddedFile
		if err := json.Unmarshal(embeddedColors, &file); err != nil {
			defaultErr = fmt.Errorf("failed to parse embedded color data: %w", err)
			return
		}
		records := make([]Record, 0, len(file.Colors))
		for _, c := range file.Colors {
			records = append(records, Record{
				Name:     c.Name,
				Category: c.Category,
				R:        c.RGB[0],
				G:        c.RGB[1],
				B:        c.RGB[2],
			})
		}
		defaultSet, defaultErr = NewDataset(records)
	})
	return defaultSet, defaultErr
}
