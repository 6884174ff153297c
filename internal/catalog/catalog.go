// Package catalog holds the read-only table of rentable items.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/andy/toolrent/internal/domain"
	"gopkg.in/yaml.v3"
)

var ErrDuplicateCode = errors.New("duplicate item code")

// Catalog maps item codes to items. It is never modified after New returns,
// so it may be shared between goroutines.
type Catalog struct {
	items map[string]domain.Item
}

// New builds a catalog from the given items
func New(items ...domain.Item) (*Catalog, error) {
	c := &Catalog{items: make(map[string]domain.Item, len(items))}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.items[item.Code]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCode, item.Code)
		}
		c.items[item.Code] = item
	}
	return c, nil
}

// ReferenceItems returns the standard tool lineup
func ReferenceItems() []domain.Item {
	return []domain.Item{
		{Code: "LADW", Type: "Ladder", Brand: "Werner", DailyFee: 1.99, WeekdayCharge: true, WeekendCharge: true, HolidayCharge: false},
		{Code: "CHNS", Type: "Chainsaw", Brand: "Stihl", DailyFee: 1.49, WeekdayCharge: true, WeekendCharge: false, HolidayCharge: true},
		{Code: "JAKD", Type: "Jackhammer", Brand: "DeWalt", DailyFee: 2.99, WeekdayCharge: true, WeekendCharge: false, HolidayCharge: false},
		{Code: "JAKR", Type: "Jackhammer", Brand: "Ridgid", DailyFee: 2.99, WeekdayCharge: true, WeekendCharge: false, HolidayCharge: false},
	}
}

// Reference returns a catalog of the standard tool lineup
func Reference() *Catalog {
	c, err := New(ReferenceItems()...)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the item with the given code
func (c *Catalog) Lookup(code string) (domain.Item, bool) {
	item, ok := c.items[code]
	return item, ok
}

// Items returns every item ordered by code
func (c *Catalog) Items() []domain.Item {
	out := make([]domain.Item, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Len returns the number of items
func (c *Catalog) Len() int {
	return len(c.items)
}

type fileItem struct {
	Code          string  `yaml:"code"`
	Type          string  `yaml:"type"`
	Brand         string  `yaml:"brand"`
	DailyFee      float64 `yaml:"daily_fee"`
	WeekdayCharge bool    `yaml:"weekday_charge"`
	WeekendCharge bool    `yaml:"weekend_charge"`
	HolidayCharge bool    `yaml:"holiday_charge"`
}

type fileCatalog struct {
	Items []fileItem `yaml:"items"`
}

// LoadYAML builds a catalog from a YAML document with an "items" list
func LoadYAML(r io.Reader) (*Catalog, error) {
	var doc fileCatalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("catalog file is empty")
		}
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(doc.Items) == 0 {
		return nil, errors.New("catalog has no items")
	}

	items := make([]domain.Item, len(doc.Items))
	for i, fi := range doc.Items {
		items[i] = domain.Item{
			Code:          fi.Code,
			Type:          fi.Type,
			Brand:         fi.Brand,
			DailyFee:      fi.DailyFee,
			WeekdayCharge: fi.WeekdayCharge,
			WeekendCharge: fi.WeekendCharge,
			HolidayCharge: fi.HolidayCharge,
		}
	}
	return New(items...)
}

// Lister lists stored items, e.g. the catalog database
type Lister interface {
	List(ctx context.Context) ([]domain.Item, error)
}

// Load builds a catalog from whatever src lists. An empty listing is an
// error since no rental could succeed against it.
func Load(ctx context.Context, src Lister) (*Catalog, error) {
	items, err := src.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	if len(items) == 0 {
		return nil, errors.New("catalog has no items")
	}
	return New(items...)
}

// LoadFile reads a YAML catalog from disk
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()
	return LoadYAML(f)
}

// WriteYAML writes the catalog in the format LoadYAML reads
func (c *Catalog) WriteYAML(w io.Writer) error {
	var doc fileCatalog
	for _, item := range c.Items() {
		doc.Items = append(doc.Items, fileItem{
			Code:          item.Code,
			Type:          item.Type,
			Brand:         item.Brand,
			DailyFee:      item.DailyFee,
			WeekdayCharge: item.WeekdayCharge,
			WeekendCharge: item.WeekendCharge,
			HolidayCharge: item.HolidayCharge,
		})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
