// Package calendar classifies calendar days into business and non-business
// days under the Brazilian national, mobile and state holiday rules, and counts
// Sundays over date ranges. Every function here is pure; the holiday table is
// immutable once built and safe for concurrent readers.
package calendar

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidRange marks unparsable dates or an end date before a start date.
var ErrInvalidRange = errors.New("invalid date range")

// DateLayout is the wire layout of every date string the engine accepts
const DateLayout = "2006-01-02"

// HolidayKind tells where a holiday comes from
type HolidayKind string

const (
	KindNational HolidayKind = "national"
	KindMobile   HolidayKind = "mobile"
	KindState    HolidayKind = "state"
)

// Holiday is a dated holiday for a specific year
type Holiday struct {
	Date time.Time   `yaml:"date" json:"date"`
	Name string      `yaml:"name" json:"name"`
	Kind HolidayKind `yaml:"kind" json:"kind"`
}

type holidayEntry struct {
	Date string `yaml:"date"`
	Name string `yaml:"name"`
}

type holidayFile struct {
	National []holidayEntry            `yaml:"national"`
	States   map[string][]holidayEntry `yaml:"states"`
}

// HolidayTable holds the fixed national list and the per-state lists keyed by
// two-letter state code. It has no mutating methods.
type HolidayTable struct {
	national []holidayEntry
	states   map[string][]holidayEntry
}

//go:embed holidays.yaml
var defaultHolidaysSource []byte

var (
	defaultTable     *HolidayTable
	defaultTableOnce sync.Once
)

// DefaultTable returns the embedded holiday table
func DefaultTable() *HolidayTable {
	defaultTableOnce.Do(func() {
		t, err := ParseHolidayTable(defaultHolidaysSource)
		if err != nil {
			panic(fmt.Sprintf("embedded holiday table is invalid: %v", err))
		}
		defaultTable = t
	})
	return defaultTable
}

// LoadHolidayTable reads a holiday table from a YAML file
func LoadHolidayTable(filename string) (*HolidayTable, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read holiday table %s: %w", filename, err)
	}
	t, err := ParseHolidayTable(data)
	if err != nil {
		return nil, fmt.Errorf("holiday table %s: %w", filename, err)
	}
	return t, nil
}

// ParseHolidayTable builds a table from YAML source
func ParseHolidayTable(data []byte) (*HolidayTable, error) {
	var f holidayFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for _, h := range f.National {
		if err := validateMonthDay(h.Date); err != nil {
			return nil, fmt.Errorf("national holiday %q: %w", h.Name, err)
		}
	}

	states := make(map[string][]holidayEntry, len(f.States))
	for code, entries := range f.States {
		for _, h := range entries {
			if err := validateMonthDay(h.Date); err != nil {
				return nil, fmt.Errorf("state %s holiday %q: %w", code, h.Name, err)
			}
		}
		states[strings.ToUpper(code)] = append([]holidayEntry(nil), entries...)
	}

	return &HolidayTable{
		national: append([]holidayEntry(nil), f.National...),
		states:   states,
	}, nil
}

func validateMonthDay(md string) error {
	// 2024 is a leap year so 02-29 is accepted
	if _, err := time.Parse(DateLayout, "2024-"+md); err != nil {
		return fmt.Errorf("date %q is not MM-DD", md)
	}
	return nil
}

// States returns the state codes present in the table, sorted
func (t *HolidayTable) States() []string {
	codes := make([]string, 0, len(t.states))
	for code := range t.states {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// HolidaysIn returns every holiday of the year for the state, ordered by date.
// Unknown state codes contribute no state holidays.
func (t *HolidayTable) HolidaysIn(year int, stateCode string) []Holiday {
	var out []Holiday
	add := func(entries []holidayEntry, kind HolidayKind) {
		for _, h := range entries {
			d, err := time.Parse(DateLayout, fmt.Sprintf("%04d-%s", year, h.Date))
			if err != nil {
				// 02-29 in a common year
				continue
			}
			out = append(out, Holiday{Date: d, Name: h.Name, Kind: kind})
		}
	}

	add(t.national, KindNational)
	out = append(out,
		Holiday{Date: CarnivalTuesday(year), Name: "Carnaval", Kind: KindMobile},
		Holiday{Date: GoodFriday(year), Name: "Sexta-feira Santa", Kind: KindMobile},
	)
	add(t.states[strings.ToUpper(stateCode)], KindState)

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// holidaySet is the union of fixed, mobile and state dates as MM-DD keys
func (t *HolidayTable) holidaySet(year int, stateCode string) map[string]struct{} {
	set := make(map[string]struct{}, len(t.national)+4)
	for _, h := range t.national {
		set[h.Date] = struct{}{}
	}
	set[CarnivalTuesday(year).Format("01-02")] = struct{}{}
	set[GoodFriday(year).Format("01-02")] = struct{}{}
	for _, h := range t.states[strings.ToUpper(stateCode)] {
		set[h.Date] = struct{}{}
	}
	return set
}

// IsHoliday reports whether the date is a national, mobile or state holiday
func (t *HolidayTable) IsHoliday(date time.Time, stateCode string) bool {
	_, ok := t.holidaySet(date.Year(), stateCode)[date.Format("01-02")]
	return ok
}

// ParseDate parses a YYYY-MM-DD string
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not %s", ErrInvalidRange, s, DateLayout)
	}
	return d, nil
}
