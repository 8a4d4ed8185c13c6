// Package dataset loads, validates, and cleans the species table.
// The scoring engine consumes its output and assumes every row is in range.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/herpmatch/herpmatch/pkg/species"
)

// requiredColumns must all be present in the CSV header.
// photo_page_url is optional.
var requiredColumns = []string{
	"name",
	"category",
	"difficulty",
	"initial_cost",
	"adult_size",
	"temperature_humidity",
	"activity_pattern",
	"diet_type",
	"feeding_frequency",
	"handling",
	"enclosure_size",
	"appearance_tags",
	"purpose",
	"photo_url",
}

// Table is a validated, immutable species dataset.
type Table struct {
	Species  []species.Species
	Version  string
	Warnings []string
}

// Len returns the number of species rows.
func (t *Table) Len() int { return len(t.Species) }

// Lookup finds a species by exact or whitespace-normalized name.
func (t *Table) Lookup(name string) *species.Species {
	normalized := species.NormalizeName(name)
	for i := range t.Species {
		sp := &t.Species[i]
		if sp.Name == name || species.NormalizeName(sp.Name) == normalized {
			return sp
		}
	}
	return nil
}

// CategoryCounts returns the number of species per category.
func (t *Table) CategoryCounts() map[species.Category]int {
	counts := make(map[species.Category]int)
	for i := range t.Species {
		counts[t.Species[i].Category]++
	}
	return counts
}

// Load reads and validates a species CSV file.
// The table version is derived from the file's base name.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	return Parse(f, filepath.Base(path))
}

// Parse reads and validates species CSV data from r.
// Rows that fail validation are dropped and reported as warnings; the
// engine never sees an out-of-range or malformed row.
func Parse(r io.Reader, version string) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading dataset header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("dataset is missing required columns: %s", strings.Join(missing, ", "))
	}

	table := &Table{Version: version}
	seen := make(map[string]bool)
	duplicates := 0
	line := 1

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			table.Warnings = append(table.Warnings, fmt.Sprintf("line %d: unreadable row dropped: %v", line, err))
			continue
		}

		sp, problems := parseRow(record, cols)
		if len(problems) > 0 {
			table.Warnings = append(table.Warnings,
				fmt.Sprintf("line %d (%s): row dropped: %s", line, sp.Name, strings.Join(problems, "; ")))
			continue
		}

		// Duplicate names (whitespace-normalized) keep the first occurrence.
		key := species.NormalizeName(sp.Name)
		if key == "" {
			table.Warnings = append(table.Warnings, fmt.Sprintf("line %d: row dropped: empty name", line))
			continue
		}
		if seen[key] {
			duplicates++
			continue
		}
		seen[key] = true
		table.Species = append(table.Species, sp)
	}

	if duplicates > 0 {
		table.Warnings = append(table.Warnings,
			fmt.Sprintf("removed %d duplicate species after name normalization", duplicates))
	}

	return table, nil
}

func parseRow(record []string, cols map[string]int) (species.Species, []string) {
	var problems []string

	field := func(name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	grade := func(name string, min, max int) int {
		raw := field(name)
		v, err := strconv.Atoi(raw)
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s: not an integer (%q)", name, raw))
			return 0
		}
		if v < min || v > max {
			problems = append(problems, fmt.Sprintf("%s: %d outside range %d-%d", name, v, min, max))
		}
		return v
	}

	sp := species.Species{
		Name:                field("name"),
		Category:            species.Category(field("category")),
		Difficulty:          grade("difficulty", 1, 5),
		InitialCost:         grade("initial_cost", 1, 5),
		AdultSize:           grade("adult_size", 1, 3),
		TemperatureHumidity: grade("temperature_humidity", 1, 5),
		ActivityPattern:     species.ActivityPattern(field("activity_pattern")),
		DietType:            species.DietType(field("diet_type")),
		FeedingFrequency:    grade("feeding_frequency", 1, 5),
		Handling:            grade("handling", 1, 5),
		EnclosureSize:       grade("enclosure_size", 1, 3),
		AppearanceTags:      species.ParseTags(field("appearance_tags")),
		Purpose:             species.Purpose(field("purpose")),
		PhotoURL:            field("photo_url"),
		PhotoPageURL:        field("photo_page_url"),
	}

	if !sp.Category.Valid() {
		problems = append(problems, fmt.Sprintf("category: %q is not allowed", sp.Category))
	}
	if !sp.ActivityPattern.Valid() {
		problems = append(problems, fmt.Sprintf("activity_pattern: %q is not allowed", sp.ActivityPattern))
	}
	if !sp.DietType.Valid() {
		problems = append(problems, fmt.Sprintf("diet_type: %q is not allowed", sp.DietType))
	}
	if !sp.Purpose.Valid() {
		problems = append(problems, fmt.Sprintf("purpose: %q is not allowed", sp.Purpose))
	}

	return sp, problems
}
