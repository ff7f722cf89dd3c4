package schema

import (
	"errors"
	"fmt"
	"strings"
)

// SchoolCutoff is the minimum composite score historically required by a school.
type SchoolCutoff struct {
	Name   string `json:"name" yaml:"name" mapstructure:"name"`
	Cutoff int    `json:"cutoff" yaml:"cutoff" mapstructure:"cutoff"`
}

// SchoolTable is an immutable, ordered set of school cutoffs keyed by name.
// The zero value is an empty table.
type SchoolTable struct {
	schools []SchoolCutoff
	index   map[string]int
}

// ErrEmptySchoolTable is returned when a table has no schools.
var ErrEmptySchoolTable = errors.New("school table must contain at least one school")

// NewSchoolTable validates the entries and returns a table that keeps their order.
// Names are trimmed and must be unique; cutoffs must be valid composite scores.
func NewSchoolTable(entries []SchoolCutoff) (SchoolTable, error) {
	if len(entries) == 0 {
		return SchoolTable{}, ErrEmptySchoolTable
	}
	schools := make([]SchoolCutoff, 0, len(entries))
	index := make(map[string]int, len(entries))
	for i, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return SchoolTable{}, fmt.Errorf("school #%d has an empty name", i+1)
		}
		if _, dup := index[name]; dup {
			return SchoolTable{}, fmt.Errorf("duplicate school name: %s", name)
		}
		if e.Cutoff < MinCompositeScore || e.Cutoff > MaxCompositeScore {
			return SchoolTable{}, fmt.Errorf("cutoff for %s must be between %d and %d (received %d)",
				name, MinCompositeScore, MaxCompositeScore, e.Cutoff)
		}
		index[name] = len(schools)
		schools = append(schools, SchoolCutoff{Name: name, Cutoff: e.Cutoff})
	}
	return SchoolTable{schools: schools, index: index}, nil
}

// Len returns the number of schools.
func (t SchoolTable) Len() int { return len(t.schools) }

// Schools returns a copy of the entries in table order.
func (t SchoolTable) Schools() []SchoolCutoff {
	out := make([]SchoolCutoff, len(t.schools))
	copy(out, t.schools)
	return out
}

// Lookup returns the cutoff of the named school.
func (t SchoolTable) Lookup(name string) (int, bool) {
	i, ok := t.index[name]
	if !ok {
		return 0, false
	}
	return t.schools[i].Cutoff, true
}

// DefaultSchoolCutoffs returns the built-in cutoff table, in display order.
func DefaultSchoolCutoffs() []SchoolCutoff {
	return []SchoolCutoff{
		{Name: "Stuyvesant", Cutoff: 566},
		{Name: "Bronx Science", Cutoff: 521},
		{Name: "Brooklyn Tech", Cutoff: 503},
		{Name: "Brooklyn Latin", Cutoff: 488},
		{Name: "Queens Science @ York", Cutoff: 535},
		{Name: "Staten Island Tech", Cutoff: 535},
		{Name: "HS Math, Science & Engineering (HSMSE)", Cutoff: 516},
		{Name: "HS American Studies (HSAS)", Cutoff: 515},
		{Name: "Lehman College HS", Cutoff: 489},
	}
}

// DefaultSchoolTable returns the built-in cutoff table.
func DefaultSchoolTable() SchoolTable {
	t, err := NewSchoolTable(DefaultSchoolCutoffs())
	if err != nil {
		panic(err) // built-in table is static
	}
	return t
}
