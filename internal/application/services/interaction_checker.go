package services

import (
	"strings"

	"github.com/migranthealth/careconnect/internal/domain/entities"
)

type drugPair struct {
	a, b string
}

func newDrugPair(x, y string) drugPair {
	x = normalizeDrugName(x)
	y = normalizeDrugName(y)
	if y < x {
		x, y = y, x
	}
	return drugPair{a: x, b: y}
}

func normalizeDrugName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// InteractionChecker looks up known interactions between prescribed drugs.
type InteractionChecker struct {
	known map[drugPair]entities.DrugInteraction
	table []entities.DrugInteraction
}

// NewInteractionChecker indexes table by unordered drug pair. When a pair
// appears twice the first entry wins.
func NewInteractionChecker(table []entities.DrugInteraction) *InteractionChecker {
	c := &InteractionChecker{
		known: make(map[drugPair]entities.DrugInteraction, len(table)),
		table: append([]entities.DrugInteraction(nil), table...),
	}
	for _, in := range table {
		key := newDrugPair(in.Drug1, in.Drug2)
		if _, exists := c.known[key]; !exists {
			c.known[key] = in
		}
	}
	return c
}

// FindInteractions checks every pair of medications once (i < j) and
// returns the matching table entries in visit order. Blank names are
// skipped. Fewer than two medications yield an empty slice.
func (c *InteractionChecker) FindInteractions(meds []entities.MedicationEntry) []entities.DrugInteraction {
	found := []entities.DrugInteraction{}
	if len(meds) < 2 {
		return found
	}
	for i := 0; i < len(meds); i++ {
		if normalizeDrugName(meds[i].Name) == "" {
			continue
		}
		for j := i + 1; j < len(meds); j++ {
			if normalizeDrugName(meds[j].Name) == "" {
				continue
			}
			if in, ok := c.known[newDrugPair(meds[i].Name, meds[j].Name)]; ok {
				found = append(found, in)
			}
		}
	}
	return found
}

// Known returns a copy of the interaction table.
func (c *InteractionChecker) Known() []entities.DrugInteraction {
	return append([]entities.DrugInteraction(nil), c.table...)
}
