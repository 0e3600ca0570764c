package services

import (
	"fmt"
	"strings"

	"github.com/migranthealth/careconnect/internal/domain/entities"
	apperrors "github.com/migranthealth/careconnect/pkg/errors"
)

// MedicationForm holds the editable medication rows of one prescription.
// It is owned by a single form and is not safe for concurrent use.
type MedicationForm struct {
	entries []entities.MedicationEntry
}

// NewMedicationForm starts a form with the given rows.
func NewMedicationForm(initial ...entities.MedicationEntry) *MedicationForm {
	return &MedicationForm{entries: append([]entities.MedicationEntry(nil), initial...)}
}

// Add appends an empty row and returns its index.
func (f *MedicationForm) Add() int {
	f.entries = append(f.entries, entities.MedicationEntry{})
	return len(f.entries) - 1
}

// Remove deletes the row at i.
func (f *MedicationForm) Remove(i int) error {
	if err := f.checkIndex(i); err != nil {
		return err
	}
	f.entries = append(f.entries[:i], f.entries[i+1:]...)
	return nil
}

// Update sets one field (name, dosage, frequency or duration) of row i.
func (f *MedicationForm) Update(i int, field, value string) error {
	if err := f.checkIndex(i); err != nil {
		return err
	}
	e := &f.entries[i]
	switch strings.ToLower(field) {
	case "name":
		e.Name = value
	case "dosage":
		e.Dosage = value
	case "frequency":
		e.Frequency = value
	case "duration":
		e.Duration = value
	default:
		return apperrors.NewValidationError(fmt.Sprintf("unknown medication field %q", field))
	}
	return nil
}

// Entries returns a copy of the rows.
func (f *MedicationForm) Entries() []entities.MedicationEntry {
	return append([]entities.MedicationEntry(nil), f.entries...)
}

// Interactions runs the checker once at least two rows carry a name, and
// returns an empty slice otherwise.
func (f *MedicationForm) Interactions(checker *InteractionChecker) []entities.DrugInteraction {
	named := make([]entities.MedicationEntry, 0, len(f.entries))
	for _, e := range f.entries {
		if strings.TrimSpace(e.Name) != "" {
			named = append(named, e)
		}
	}
	if len(named) < 2 {
		return []entities.DrugInteraction{}
	}
	return checker.FindInteractions(named)
}

func (f *MedicationForm) checkIndex(i int) error {
	if i < 0 || i >= len(f.entries) {
		return apperrors.NewNotFoundError(fmt.Sprintf("medication row %d", i))
	}
	return nil
}
