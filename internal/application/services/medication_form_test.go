package services

import (
	"testing"

	"github.com/migranthealth/careconnect/internal/domain/entities"
	"github.com/migranthealth/careconnect/internal/fixtures"
	apperrors "github.com/migranthealth/careconnect/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedicationForm_EditRows(t *testing.T) {
	form := NewMedicationForm()

	first := form.Add()
	second := form.Add()
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)

	require.NoError(t, form.Update(first, "name", "Metformin"))
	require.NoError(t, form.Update(first, "Dosage", "500mg"))
	require.NoError(t, form.Update(first, "frequency", "twice daily"))
	require.NoError(t, form.Update(first, "duration", "30 days"))
	require.NoError(t, form.Update(second, "name", "Aspirin"))

	assert.Equal(t, []entities.MedicationEntry{
		{Name: "Metformin", Dosage: "500mg", Frequency: "twice daily", Duration: "30 days"},
		{Name: "Aspirin"},
	}, form.Entries())

	require.NoError(t, form.Remove(first))
	assert.Equal(t, []entities.MedicationEntry{{Name: "Aspirin"}}, form.Entries())
}

func TestMedicationForm_Errors(t *testing.T) {
	form := NewMedicationForm(entities.MedicationEntry{Name: "x"})

	err := form.Update(0, "colour", "red")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))

	assert.True(t, apperrors.IsType(form.Remove(3), apperrors.ErrorTypeNotFound))
	assert.True(t, apperrors.IsType(form.Update(-1, "name", "y"), apperrors.ErrorTypeNotFound))
}

func TestMedicationForm_EntriesIsCopy(t *testing.T) {
	form := NewMedicationForm(entities.MedicationEntry{Name: "x"})
	entries := form.Entries()
	entries[0].Name = "changed"
	assert.Equal(t, "x", form.Entries()[0].Name)
}

func TestMedicationForm_InteractionsNeedTwoNamedRows(t *testing.T) {
	checker := NewInteractionChecker(fixtures.DrugInteractions())
	form := NewMedicationForm(entities.MedicationEntry{Name: "warfarin"})
	form.Add()

	assert.Empty(t, form.Interactions(checker))

	require.NoError(t, form.Update(1, "name", "aspirin"))
	got := form.Interactions(checker)
	require.Len(t, got, 1)
	assert.Equal(t, entities.SeverityMajor, got[0].Severity)
}
