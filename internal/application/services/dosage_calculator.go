package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/migranthealth/careconnect/internal/domain/entities"
	apperrors "github.com/migranthealth/careconnect/pkg/errors"
)

var (
	// ErrUnknownMedication is returned for a medication key missing from the dosing table.
	ErrUnknownMedication = apperrors.NewUnprocessableError("unknown medication")

	// ErrInvalidWeight is returned for an empty, non-numeric or non-positive weight.
	ErrInvalidWeight = apperrors.NewValidationError("weight must be a positive number of kilograms")
)

// DosageCalculator computes weight-based doses from a fixed table.
type DosageCalculator struct {
	rules map[string]entities.DosageRule
	order []string
}

// NewDosageCalculator indexes rules by lowercase key.
func NewDosageCalculator(rules []entities.DosageRule) *DosageCalculator {
	c := &DosageCalculator{rules: make(map[string]entities.DosageRule, len(rules))}
	for _, r := range rules {
		key := strings.ToLower(strings.TrimSpace(r.Key))
		if _, exists := c.rules[key]; exists {
			continue
		}
		c.rules[key] = r
		c.order = append(c.order, key)
	}
	return c
}

// Rules returns the dosing table in its original order.
func (c *DosageCalculator) Rules() []entities.DosageRule {
	out := make([]entities.DosageRule, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, c.rules[k])
	}
	return out
}

// Calculate multiplies weightKg by the per-kg dose for medicationKey.
// overridePerKg replaces the table dose only when it parses as a positive
// number. CalculatedDose keeps full precision; DisplayDose is rounded to one
// decimal. ExceedsMax is only ever set for rules that define a maximum.
func (c *DosageCalculator) Calculate(medicationKey string, weightKg float64, overridePerKg string) (*entities.DosageResult, error) {
	key := strings.ToLower(strings.TrimSpace(medicationKey))
	rule, ok := c.rules[key]
	if !ok {
		return nil, &apperrors.AppError{
			Type:    apperrors.ErrorTypeUnprocessable,
			Message: fmt.Sprintf("unknown medication %q", medicationKey),
			Err:     ErrUnknownMedication,
		}
	}
	if !validWeight(weightKg) {
		return nil, ErrInvalidWeight
	}

	perKg := rule.DosagePerKg
	if v, ok := parsePositive(overridePerKg); ok {
		perKg = v
	}

	dose := weightKg * perKg
	result := &entities.DosageResult{
		Medication:     rule.Name,
		WeightKg:       weightKg,
		DosagePerKg:    perKg,
		CalculatedDose: dose,
		DisplayDose:    strconv.FormatFloat(math.Round(dose*10)/10, 'f', 1, 64),
		Unit:           rule.Unit,
		Frequency:      rule.Frequency,
		MaxDailyDose:   rule.MaxDailyDose,
	}
	if rule.MaxDailyDose != nil {
		result.ExceedsMax = dose > *rule.MaxDailyDose
	}
	return result, nil
}

// ParseWeight converts raw form input into kilograms.
func ParseWeight(raw string) (float64, error) {
	v, ok := parsePositive(raw)
	if !ok {
		return 0, ErrInvalidWeight
	}
	return v, nil
}

func parsePositive(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || !validWeight(v) {
		return 0, false
	}
	return v, true
}

func validWeight(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
