package services

import (
	"strings"
	"time"

	"github.com/migranthealth/careconnect/internal/domain/entities"
)

// lastVisitWindows maps the portal's last-visit choices to look-back windows.
var lastVisitWindows = map[string]time.Duration{
	"week":    7 * 24 * time.Hour,
	"month":   30 * 24 * time.Hour,
	"quarter": 90 * 24 * time.Hour,
	"year":    365 * 24 * time.Hour,
}

// ValidLastVisit reports whether v is a recognised last-visit choice.
func ValidLastVisit(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" || v == "all" {
		return true
	}
	_, ok := lastVisitWindows[v]
	return ok
}

// FilterPatients applies the provider portal's patient filters. All criteria
// must pass. Order is preserved.
func FilterPatients(patients []entities.Patient, filter entities.PatientFilter, now time.Time) []entities.Patient {
	var cutoff time.Time
	if window, ok := lastVisitWindows[strings.ToLower(strings.TrimSpace(filter.LastVisit))]; ok {
		cutoff = now.Add(-window)
	}

	out := make([]entities.Patient, 0, len(patients))
	for _, p := range patients {
		if p.Age < filter.AgeRange.Min {
			continue
		}
		if filter.AgeRange.Max > 0 && p.Age > filter.AgeRange.Max {
			continue
		}
		if !matchesChoice(filter.Condition, p.Condition) ||
			!matchesChoice(filter.RiskLevel, string(p.RiskLevel)) ||
			!matchesChoice(filter.Gender, p.Gender) {
			continue
		}
		if !cutoff.IsZero() && p.LastVisit.Before(cutoff) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesChoice(choice, value string) bool {
	choice = strings.TrimSpace(choice)
	if choice == "" || strings.EqualFold(choice, "all") {
		return true
	}
	return strings.EqualFold(choice, value)
}
