package services

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/migranthealth/careconnect/internal/domain/entities"
)

var (
	leadingNumber = regexp.MustCompile(`^\s*[-+]?(\d+(\.\d*)?|\.\d+)`)
	feeAmount     = regexp.MustCompile(`\d[\d,]*(\.\d+)?`)
)

// FilterAndSortDoctors narrows doctors by specialty and free text, then
// orders them by sortKey. Unavailable doctors are kept; sorting by
// availability only moves them to the end. Sorting is stable, so doctors
// with equal keys keep fixture order. The input slice is not modified.
func FilterAndSortDoctors(doctors []entities.Doctor, specialty, query string, sortKey entities.DoctorSortKey) []entities.Doctor {
	q := strings.ToLower(strings.TrimSpace(query))
	specialty = strings.TrimSpace(specialty)

	out := make([]entities.Doctor, 0, len(doctors))
	for _, d := range doctors {
		if specialty != "" && specialty != entities.SpecialtyAll && d.Specialty != specialty {
			continue
		}
		if q != "" && !doctorMatches(d, q) {
			continue
		}
		out = append(out, d)
	}

	switch sortKey {
	case entities.SortByDistance:
		sort.SliceStable(out, func(i, j int) bool {
			return ParseDistance(out[i].Distance) < ParseDistance(out[j].Distance)
		})
	case entities.SortByRating:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	case entities.SortByFees:
		sort.SliceStable(out, func(i, j int) bool {
			return ParseFee(out[i].Fees[entities.FeeConsultation]) < ParseFee(out[j].Fees[entities.FeeConsultation])
		})
	case entities.SortByAvailability:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Available && !out[j].Available
		})
	}
	return out
}

func doctorMatches(d entities.Doctor, q string) bool {
	return strings.Contains(strings.ToLower(d.Name), q) ||
		strings.Contains(strings.ToLower(d.SpecialtyName), q) ||
		strings.Contains(strings.ToLower(d.Hospital), q)
}

// ParseDistance reads the leading number of a distance label such as
// "2.5 km". Labels without one parse as +Inf so they sort last.
func ParseDistance(label string) float64 {
	m := leadingNumber.FindString(label)
	if m == "" {
		return math.Inf(1)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(m), 64)
	if err != nil {
		return math.Inf(1)
	}
	return v
}

// ParseFee reads the first amount in a fee label such as "₹1,000" or
// "Rs. 500", dropping thousands separators. Labels without a number parse
// as +Inf.
func ParseFee(amount string) float64 {
	m := feeAmount.FindString(amount)
	if m == "" {
		return math.Inf(1)
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
	if err != nil {
		return math.Inf(1)
	}
	return v
}
