package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/alexanderramin/scotty/internal/domain"
)

// Bounds of the preference sliders.
const (
	minHours  = 1
	maxHours  = 20
	minRating = 1.0
	maxRating = 5.0
)

var (
	_ pflag.Value = (*hoursValue)(nil)
	_ pflag.Value = (*ratingValue)(nil)
)

// hoursValue parses "MIN-MAX" into a domain.HoursRange.
type hoursValue struct {
	r *domain.HoursRange
}

func newHoursValue(r *domain.HoursRange) *hoursValue { return &hoursValue{r: r} }

func (v *hoursValue) String() string {
	if v.r == nil {
		return ""
	}
	return fmt.Sprintf("%d-%d", v.r.Min, v.r.Max)
}

func (v *hoursValue) Set(s string) error {
	lo, hi, err := splitRange(s)
	if err != nil {
		return err
	}
	minV, err := strconv.Atoi(lo)
	if err != nil {
		return fmt.Errorf("invalid hours %q", lo)
	}
	maxV, err := strconv.Atoi(hi)
	if err != nil {
		return fmt.Errorf("invalid hours %q", hi)
	}
	if minV < minHours || maxV > maxHours {
		return fmt.Errorf("hours must be within %d-%d", minHours, maxHours)
	}
	*v.r = domain.HoursRange{Min: minV, Max: maxV}
	return nil
}

func (v *hoursValue) Type() string { return "min-max" }

// ratingValue parses "MIN-MAX" into a domain.RatingRange.
type ratingValue struct {
	r *domain.RatingRange
}

func newRatingValue(r *domain.RatingRange) *ratingValue { return &ratingValue{r: r} }

func (v *ratingValue) String() string {
	if v.r == nil {
		return ""
	}
	return fmt.Sprintf("%.1f-%.1f", v.r.Min, v.r.Max)
}

func (v *ratingValue) Set(s string) error {
	lo, hi, err := splitRange(s)
	if err != nil {
		return err
	}
	minV, err := strconv.ParseFloat(lo, 64)
	if err != nil {
		return fmt.Errorf("invalid rating %q", lo)
	}
	maxV, err := strconv.ParseFloat(hi, 64)
	if err != nil {
		return fmt.Errorf("invalid rating %q", hi)
	}
	if minV < minRating || maxV > maxRating {
		return fmt.Errorf("rating must be within %.1f-%.1f", minRating, maxRating)
	}
	*v.r = domain.RatingRange{Min: minV, Max: maxV}
	return nil
}

func (v *ratingValue) Type() string { return "min-max" }

func splitRange(s string) (string, string, error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(s), "-")
	lo, hi = strings.TrimSpace(lo), strings.TrimSpace(hi)
	if !ok || lo == "" || hi == "" {
		return "", "", fmt.Errorf("expected MIN-MAX, got %q", s)
	}
	return lo, hi, nil
}
