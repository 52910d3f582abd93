package domain

import (
	"fmt"
	"strings"
	"time"
)

// Category classifies a shop.
type Category string

const (
	CategoryGrocery     Category = "Grocery"
	CategoryPharmacy    Category = "Pharmacy"
	CategoryBakery      Category = "Bakery"
	CategoryStationery  Category = "Stationery"
	CategoryElectronics Category = "Electronics"
	CategoryClothing    Category = "Clothing"
	CategoryCar         Category = "Car"
	CategoryRO          Category = "RO"
	CategoryAC          Category = "AC"
	CategoryInterior    Category = "Interior"
	CategoryOther       Category = "Other"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryGrocery, CategoryPharmacy, CategoryBakery, CategoryStationery, CategoryElectronics,
	CategoryClothing, CategoryCar, CategoryRO, CategoryAC, CategoryInterior, CategoryOther,
}

// ParseCategory matches s case-insensitively against Categories.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

// Offering is what a shop sells.
type Offering string

const (
	OfferingNone     Offering = ""
	OfferingProducts Offering = "products"
	OfferingServices Offering = "services"
)

// ParseOffering accepts "products" or "services".
func ParseOffering(s string) (Offering, error) {
	switch Offering(strings.ToLower(strings.TrimSpace(s))) {
	case OfferingProducts:
		return OfferingProducts, nil
	case OfferingServices:
		return OfferingServices, nil
	}
	return OfferingNone, fmt.Errorf("%w: %q", ErrInvalidOffering, s)
}

// NormalizeDays maps day names to their canonical English spelling, dropping duplicates.
func NormalizeDays(days []string) ([]string, error) {
	out := make([]string, 0, len(days))
	seen := make(map[time.Weekday]bool)
	for _, d := range days {
		wd, ok := parseWeekday(d)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAvailableDay, d)
		}
		if seen[wd] {
			continue
		}
		seen[wd] = true
		out = append(out, wd.String())
	}
	return out, nil
}

func parseWeekday(s string) (time.Weekday, bool) {
	s = strings.TrimSpace(s)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		name := wd.String()
		if strings.EqualFold(s, name) || strings.EqualFold(s, name[:3]) {
			return wd, true
		}
	}
	return 0, false
}

// ValidateHours checks optional "HH:MM" opening hours.
func ValidateHours(from, to string) error {
	var start, end time.Time
	var err error
	if from != "" {
		if start, err = time.Parse("15:04", from); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidTime, from)
		}
	}
	if to != "" {
		if end, err = time.Parse("15:04", to); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidTime, to)
		}
	}
	if from != "" && to != "" && !end.After(start) {
		return ErrInvalidTimeRange
	}
	return nil
}
