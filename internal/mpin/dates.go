package mpin

import (
	"fmt"
	"time"

	dErrors "mpinguard/pkg/domain-errors"
)

// Date is a calendar date supplied as demographic input.
type Date struct {
	Year  int
	Month int
	Day   int
}

// dateLayout is the wire and CLI format for demographic dates.
const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a validated Date.
//
// Usage: call from handlers and the interactive shell when parsing input.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, dErrors.Wrap(ErrInvalidDate, dErrors.CodeValidation,
			fmt.Sprintf("date %q is not in YYYY-MM-DD format", s))
	}
	d := Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	return d, nil
}

// Validate checks that the components form a real calendar date, including
// February 29 on leap years only, with a plausible 4-digit year.
func (d Date) Validate() error {
	if d.Year < 1000 || d.Year > 9999 {
		return dErrors.Wrap(ErrInvalidDate, dErrors.CodeValidation,
			fmt.Sprintf("year %d is not a plausible 4-digit year", d.Year))
	}
	if d.Month < 1 || d.Month > 12 {
		return dErrors.Wrap(ErrInvalidDate, dErrors.CodeValidation,
			fmt.Sprintf("month %d is out of range", d.Month))
	}
	// time.Date normalizes overflow (Feb 30 becomes Mar 2), so a round-trip
	// comparison detects non-existent days.
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	if d.Day < 1 || t.Day() != d.Day || int(t.Month()) != d.Month || t.Year() != d.Year {
		return dErrors.Wrap(ErrInvalidDate, dErrors.CodeValidation,
			fmt.Sprintf("day %d does not exist in %04d-%02d", d.Day, d.Year, d.Month))
	}
	return nil
}

// String renders the date in its wire format.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// ExtractDateFragments decomposes a date into the named numeric fragments
// used for candidate generation and special-pattern detection, restricted to
// the given target PIN length. Pure and deterministic: identical inputs
// always produce an identical mapping.
func ExtractDateFragments(d Date, targetLength int) (Fragments, error) {
	if err := d.Validate(); err != nil {
		return Fragments{}, err
	}
	if targetLength != PINLength4 && targetLength != PINLength6 {
		return Fragments{}, dErrors.Wrap(ErrInvalidPINFormat, dErrors.CodeValidation,
			fmt.Sprintf("target length must be 4 or 6, got %d", targetLength))
	}

	day := fmt.Sprintf("%02d", d.Day)
	month := fmt.Sprintf("%02d", d.Month)
	year2 := fmt.Sprintf("%02d", d.Year%100)
	year4 := fmt.Sprintf("%04d", d.Year)

	var base map[string]string
	parts := map[string]string{
		"day":           day,
		"month":         month,
		"year2":         year2,
		"reversedYear2": reverse(year2),
	}

	switch targetLength {
	case PINLength4:
		base = map[string]string{
			"dayMonth":   day + month,
			"monthDay":   month + day,
			"year4":      year4,
			"yearMonth":  year2 + month,
			"monthYear":  month + year2,
			"yearDay":    year2 + day,
			"dayYear":    day + year2,
			"dayDay":     day + day,
			"monthMonth": month + month,
		}
	case PINLength6:
		base = map[string]string{
			"dayMonthYear":  day + month + year2,
			"monthDayYear":  month + day + year2,
			"yearMonthDay":  year2 + month + day,
			"yearDayMonth":  year2 + day + month,
			"dayYearMonth":  day + year2 + month,
			"monthYearDay":  month + year2 + day,
			"year4Day":      year4 + day,
			"year4Month":    year4 + month,
			"dayDayDay":     day + day + day,
			"dayDayYear":    day + day + year2,
			"yearDayDay":    year2 + day + day,
			"dayMonthDay":   day + month + day,
			"monthDayMonth": month + day + month,
		}
		// Width-4 combinations stay visible to the partial-match check.
		parts["dayMonth"] = day + month
		parts["monthDay"] = month + day
		parts["year4"] = year4
		parts["reversedYear4"] = reverse(year4)
	}

	direct := make(map[string]string, 2*len(base))
	for name, value := range base {
		direct[name] = value
		direct[reversedName(name)] = reverse(value)
	}

	return Fragments{Direct: direct, Parts: parts}, nil
}

// reversedName derives the fragment key for a reversal, e.g. "dayMonth"
// becomes "reversedDayMonth".
func reversedName(name string) string {
	return "reversed" + string(name[0]-'a'+'A') + name[1:]
}

// reverse returns the character reversal of an all-digit string.
func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
