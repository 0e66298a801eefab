package domain

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// spanSeparator joins the begin and end dates of a withdrawal period in list three.
const spanSeparator = " to "

// ApproxDate is a calendar year with an optional month.
// Month is zero when the source only states the year.
type ApproxDate struct {
	Year  int `json:"year"`
	Month int `json:"month,omitempty"`
}

// HasMonth reports whether the month is known.
func (d ApproxDate) HasMonth() bool {
	return d.Month != 0
}

// String renders the date as "YYYY" or "YYYY-MM".
func (d ApproxDate) String() string {
	if d.HasMonth() {
		return fmt.Sprintf("%04d-%02d", d.Year, d.Month)
	}
	return fmt.Sprintf("%04d", d.Year)
}

// Compare orders dates by year, then month. A date without a month is
// treated as the start of its year and sorts before any dated month.
func (d ApproxDate) Compare(other ApproxDate) int {
	if c := cmp.Compare(d.Year, other.Year); c != 0 {
		return c
	}
	return cmp.Compare(d.Month, other.Month)
}

// ParseApproxDate parses "YYYY" or "YYYY-MM".
func ParseApproxDate(text string) (ApproxDate, error) {
	parts := strings.Split(strings.TrimSpace(text), "-")
	if len(parts) > 2 {
		return ApproxDate{}, fmt.Errorf("invalid approximate date %q", text)
	}

	if len(parts[0]) != 4 || !allDigits(parts[0]) {
		return ApproxDate{}, fmt.Errorf("invalid year in approximate date %q", text)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return ApproxDate{}, fmt.Errorf("invalid year in approximate date %q", text)
	}

	date := ApproxDate{Year: year}
	if len(parts) == 2 {
		if !allDigits(parts[1]) {
			return ApproxDate{}, fmt.Errorf("invalid month in approximate date %q", text)
		}
		month, err := strconv.Atoi(parts[1])
		if err != nil || month < 1 || month > 12 {
			return ApproxDate{}, fmt.Errorf("invalid month in approximate date %q", text)
		}
		date.Month = month
	}
	return date, nil
}

// allDigits reports whether s is a non-empty run of ASCII digits. Atoi alone
// would accept a sign.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ApproxTimeSpan is the period in which an entity stopped using a currency.
// End is always known; Begin is only set for ranges such as "1989 to 1990".
type ApproxTimeSpan struct {
	End   ApproxDate  `json:"end"`
	Begin *ApproxDate `json:"begin,omitempty"`
}

// String renders the span the way list three writes it.
func (s ApproxTimeSpan) String() string {
	if s.Begin != nil {
		return s.Begin.String() + spanSeparator + s.End.String()
	}
	return s.End.String()
}

// Compare orders spans by end date, then by begin date with an absent
// begin sorting before a present one.
func (s ApproxTimeSpan) Compare(other ApproxTimeSpan) int {
	if c := s.End.Compare(other.End); c != 0 {
		return c
	}
	switch {
	case s.Begin == nil && other.Begin == nil:
		return 0
	case s.Begin == nil:
		return -1
	case other.Begin == nil:
		return 1
	}
	return s.Begin.Compare(*other.Begin)
}

// ParseApproxTimeSpan parses "END" or "BEGIN to END".
func ParseApproxTimeSpan(text string) (ApproxTimeSpan, error) {
	tokens := strings.Split(text, spanSeparator)
	switch len(tokens) {
	case 1:
		end, err := ParseApproxDate(tokens[0])
		if err != nil {
			return ApproxTimeSpan{}, err
		}
		return ApproxTimeSpan{End: end}, nil
	case 2:
		begin, err := ParseApproxDate(tokens[0])
		if err != nil {
			return ApproxTimeSpan{}, err
		}
		end, err := ParseApproxDate(tokens[1])
		if err != nil {
			return ApproxTimeSpan{}, err
		}
		return ApproxTimeSpan{End: end, Begin: &begin}, nil
	}
	return ApproxTimeSpan{}, fmt.Errorf("invalid time span %q", text)
}

// MarshalText implements encoding.TextMarshaler.
func (s ApproxTimeSpan) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ApproxTimeSpan) UnmarshalText(text []byte) error {
	parsed, err := ParseApproxTimeSpan(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
