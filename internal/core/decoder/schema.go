package decoder

import (
	"fmt"
	"time"

	"github.com/penwyp/go-entparser/internal/core/model"
)

// Field is a fixed-width decimal field at byte offsets [Start, End).
type Field struct {
	Name  string
	Start int
	End   int
	Min   int
	Max   int
}

// Line fields: "HH:MM:SS ..."
var (
	HourField   = Field{Name: "hour", Start: 0, End: 2, Min: 0, Max: 23}
	MinuteField = Field{Name: "minute", Start: 3, End: 5, Min: 0, Max: 59}
	SecondField = Field{Name: "second", Start: 6, End: 8, Min: 0, Max: 59}
)

// File name fields, e.g. "chatlog-2024-01-31.log"
var (
	YearField  = Field{Name: "year", Start: 8, End: 12, Min: 1, Max: 9999}
	MonthField = Field{Name: "month", Start: 13, End: 15, Min: 1, Max: 12}
	DayField   = Field{Name: "day", Start: 16, End: 18, Min: 1, Max: 31}
)

// Parse extracts the field from s.
func (f Field) Parse(s string) (int, error) {
	if len(s) < f.End {
		return 0, fmt.Errorf("%s: input too short (%d bytes, need %d)", f.Name, len(s), f.End)
	}

	n := 0
	for _, c := range []byte(s[f.Start:f.End]) {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%s: non-numeric %q", f.Name, s[f.Start:f.End])
		}
		n = n*10 + int(c-'0')
	}

	if n < f.Min || n > f.Max {
		return 0, fmt.Errorf("%s: %d out of range [%d, %d]", f.Name, n, f.Min, f.Max)
	}
	return n, nil
}

// ParseFileDate reads the date embedded in a log file's base name.
func ParseFileDate(name string) (model.FileDate, error) {
	year, err := YearField.Parse(name)
	if err != nil {
		return model.FileDate{}, fmt.Errorf("%w: %s: %v", model.ErrMalformedFileName, name, err)
	}
	month, err := MonthField.Parse(name)
	if err != nil {
		return model.FileDate{}, fmt.Errorf("%w: %s: %v", model.ErrMalformedFileName, name, err)
	}
	day, err := DayField.Parse(name)
	if err != nil {
		return model.FileDate{}, fmt.Errorf("%w: %s: %v", model.ErrMalformedFileName, name, err)
	}

	d := model.FileDate{Year: year, Month: time.Month(month), Day: day}
	// time.Date normalises Feb 30 into March; reject anything that moved.
	if t := d.At(0, 0, 0, time.UTC); t.Day() != day || t.Month() != d.Month {
		return model.FileDate{}, fmt.Errorf("%w: %s: invalid date %04d-%02d-%02d",
			model.ErrMalformedFileName, name, year, month, day)
	}
	return d, nil
}
