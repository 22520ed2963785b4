package decoder

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/penwyp/go-entparser/internal/core/location"
	"github.com/penwyp/go-entparser/internal/core/model"
)

// Marker is the substring every qualifying line contains.
const Marker = "/5"

var (
	ErrNoMarker   = errors.New("line has no " + Marker + " marker")
	ErrNoLocation = errors.New("line has no tracked location")
)

// Decoder turns qualifying chat lines into events.
type Decoder struct {
	matcher *location.Matcher
}

// New returns a Decoder using m, or the default location table when m is nil.
func New(m *location.Matcher) *Decoder {
	if m == nil {
		m = location.Default()
	}
	return &Decoder{matcher: m}
}

// Qualifies is the cheap pre-filter applied before full decoding.
func Qualifies(line string) bool {
	return strings.Contains(line, Marker)
}

// Decode extracts an event from line. The timestamp carries the wall-clock
// time on date and is expressed in UTC until it is normalised.
func (d *Decoder) Decode(line string, date model.FileDate) (model.Event, error) {
	if !Qualifies(line) {
		return model.Event{}, ErrNoMarker
	}

	match, ok := d.matcher.Match(line)
	if !ok {
		return model.Event{}, ErrNoLocation
	}

	hour, err := HourField.Parse(line)
	if err != nil {
		return model.Event{}, fmt.Errorf("%w: %v", model.ErrMalformedLine, err)
	}
	minute, err := MinuteField.Parse(line)
	if err != nil {
		return model.Event{}, fmt.Errorf("%w: %v", model.ErrMalformedLine, err)
	}
	second, err := SecondField.Parse(line)
	if err != nil {
		return model.Event{}, fmt.Errorf("%w: %v", model.ErrMalformedLine, err)
	}

	count, err := PrunedCount(line)
	if err != nil {
		return model.Event{}, err
	}

	return model.Event{
		Timestamp:   date.At(hour, minute, second, time.UTC),
		Location:    match.Token,
		PrunedCount: count,
	}, nil
}

// PrunedCount returns the digit immediately before the first "/5" in line.
func PrunedCount(line string) (string, error) {
	i := strings.Index(line, Marker)
	if i < 1 {
		return "", fmt.Errorf("%w: no pruned count before %s", model.ErrMalformedLine, Marker)
	}
	c := line[i-1]
	if c < '0' || c > '9' {
		return "", fmt.Errorf("%w: pruned count %q is not a digit", model.ErrMalformedLine, c)
	}
	return string(c), nil
}
