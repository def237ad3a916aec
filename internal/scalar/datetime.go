// Package scalar implements the DateTime GraphQL scalar.
package scalar

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// SerializeLayout is the canonical external form: UTC with millisecond precision.
const SerializeLayout = "2006-01-02T15:04:05.000Z"

// maxEpochMillis bounds numeric input to ±100,000,000 days around the epoch.
const maxEpochMillis = 8.64e15

var ErrInvalidDateTime = errors.New("invalid DateTime value")

var parseLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1-2-2006",
	"1/2/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	time.RFC1123,
	time.RFC1123Z,
}

// DateTime is a point in time that may be invalid. An invalid DateTime is what
// Parse returns for input it cannot interpret.
type DateTime struct {
	t     time.Time
	valid bool
}

// New wraps t as a valid DateTime.
func New(t time.Time) DateTime {
	return DateTime{t: t.UTC(), valid: true}
}

func (d DateTime) Valid() bool { return d.valid }

// Time returns the wrapped time; the zero time if d is invalid.
func (d DateTime) Time() time.Time { return d.t }

// After reports whether d is strictly later than u. Any comparison involving an
// invalid value is false.
func (d DateTime) After(u DateTime) bool {
	if !d.valid || !u.valid {
		return false
	}
	return d.t.After(u.t)
}

func (d DateTime) String() string {
	if !d.valid {
		return "Invalid Date"
	}
	return d.t.Format(SerializeLayout)
}

// Parse converts an externally supplied value into a DateTime. It never fails:
// anything it cannot read yields an invalid DateTime.
func Parse(value interface{}) DateTime {
	switch v := value.(type) {
	case DateTime:
		return v
	case *DateTime:
		if v == nil {
			return DateTime{}
		}
		return *v
	case time.Time:
		return New(v)
	case string:
		return parseString(v)
	case int:
		return fromMillis(float64(v))
	case int32:
		return fromMillis(float64(v))
	case int64:
		return fromMillis(float64(v))
	case float64:
		return fromMillis(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return DateTime{}
		}
		return fromMillis(f)
	}
	return DateTime{}
}

// ParseLiteral converts an inline query literal. Literals are coerced exactly
// like variables.
func ParseLiteral(value interface{}) DateTime {
	return Parse(value)
}

// Serialize renders d in the canonical external form.
func Serialize(d DateTime) (string, error) {
	if !d.valid {
		return "", ErrInvalidDateTime
	}
	return d.t.UTC().Format(SerializeLayout), nil
}

func parseString(s string) DateTime {
	s = strings.TrimSpace(s)
	if s == "" {
		return DateTime{}
	}
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return New(t)
		}
	}
	return DateTime{}
}

func fromMillis(ms float64) DateTime {
	if math.IsNaN(ms) || math.Abs(ms) > maxEpochMillis {
		return DateTime{}
	}
	return New(time.UnixMilli(int64(ms)))
}

// ImplementsGraphQLType binds DateTime to the schema's DateTime scalar.
func (DateTime) ImplementsGraphQLType(name string) bool {
	return name == "DateTime"
}

// UnmarshalGraphQL receives both variable and literal input values.
func (d *DateTime) UnmarshalGraphQL(input interface{}) error {
	*d = Parse(input)
	return nil
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	s, err := Serialize(d)
	if err != nil {
		return nil, fmt.Errorf("serialize DateTime: %w", err)
	}
	return json.Marshal(s)
}
