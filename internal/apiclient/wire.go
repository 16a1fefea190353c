package apiclient

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Number decodes JSON numbers and numeric strings. Anything else, including
// null, NaN and infinities, decodes as 0 rather than failing the response.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if strings.HasPrefix(s, `"`) {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			*n = 0
			return nil
		}
		s = strings.TrimSpace(unquoted)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		*n = 0
		return nil
	}
	*n = Number(v)
	return nil
}

func (n Number) Float() float64 {
	return float64(n)
}

func (n Number) Int() int {
	return int(math.Round(float64(n)))
}

// ID accepts both numeric and string identifiers.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	*id = ID(string(b))
	return nil
}

func (id ID) String() string {
	return string(id)
}

// Bool accepts true/false, 0/1 and their string forms.
type Bool bool

func (v *Bool) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	switch strings.ToLower(s) {
	case "true", "1":
		*v = true
	default:
		*v = false
	}
	return nil
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// parseDate reads the API's date strings. Timestamps keep their own offset so
// a "2024-02-29T00:00:00.000Z" log stays on the 29th.
func parseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func optionalFloat(n *Number) *float64 {
	if n == nil {
		return nil
	}
	v := n.Float()
	return &v
}
