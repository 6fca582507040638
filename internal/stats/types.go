// Package stats fetches labeled metrics from a remote source and keeps
// them in a time-bounded in-memory slot with layered fallbacks.
package stats

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Trend is the direction a statistic is moving.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Valid reports whether t is one of the known trends.
func (t Trend) Valid() bool {
	switch t {
	case TrendUp, TrendDown, TrendStable:
		return true
	}
	return false
}

// Statistic is a single normalized metric.
type Statistic struct {
	ID          ID       `json:"id"`
	Title       string   `json:"title"`
	Value       Value    `json:"value"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Date        string   `json:"date,omitempty"`
	Percentage  *float64 `json:"percentage,omitempty"`
	Trend       Trend    `json:"trend,omitempty"`
}

// ID identifies a statistic. Sources send either numbers or strings;
// IDs compare by their string form so 1 and "1" are the same.
type ID struct {
	text    string
	numeric bool
}

// StringID returns an ID carried as a JSON string.
func StringID(s string) ID {
	return ID{text: s}
}

// IntID returns an ID carried as a JSON number.
func IntID(n int64) ID {
	return ID{text: strconv.FormatInt(n, 10), numeric: true}
}

func (id ID) String() string { return id.text }

// Equal compares ids by string form.
func (id ID) Equal(other ID) bool { return id.text == other.text }

// IsZero reports whether the id is absent: empty, or the number 0.
func (id ID) IsZero() bool {
	return id.text == "" || (id.numeric && id.text == "0")
}

func (id ID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(id.text), nil
	}
	return json.Marshal(id.text)
}

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ID{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = StringID(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = ID{text: formatNumber(f), numeric: true}
	return nil
}

// Value is a metric reading, either a number or free text.
type Value struct {
	num    float64
	text   string
	isText bool
}

// Number returns a numeric value.
func Number(f float64) Value { return Value{num: f} }

// Text returns a textual value.
func Text(s string) Value { return Value{text: s, isText: true} }

// Float returns the numeric reading and whether the value is a number.
func (v Value) Float() (float64, bool) {
	if v.isText {
		return 0, false
	}
	return v.num, true
}

// IsText reports whether the value holds text.
func (v Value) IsText() bool { return v.isText }

// IsZero reports whether the value is the number 0 or empty text.
func (v Value) IsZero() bool {
	if v.isText {
		return v.text == ""
	}
	return v.num == 0
}

func (v Value) String() string {
	if v.isText {
		return v.text
	}
	return formatNumber(v.num)
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.isText {
		return json.Marshal(v.text)
	}
	return json.Marshal(v.num)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = Value{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Text(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("value must be a string or number: %w", err)
	}
	*v = Number(f)
	return nil
}

// formatNumber renders f the shortest way that round-trips, so 1.0 becomes "1".
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func cloneStatistics(in []Statistic) []Statistic {
	if in == nil {
		return nil
	}
	out := make([]Statistic, len(in))
	copy(out, in)
	for i := range out {
		if p := out[i].Percentage; p != nil {
			v := *p
			out[i].Percentage = &v
		}
	}
	return out
}
