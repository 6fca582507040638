package stats

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// PayloadKind names one of the response shapes the remote source may send.
type PayloadKind string

const (
	KindArray      PayloadKind = "array"      // [ {...}, ... ]
	KindData       PayloadKind = "data"       // { "data": [...] }
	KindStatistics PayloadKind = "statistics" // { "statistics": [...] }
	KindNested     PayloadKind = "nested"     // { "statistics": { "data": [...] } }
	KindFlat       PayloadKind = "flat"       // { "key": {...} | scalar, ... }
	KindEmpty      PayloadKind = "empty"      // null or a bare scalar
)

// Payload is a decoded remote response, tagged by shape.
type Payload struct {
	Kind    PayloadKind
	items   []json.RawMessage
	members []member
}

// member is one key of a JSON object, in document order.
type member struct {
	key   string
	value json.RawMessage
}

// DecodePayload classifies a response body. Only malformed JSON is an error.
func DecodePayload(data []byte) (Payload, error) {
	data = bytes.TrimSpace(data)
	if !json.Valid(data) {
		return Payload{}, errors.New("decode payload: invalid JSON")
	}

	switch data[0] {
	case '[':
		items, err := decodeArray(data)
		if err != nil {
			return Payload{}, fmt.Errorf("decode payload: %w", err)
		}
		return Payload{Kind: KindArray, items: items}, nil
	case '{':
		members, err := decodeObject(data)
		if err != nil {
			return Payload{}, fmt.Errorf("decode payload: %w", err)
		}
		return classifyObject(members), nil
	default:
		return Payload{Kind: KindEmpty}, nil
	}
}

func classifyObject(members []member) Payload {
	if items, ok := arrayField(members, "data"); ok {
		return Payload{Kind: KindData, items: items}
	}
	if items, ok := arrayField(members, "statistics"); ok {
		return Payload{Kind: KindStatistics, items: items}
	}
	if raw, ok := field(members, "statistics"); ok && isObject(raw) {
		if inner, err := decodeObject(raw); err == nil {
			if items, ok := arrayField(inner, "data"); ok {
				return Payload{Kind: KindNested, items: items}
			}
		}
	}
	return Payload{Kind: KindFlat, members: members}
}

// Normalize converts the payload into statistics with defaults filled in.
// The result is never nil.
func (p Payload) Normalize() []Statistic {
	var records []record
	switch p.Kind {
	case KindArray, KindData, KindStatistics, KindNested:
		records = itemRecords(p.items)
	case KindFlat:
		records = flatRecords(p.members)
	}
	return normalize(records)
}

// record is a best-effort reading of one entry before defaults are applied.
type record struct {
	id          ID
	title       string
	value       Value
	hasValue    bool
	description string
	category    string
	date        string
	percentage  *float64
	trend       Trend
}

// rawRecord mirrors an entry object without committing to field types.
type rawRecord struct {
	ID          json.RawMessage `json:"id"`
	Title       json.RawMessage `json:"title"`
	Value       json.RawMessage `json:"value"`
	Description json.RawMessage `json:"description"`
	Category    json.RawMessage `json:"category"`
	Date        json.RawMessage `json:"date"`
	Percentage  json.RawMessage `json:"percentage"`
	Trend       json.RawMessage `json:"trend"`
}

func itemRecords(items []json.RawMessage) []record {
	records := make([]record, len(items))
	for i, item := range items {
		records[i] = decodeRecord(item)
	}
	return records
}

// flatRecords maps each key to a record: the key becomes the id and the
// fallback title; a scalar entry is the value itself.
func flatRecords(members []member) []record {
	records := make([]record, len(members))
	for i, m := range members {
		var rec record
		if isObject(m.value) {
			rec = decodeRecord(m.value)
		} else {
			rec.value, rec.hasValue = coerceValue(m.value)
		}
		rec.id = StringID(m.key)
		if rec.title == "" {
			rec.title = m.key
		}
		records[i] = rec
	}
	return records
}

// decodeRecord reads what it can from an entry; non-objects yield an empty record.
func decodeRecord(raw json.RawMessage) record {
	var rr rawRecord
	if !isObject(raw) || json.Unmarshal(raw, &rr) != nil {
		return record{}
	}

	rec := record{
		title:       coerceString(rr.Title),
		description: coerceString(rr.Description),
		category:    coerceString(rr.Category),
		date:        coerceString(rr.Date),
		percentage:  coercePercentage(rr.Percentage),
		trend:       coerceTrend(rr.Trend),
	}
	rec.id, _ = coerceID(rr.ID)
	rec.value, rec.hasValue = coerceValue(rr.Value)
	return rec
}

// normalize applies defaults: index ids, placeholder titles, zero values.
func normalize(records []record) []Statistic {
	out := make([]Statistic, len(records))
	for i, rec := range records {
		s := Statistic{
			ID:          rec.id,
			Title:       rec.title,
			Value:       rec.value,
			Description: rec.description,
			Category:    rec.category,
			Date:        rec.date,
			Percentage:  rec.percentage,
			Trend:       rec.trend,
		}
		if s.ID.IsZero() {
			s.ID = StringID(strconv.Itoa(i))
		}
		if s.Title == "" {
			s.Title = fmt.Sprintf("Statistic %d", i+1)
		}
		if !rec.hasValue || s.Value.IsZero() {
			s.Value = Number(0)
		}
		out[i] = s
	}
	return out
}

func coerceID(raw json.RawMessage) (ID, bool) {
	if len(raw) == 0 {
		return ID{}, false
	}
	var id ID
	if err := json.Unmarshal(raw, &id); err != nil || id.IsZero() {
		return ID{}, false
	}
	return id, true
}

func coerceValue(raw json.RawMessage) (Value, bool) {
	if len(raw) == 0 {
		return Value{}, false
	}
	var v Value
	if err := json.Unmarshal(raw, &v); err != nil || v.IsZero() {
		return Value{}, false
	}
	return v, true
}

// coerceString accepts strings and numbers; anything else is empty.
func coerceString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return formatNumber(f)
	}
	return ""
}

func coercePercentage(raw json.RawMessage) *float64 {
	if len(raw) == 0 || isNull(raw) {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return &f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSuffix(strings.TrimSpace(s), "%")
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return &f
		}
	}
	return nil
}

func coerceTrend(raw json.RawMessage) Trend {
	t := Trend(strings.ToLower(strings.TrimSpace(coerceString(raw))))
	if !t.Valid() {
		return ""
	}
	return t
}

func decodeArray(data []byte) ([]json.RawMessage, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// decodeObject reads the members of a JSON object keeping their order.
// A repeated key keeps its first position and its last value.
func decodeObject(data []byte) ([]member, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("expected object")
	}

	var members []member
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, errors.New("expected object key")
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		if i, seen := index[key]; seen {
			members[i].value = value
			continue
		}
		index[key] = len(members)
		members = append(members, member{key: key, value: value})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return members, nil
}

func field(members []member, key string) (json.RawMessage, bool) {
	for _, m := range members {
		if m.key == key {
			return m.value, true
		}
	}
	return nil, false
}

func arrayField(members []member, key string) ([]json.RawMessage, bool) {
	raw, ok := field(members, key)
	if !ok || !isArray(raw) {
		return nil, false
	}
	items, err := decodeArray(raw)
	if err != nil {
		return nil, false
	}
	return items, true
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func isObject(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '{'
}

func isArray(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '['
}
