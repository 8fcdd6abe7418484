package types

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
)

// Attribute is a single named selection dimension with its chosen value.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// AttributeSet is an insertion-ordered set of attribute name/value pairs.
// Order matters for display (custom keys render in the order the shopper,
// or the catalog, introduced them), so a plain map cannot back this type.
type AttributeSet []Attribute

// Get returns the value stored under name.
func (s AttributeSet) Get(name string) (string, bool) {
	for _, attr := range s {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Has reports whether name is present with a non-empty value.
func (s AttributeSet) Has(name string) bool {
	value, ok := s.Get(name)
	return ok && value != ""
}

// Names returns the attribute names in insertion order.
func (s AttributeSet) Names() []string {
	names := make([]string, 0, len(s))
	for _, attr := range s {
		names = append(names, attr.Name)
	}
	return names
}

// With returns a copy with name set to value. Updating an existing name
// keeps its position; re-setting the same value returns the receiver
// unchanged so callers can cheaply detect no-op transitions.
func (s AttributeSet) With(name, value string) AttributeSet {
	for i, attr := range s {
		if attr.Name != name {
			continue
		}
		if attr.Value == value {
			return s
		}
		next := make(AttributeSet, len(s))
		copy(next, s)
		next[i].Value = value
		return next
	}
	next := make(AttributeSet, len(s), len(s)+1)
	copy(next, s)
	return append(next, Attribute{Name: name, Value: value})
}

// Without returns a copy with name removed.
func (s AttributeSet) Without(name string) AttributeSet {
	next := make(AttributeSet, 0, len(s))
	for _, attr := range s {
		if attr.Name == name {
			continue
		}
		next = append(next, attr)
	}
	return next
}

// Equal reports whether both sets hold the same names with the same values.
// Insertion order is ignored; equality is map equality.
func (s AttributeSet) Equal(other AttributeSet) bool {
	if len(s) != len(other) {
		return false
	}
	for _, attr := range s {
		value, ok := other.Get(attr.Name)
		if !ok || value != attr.Value {
			return false
		}
	}
	return true
}

// MarshalJSON renders the set as a JSON object preserving insertion order.
func (s AttributeSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, attr := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(attr.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(attr.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object preserving key order. Scalar values
// that are not strings (numbers, booleans, null) are coerced to their
// string form rather than rejected; the catalog upstream is not trusted
// to be well formed.
func (s *AttributeSet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*s = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("attribute set: expected JSON object, got %v", tok)
	}

	result := AttributeSet{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("attribute set: non-string key %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		result = append(result, Attribute{Name: key, Value: coerceScalar(raw)})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = result
	return nil
}

func coerceScalar(raw json.RawMessage) string {
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str
	}
	var num json.Number
	if err := json.Unmarshal(raw, &num); err == nil {
		return num.String()
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return strconv.FormatBool(b)
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return ""
	}
	return string(bytes.TrimSpace(raw))
}

// Value implements driver.Valuer so the set persists as a JSON column.
func (s AttributeSet) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner for JSON/JSONB columns.
func (s *AttributeSet) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return s.UnmarshalJSON(v)
	case string:
		return s.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("attribute set: unsupported scan type %T", value)
	}
}
