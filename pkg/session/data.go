package session

import (
	"encoding/json"
	"maps"
	"slices"
	"unicode/utf8"
)

// Data is a mutable bag of session values plus a modified flag.
// Values are kept as raw JSON and decoded into the caller's type on read.
// Data is owned by a single caller and is not safe for concurrent mutation.
type Data struct {
	values   map[string]json.RawMessage
	modified bool
}

// wireData is the canonical JSON form shared by every serializing backend.
type wireData struct {
	Data     map[string]json.RawMessage `json:"data"`
	Modified bool                       `json:"modified"`
}

// NewData creates an empty, unmodified container.
func NewData() *Data {
	return &Data{values: make(map[string]json.RawMessage)}
}

// Get decodes the value stored under key as T.
// Returns the zero value and false if the key is absent or the value does not decode as T.
func Get[T any](d *Data, key string) (T, bool) {
	var v T
	if d == nil || d.values == nil {
		return v, false
	}
	raw, ok := d.values[key]
	if !ok {
		return v, false
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		var zero T
		return zero, false
	}
	return v, true
}

// GetString retrieves a string value
func (d *Data) GetString(key string) (string, bool) {
	return Get[string](d, key)
}

// GetInt retrieves an int value
func (d *Data) GetInt(key string) (int, bool) {
	return Get[int](d, key)
}

// GetBool retrieves a bool value
func (d *Data) GetBool(key string) (bool, bool) {
	return Get[bool](d, key)
}

// Has reports whether key is present.
func (d *Data) Has(key string) bool {
	if d == nil {
		return false
	}
	_, ok := d.values[key]
	return ok
}

// Keys returns the stored keys in sorted order.
func (d *Data) Keys() []string {
	if d == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(d.values))
}

// Len returns the number of stored keys.
func (d *Data) Len() int {
	if d == nil {
		return 0
	}
	return len(d.values)
}

// Set stores value under key and marks the container modified.
// If key is not valid UTF-8 or value cannot be JSON-encoded the call is a no-op
// and the modified flag is left alone. JSON would rewrite such a key to U+FFFD.
func (d *Data) Set(key string, value any) {
	if d == nil || !utf8.ValidString(key) {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if d.values == nil {
		d.values = make(map[string]json.RawMessage)
	}
	d.values[key] = raw
	d.modified = true
}

// Remove deletes key. The container is marked modified even if the key was absent.
func (d *Data) Remove(key string) {
	if d == nil {
		return
	}
	delete(d.values, key)
	d.modified = true
}

// Clear removes all values and marks the container modified.
func (d *Data) Clear() {
	if d == nil {
		return
	}
	d.values = make(map[string]json.RawMessage)
	d.modified = true
}

// Modified reports whether Set, Remove or Clear has been called on this instance
// (or on the instance it was serialized from).
func (d *Data) Modified() bool {
	return d != nil && d.modified
}

// Clone returns a deep copy of d.
func (d *Data) Clone() *Data {
	if d == nil {
		return NewData()
	}
	c := &Data{
		values:   make(map[string]json.RawMessage, len(d.values)),
		modified: d.modified,
	}
	for k, v := range d.values {
		c.values[k] = slices.Clone(v)
	}
	return c
}

// MarshalJSON encodes the container as {"data":{...},"modified":bool}.
// Keys are sorted, so equal containers always produce identical bytes.
func (d *Data) MarshalJSON() ([]byte, error) {
	w := wireData{Data: map[string]json.RawMessage{}}
	if d != nil {
		if d.values != nil {
			w.Data = d.values
		}
		w.Modified = d.modified
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes the form produced by MarshalJSON.
func (d *Data) UnmarshalJSON(b []byte) error {
	var w wireData
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if w.Data == nil {
		w.Data = make(map[string]json.RawMessage)
	}
	d.values = w.Data
	d.modified = w.Modified
	return nil
}
