package fund

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// jsonObjectWriter builds a JSON object whose keys keep insertion order, so
// that ledger lines and snapshots diff cleanly.
// Its zero value is ready to use.
type jsonObjectWriter struct {
	bytes.Buffer
	err error
}

// Append adds key with the JSON encoding of value.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	b, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("cannot marshal %q: %w", key, err)
		return w
	}
	k, _ := json.Marshal(key)
	w.Write(k)
	w.WriteByte(':')
	w.Write(b)
	w.WriteByte(',')
	return w
}

// Optional adds key only when value is not the zero value of its type.
func (w *jsonObjectWriter) Optional(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	v := reflect.ValueOf(value)
	if !v.IsValid() || v.IsZero() {
		return w
	}
	return w.Append(key, value)
}

// Embed merges the fields of a raw JSON object into the object being built.
func (w *jsonObjectWriter) Embed(raw []byte) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) < 2 || raw[0] != '{' || raw[len(raw)-1] != '}' {
		w.err = fmt.Errorf("cannot embed non object %q", raw)
		return w
	}
	if inner := bytes.TrimSpace(raw[1 : len(raw)-1]); len(inner) > 0 {
		w.Write(inner)
		w.WriteByte(',')
	}
	return w
}

// MarshalJSON closes the object.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	content := bytes.TrimSuffix(w.Bytes(), []byte(","))
	out := make([]byte, 0, len(content)+2)
	out = append(out, '{')
	out = append(out, content...)
	return append(out, '}'), nil
}
