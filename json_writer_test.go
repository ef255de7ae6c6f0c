package fund

import (
	"encoding/json"
	"testing"
)

func TestJsonObjectWriter(t *testing.T) {
	tests := []struct {
		name  string
		build func(w *jsonObjectWriter)
		want  string
	}{
		{
			name:  "empty object",
			build: func(w *jsonObjectWriter) {},
			want:  `{}`,
		},
		{
			name: "keeps insertion order",
			build: func(w *jsonObjectWriter) {
				w.Append("z", 1)
				w.Append("a", "x")
			},
			want: `{"z":1,"a":"x"}`,
		},
		{
			name: "optional skips zero values",
			build: func(w *jsonObjectWriter) {
				w.Append("a", 0)
				w.Optional("b", "")
				w.Optional("c", false)
				w.Optional("d", "hello")
			},
			want: `{"a":0,"d":"hello"}`,
		},
		{
			name: "embed merges fields",
			build: func(w *jsonObjectWriter) {
				w.Append("a", 1)
				w.Embed(json.RawMessage(`{"c":3,"d":4}`))
				w.Append("b", 2)
			},
			want: `{"a":1,"c":3,"d":4,"b":2}`,
		},
		{
			name: "embed empty object",
			build: func(w *jsonObjectWriter) {
				w.Append("a", 1)
				w.Embed([]byte(` {} `))
			},
			want: `{"a":1}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w jsonObjectWriter
			tt.build(&w)
			got, err := w.MarshalJSON()
			if err != nil {
				t.Fatalf("MarshalJSON() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("MarshalJSON() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestJsonObjectWriterError(t *testing.T) {
	var w jsonObjectWriter
	w.Append("a", 1)
	w.Embed([]byte(`[1,2]`))
	w.Append("b", 2)
	if _, err := w.MarshalJSON(); err == nil {
		t.Error("MarshalJSON() expected an error after embedding an array")
	}
}
