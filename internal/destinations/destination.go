// Package destinations fetches travel destination lists from the destinos backend.
package destinations

import (
	"bytes"
	"encoding/json"
)

// Destination is one travel location as served by the backend. Records are
// not validated on the way in: a field of an unexpected JSON type keeps its
// literal text instead of failing the whole list.
type Destination struct {
	ID     ID   `json:"id" validate:"required"`
	Nome   Text `json:"nome" validate:"required"`
	Local  Text `json:"local"`
	Imagem Text `json:"imagem"`
}

// Text is a display field. Strings decode as-is, null decodes empty and any
// other JSON value decodes to its compact literal text.
type Text string

// UnmarshalJSON never fails on well-formed JSON.
func (t *Text) UnmarshalJSON(data []byte) error {
	*t = Text(literal(data))
	return nil
}

func (t Text) String() string { return string(t) }

// ID is a record identifier. The backend emits numbers or strings depending
// on how the record was created, so both decode to the same literal text.
// Other JSON values keep their compact text.
type ID string

// UnmarshalJSON never fails on well-formed JSON.
func (id *ID) UnmarshalJSON(data []byte) error {
	*id = ID(literal(data))
	return nil
}

// MarshalJSON writes numeric ids back as numbers.
func (id ID) MarshalJSON() ([]byte, error) {
	if isNumber(string(id)) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id ID) String() string { return string(id) }

func literal(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return ""
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			return s
		}
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return string(data)
	}
	return buf.String()
}

func isNumber(s string) bool {
	var n json.Number
	return json.Unmarshal([]byte(s), &n) == nil
}
