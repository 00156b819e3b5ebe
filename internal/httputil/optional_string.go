package httputil

import (
	"bytes"
	"encoding/json"
)

// OptionalString records whether a JSON field was sent at all, so partial
// updates can tell "leave as is" from an explicit null:
//   - Present=false: field absent, keep the current value
//   - Present=true, Value=nil: field is null
//   - Present=true, Value!=nil: field carries a string (possibly empty)
type OptionalString struct {
	Present bool
	Value   *string
}

// UnmarshalJSON is only invoked for fields present in the document.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Present = true

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}
