package schemas

import (
	"bytes"
	"encoding/json"
)

// AuthorName is the inline-object form of an author reference.
type AuthorName struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// AuthorRef is the author field of a book payload. On the wire it is
// either a numeric id of an existing author or an object naming one.
// Any other shape is recorded as invalid rather than failing the decode,
// so the request still gets a field-level error instead of a bare JSON
// parse failure.
type AuthorRef struct {
	id      *uint
	name    *AuthorName
	present bool
	invalid bool
}

func (r *AuthorRef) UnmarshalJSON(data []byte) error {
	r.present = true
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		r.invalid = true
		return nil
	}

	switch data[0] {
	case '{':
		var name AuthorName
		if err := json.Unmarshal(data, &name); err != nil {
			r.invalid = true
			return nil
		}
		r.name = &name
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var id uint
		if err := json.Unmarshal(data, &id); err != nil {
			// Negative or fractional number.
			r.invalid = true
			return nil
		}
		r.id = &id
	default:
		// Strings, booleans, arrays, null.
		r.invalid = true
	}
	return nil
}
