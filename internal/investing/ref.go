package investing

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Ref is a record id as sent by a client. A positive integer, quoted or not, names a row;
// any other non-null value is kept as Set with ID 0 and resolves to not found.
type Ref struct {
	Set bool // Key present and not null
	ID  uint // Parsed id, 0 when the value cannot name a row
}

// NewRef returns a reference to id
func NewRef(id uint) Ref {
	return Ref{Set: true, ID: id}
}

// UnmarshalJSON never fails, so a malformed id surfaces as not found rather than a bad request
func (r *Ref) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*r = Ref{}
		return nil
	}
	*r = Ref{Set: true}
	raw := string(b)
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return nil
		}
	}
	if v, err := strconv.ParseUint(raw, 10, 63); err == nil {
		r.ID = uint(v)
	}
	return nil
}
