package currency

import (
	"encoding/json"
	"strings"
)

// Code identifies one tradable asset. Codes are stored upper-cased so
// that lookups are case insensitive. Cash is not a Code; the ledger
// holds cash in a dedicated field.
type Code string

// EMPTYCODE is a holder for an uninitialised code
const EMPTYCODE = Code("")

// NewCode returns a normalised asset code
func NewCode(c string) Code {
	return Code(strings.ToUpper(strings.TrimSpace(c)))
}

// String conforms to the stringer interface
func (c Code) String() string {
	return string(c)
}

// Lower returns the lower-cased representation, used for file lookups
func (c Code) Lower() string {
	return strings.ToLower(string(c))
}

// IsEmpty returns true if the code is unset
func (c Code) IsEmpty() bool {
	return c == EMPTYCODE
}

// Equal reports whether two codes identify the same asset
func (c Code) Equal(check Code) bool {
	return c == check
}

// UnmarshalJSON conforms type to the unmarshaler interface
func (c *Code) UnmarshalJSON(d []byte) error {
	var incoming string
	if err := json.Unmarshal(d, &incoming); err != nil {
		return err
	}
	*c = NewCode(incoming)
	return nil
}

// MarshalJSON conforms type to the marshaler interface
func (c Code) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}
