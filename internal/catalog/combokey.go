package catalog

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ComboSeparator joins the two halves of a packed combination key.
const ComboSeparator = "+"

// ErrInvalidComboKey is returned when a packed key is not "<ide>+<client>".
var ErrInvalidComboKey = errors.New("invalid combination key")

// ComboKey identifies a (developer interface, AI client) pair.
type ComboKey struct {
	IDE    string
	Client string
}

// NewComboKey builds a key from its two identifiers.
func NewComboKey(ide, client string) ComboKey {
	return ComboKey{IDE: ide, Client: client}
}

// ParseComboKey splits a packed "<ide>+<client>" key. Both halves must be
// non-empty and the separator must appear exactly once.
func ParseComboKey(s string) (ComboKey, error) {
	ide, client, ok := strings.Cut(s, ComboSeparator)
	if !ok || ide == "" || client == "" || strings.Contains(client, ComboSeparator) {
		return ComboKey{}, errors.Wrapf(ErrInvalidComboKey, "%q", s)
	}
	return ComboKey{IDE: ide, Client: client}, nil
}

// String returns the packed form used in the data files.
func (k ComboKey) String() string {
	return k.IDE + ComboSeparator + k.Client
}

// IsNative reports whether the key points at an interface's built-in assistant.
func (k ComboKey) IsNative() bool {
	return k.Client == NativeClientID
}

// MarshalText implements encoding.TextMarshaler so keys can index JSON maps.
func (k ComboKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ComboKey) UnmarshalText(text []byte) error {
	parsed, err := ParseComboKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
