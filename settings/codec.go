package settings

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"lukechampine.com/blake3"
)

// DecodeError is returned when a settings file is not valid JSON or does
// not match the Settings layout.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to decode settings: %v", e.Err)
	}
	return fmt.Sprintf("failed to decode settings %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

var errNotObject = errors.New("settings must be a JSON object")

// Decode parses data into Settings. The document must be a JSON object.
// Keys missing from data keep their default values. Keys are matched
// exactly; anything else, including a differently cased key, is ignored.
func Decode(data []byte) (Settings, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Settings{}, &DecodeError{Err: err}
	}
	if raw == nil {
		return Settings{}, &DecodeError{Err: errNotObject}
	}

	known := make(map[string]json.RawMessage, len(fields))
	for _, f := range fields {
		if v, ok := raw[f.key]; ok {
			known[f.key] = v
		}
	}
	exact, err := json.Marshal(known)
	if err != nil {
		return Settings{}, &DecodeError{Err: err}
	}

	s := Defaults()
	if err := json.Unmarshal(exact, &s); err != nil {
		return Settings{}, &DecodeError{Err: err}
	}
	return s, nil
}

// Encode serializes s in the on-disk format.
func Encode(s Settings) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}
	return data, nil
}

// Digest identifies the exact bytes of a settings file.
type Digest [32]byte

// Sum returns the blake3 digest of data.
func Sum(data []byte) Digest {
	return blake3.Sum256(data)
}

func (d Digest) String() string {
	return hex.EncodeToString(d[:8])
}
