// Package vectors loads the TOML test-vector files consumed by this
// module's test suites: a top-level "tests" array of input/output/key
// triples, each a plain string or a "hex:"-prefixed hex-encoded string.
package vectors

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// File is the top-level shape of a testdata/<alg>.toml file.
type File struct {
	Tests []Case `toml:"tests"`
}

// Case is one test vector: Input (and optionally Key) hashed or keyed
// should produce Output.
type Case struct {
	Input  string `toml:"input"`
	Output string `toml:"output"`
	Key    string `toml:"key"`
}

// Load parses raw TOML bytes into a File.
func Load(raw []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("vectors: parsing toml: %w", err)
	}
	return &f, nil
}

// Decode implements the hex:-prefix convention: a string starting with
// "hex:" decodes its remainder as hex bytes; any other string is
// returned as its raw UTF-8 bytes.
func Decode(s string) ([]byte, error) {
	if rest, ok := strings.CutPrefix(s, "hex:"); ok {
		b, err := hex.DecodeString(rest)
		if err != nil {
			return nil, fmt.Errorf("vectors: decoding hex string: %w", err)
		}
		return b, nil
	}
	return []byte(s), nil
}

// InputBytes decodes c's Input field via Decode.
func (c Case) InputBytes() ([]byte, error) { return Decode(c.Input) }

// OutputBytes decodes c's Output field via Decode.
func (c Case) OutputBytes() ([]byte, error) { return Decode(c.Output) }

// KeyBytes decodes c's Key field via Decode.
func (c Case) KeyBytes() ([]byte, error) { return Decode(c.Key) }
