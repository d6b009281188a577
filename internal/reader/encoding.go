package reader

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ErrUndecodable is returned when no decode strategy accepts a file's bytes.
// This is the one fatal error of a run: a file that cannot even be decoded
// points at a broken export, not a skippable record problem.
var ErrUndecodable = errors.New("no encoding could decode file")

// DecodeStrategy is one entry in the ordered decode fallback chain.
type DecodeStrategy struct {
	Name   string
	Decode func(data []byte) (string, error)
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeStrategies returns the decode attempts in precedence order:
// UTF-8 with optional BOM, strict UTF-8, then Latin-1 as last resort.
// The first strategy that decodes without error wins.
func DecodeStrategies() []DecodeStrategy {
	return []DecodeStrategy{
		{
			Name: "utf-8-sig",
			Decode: func(data []byte) (string, error) {
				data = bytes.TrimPrefix(data, utf8BOM)
				if !utf8.Valid(data) {
					return "", errors.New("invalid UTF-8 sequence")
				}
				return string(data), nil
			},
		},
		{
			Name: "utf-8",
			Decode: func(data []byte) (string, error) {
				if !utf8.Valid(data) {
					return "", errors.New("invalid UTF-8 sequence")
				}
				return string(data), nil
			},
		},
		{
			// ISO 8859-1 maps every byte, so this attempt cannot fail and
			// the chain as configured always terminates with a decoding.
			Name: "latin-1",
			Decode: func(data []byte) (string, error) {
				decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
				if err != nil {
					return "", err
				}
				return string(decoded), nil
			},
		},
	}
}

// decode runs the strategy chain over raw file bytes and returns the decoded
// text together with the name of the strategy that succeeded.
func decode(data []byte) (string, string, error) {
	for _, s := range DecodeStrategies() {
		text, err := s.Decode(data)
		if err == nil {
			return text, s.Name, nil
		}
	}
	return "", "", fmt.Errorf("%w (tried utf-8-sig, utf-8, latin-1)", ErrUndecodable)
}
