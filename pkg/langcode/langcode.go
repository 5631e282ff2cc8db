package langcode

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// ErrInvalidLanguageCode indicates a string that does not match the accepted
// language code shape.
var ErrInvalidLanguageCode = errors.New("langcode: invalid language code")

// Validate checks that code matches the accepted language code shape:
// a first segment of 2-3 alphanumeric characters, optionally followed by
// "-" or "_" separated non-empty alphanumeric segments.
func Validate(code string) error {
	if code == "" {
		return fmt.Errorf("%w: empty", ErrInvalidLanguageCode)
	}

	seg := 0
	first := true
	for i := 0; i < len(code); i++ {
		c := code[i]
		if c == '-' || c == '_' {
			if err := checkSegment(code, seg, first); err != nil {
				return err
			}
			first = false
			seg = 0
			continue
		}
		if !isAlnum(c) {
			return fmt.Errorf("%w: %q", ErrInvalidLanguageCode, code)
		}
		seg++
	}
	if err := checkSegment(code, seg, first); err != nil {
		return err
	}

	return nil
}

func checkSegment(code string, length int, first bool) error {
	if length == 0 {
		return fmt.Errorf("%w: %q", ErrInvalidLanguageCode, code)
	}
	if first && (length < 2 || length > 3) {
		return fmt.Errorf("%w: %q", ErrInvalidLanguageCode, code)
	}
	return nil
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// Map associates language codes with human-readable display names used in
// spreadsheet headers. The zero value is usable and maps nothing.
type Map struct {
	byCode map[string]string
}

// NewMap creates a Map from a code-to-display-name mapping.
// The input map is copied; later mutation has no effect on the Map.
func NewMap(names map[string]string) *Map {
	byCode := make(map[string]string, len(names))
	for code, name := range names {
		byCode[code] = name
	}
	return &Map{byCode: byCode}
}

// DisplayName returns the display name for code, or code itself when the map
// has no entry for it.
func (m *Map) DisplayName(code string) string {
	if m == nil {
		return code
	}
	if name, ok := m.byCode[code]; ok && name != "" {
		return name
	}
	return code
}

// Reverse returns a display-name-to-code lookup map. When two codes share a
// display name, the winner is unspecified; callers detect the resulting
// duplicate columns during header parsing.
func (m *Map) Reverse() map[string]string {
	if m == nil {
		return map[string]string{}
	}
	reverse := make(map[string]string, len(m.byCode))
	for code, name := range m.byCode {
		reverse[name] = code
	}
	return reverse
}

// Len returns the number of entries in the map.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.byCode)
}

// DefaultDisplayName derives an English display name from the BCP 47 registry
// (e.g. "de" -> "German", "pt-BR" -> "Brazilian Portuguese"). Codes that do
// not parse as a language tag are returned verbatim.
func DefaultDisplayName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return code
}
