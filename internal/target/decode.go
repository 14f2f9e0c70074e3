package target

import (
	"errors"
	"fmt"
)

// ErrTargetDecodeUnsupported is returned by ParseTargetMap. Decoding a
// target-format document back into a Map is permanently unsupported, and
// callers must be able to tell this apart from decode or schema errors on
// canonical documents.
var ErrTargetDecodeUnsupported = errors.New("decoding target binding maps is not implemented")

// ParseTargetMap always fails. The target format is write-only; the
// canonical map is the source of truth.
func ParseTargetMap(_ []byte) (*Map, error) {
	return nil, fmt.Errorf("target maps cannot be read back: %w", ErrTargetDecodeUnsupported)
}
