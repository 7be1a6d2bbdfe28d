package funnel

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a random identifier starting with prefix, suitable for SVG
// element ids such as gradient references. The random part consists of
// lowercase hexadecimal digits.
func NewID(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")
}
