package id

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// New returns an entity id of the form <prefix>-<epochMillis>-<entropy>.
// The millisecond stamp keeps ids roughly sortable by creation time; the
// uuid-derived suffix removes same-millisecond collisions.
func New(prefix string) string {
	entropy := strings.SplitN(uuid.NewString(), "-", 2)[0]

	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), entropy)
}
