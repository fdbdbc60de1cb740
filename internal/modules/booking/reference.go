package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// newReference generates the human-readable booking id shown to customers,
// e.g. BK-20260830-4F9A1C.
func newReference() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return fmt.Sprintf("BK-%s-%s", time.Now().Format("20060102"), suffix)
}
