package board

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const idSuffixLen = 9

// NewID returns an id of the form task-<unix millis>-<9 base36 chars>.
// Collisions are not checked.
func NewID() string {
	return newIDAt(time.Now())
}

func newIDAt(t time.Time) string {
	return fmt.Sprintf("task-%d-%s", t.UnixMilli(), randomSuffix())
}

func randomSuffix() string {
	u := uuid.New()
	n := binary.BigEndian.Uint64(u[8:])
	s := strconv.FormatUint(n, 36)
	if len(s) < idSuffixLen {
		s = strings.Repeat("0", idSuffixLen-len(s)) + s
	}
	return s[len(s)-idSuffixLen:]
}
