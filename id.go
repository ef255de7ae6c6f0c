package fund

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ids are ULIDs: sortable by creation time, even within a millisecond.
var (
	idMu      sync.Mutex
	idEntropy io.Reader
)

func init() {
	var seed int64
	_ = binary.Read(cryptorand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	idEntropy = ulid.Monotonic(rand.New(rand.NewSource(seed)), 0)
}

// now is the clock of snapshots, replaced in tests.
var now = func() time.Time { return time.Now().UTC() }

// newID returns a new ULID string, replaced in tests.
var newID = func() string {
	idMu.Lock()
	defer idMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(now()), idEntropy).String()
}
