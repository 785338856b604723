// store/rev.go
package store

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	revMu   sync.Mutex
	revMono io.Reader
)

func init() {
	// Seed a PRNG from crypto/rand so revision entropy is unpredictable.
	// ulid.Monotonic keeps revisions generated within the same millisecond
	// lexicographically increasing.
	var seed int64
	_ = binary.Read(cryptoRand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	revMono = ulid.Monotonic(rand.New(rand.NewSource(seed)), 0)
}

// newRevision returns a ULID string tagging one store write. Revisions are
// time-sortable, so two competing writers of the same collection can be
// told apart after the fact.
func newRevision() string {
	revMu.Lock()
	defer revMu.Unlock()

	id, err := ulid.New(ulid.Timestamp(time.Now().UTC()), revMono)
	if err != nil {
		panic(err)
	}
	return id.String()
}
