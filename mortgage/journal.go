package mortgage

import (
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gammazero/deque"
)

const DefaultJournalCapacity = 1024

// Event is one accepted state transition, recorded for external observers
type Event struct {
	Topic      common.Hash
	Name       string
	MortgageID uint64
	Actor      common.Address
	Amount     *big.Int // nil when no value moved
	At         time.Time
}

// Journal keeps a bounded history of ledger events, oldest evicted first
type Journal struct {
	mu       sync.Mutex
	events   deque.Deque[Event]
	capacity int
}

func NewJournal(capacity int) *Journal {
	if capacity <= 0 {
		capacity = DefaultJournalCapacity
	}
	return &Journal{capacity: capacity}
}

func (j *Journal) Record(e Event) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.events.PushBack(e)
	for j.events.Len() > j.capacity {
		j.events.PopFront()
	}
}

// Events returns a snapshot, oldest first
func (j *Journal) Events() []Event {
	j.mu.Lock()
	defer j.mu.Unlock()

	out := make([]Event, j.events.Len())
	for i := 0; i < j.events.Len(); i++ {
		out[i] = j.events.At(i)
	}
	return out
}

func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.events.Len()
}
