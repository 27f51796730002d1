package dialogue

import (
	"hash/fnv"
	"math/rand"

	"github.com/mfalcone/memoria/internal/domain"
)

// Sequencer walks the content lists in a per-user order. The order is a
// deterministic shuffle seeded from the user id and the list id, so the same
// user always hears a list in the same order while two users rarely do.
//
// The cursor is the session's shared count attribute: every list advances the
// same counter, so mixing lists within one session skips items. That is the
// long-standing behavior users know, and it is kept on purpose.
type Sequencer struct {
	userID string
}

// NewSequencer creates a sequencer for one user.
func NewSequencer(userID string) *Sequencer {
	return &Sequencer{userID: userID}
}

// Next returns the current item of the given list and advances the session
// counter. last reports that the returned item is the final one; a counter
// already past the end is clamped to it.
func (q *Sequencer) Next(state *domain.SessionState, id ListID) (item string, last bool) {
	list := q.order(id)
	idx := state.Count
	if idx < 0 {
		idx = 0
	}
	if idx >= len(list)-1 {
		idx = len(list) - 1
		last = true
	}
	state.Count++
	return list[idx], last
}

// Len returns the number of items in the given list.
func (q *Sequencer) Len(id ListID) int {
	return len(contentLists[id])
}

func (q *Sequencer) order(id ListID) []string {
	canonical := contentLists[id]
	list := make([]string, len(canonical))
	copy(list, canonical)

	h := fnv.New64a()
	h.Write([]byte(q.userID))
	h.Write([]byte{':'})
	h.Write([]byte(id))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))
	rng.Shuffle(len(list), func(i, j int) {
		list[i], list[j] = list[j], list[i]
	})
	return list
}
