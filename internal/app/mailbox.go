package app

import (
	"sync/atomic"

	"github.com/lox/nimbus/internal/models"
)

// Mailbox is a single-slot handoff from fetch workers to the render loop.
// An unread snapshot is replaced by a later Put.
type Mailbox struct {
	slot atomic.Pointer[models.Snapshot]
}

func (m *Mailbox) Put(s *models.Snapshot) {
	m.slot.Store(s)
}

// Take empties the slot and returns what was in it, or nil.
func (m *Mailbox) Take() *models.Snapshot {
	return m.slot.Swap(nil)
}

func (m *Mailbox) Clear() {
	m.slot.Store(nil)
}
