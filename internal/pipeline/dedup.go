package pipeline

// LastSeenStore remembers the most recent upstream record id per source.
// Get returns "" for a source it has never seen.
type LastSeenStore interface {
	Get(source string) (string, error)
	Set(source, id string) error
}

// MemoryLastSeen keeps last-seen ids for the lifetime of the process.
// It is only ever touched by the scheduler's single control thread.
type MemoryLastSeen struct {
	seen map[string]string
}

func NewMemoryLastSeen() *MemoryLastSeen {
	return &MemoryLastSeen{seen: make(map[string]string)}
}

func (m *MemoryLastSeen) Get(source string) (string, error) {
	return m.seen[source], nil
}

func (m *MemoryLastSeen) Set(source, id string) error {
	m.seen[source] = id
	return nil
}

// Gate suppresses reprocessing of an unchanged upstream record. It is a
// best-effort filter, not an exactly-once guarantee: with the memory
// store nothing survives a restart.
type Gate struct {
	store LastSeenStore
}

func NewGate(store LastSeenStore) *Gate {
	return &Gate{store: store}
}

// Seen reports whether recordID matches the last id committed for
// source. It never mutates the store, so a caller whose downstream write
// fails can retry the same record.
func (g *Gate) Seen(source, recordID string) (bool, error) {
	last, err := g.store.Get(source)
	if err != nil {
		return false, err
	}
	return last == recordID, nil
}

// Commit records recordID as the last processed id for source. Call it
// only after the record's write has succeeded.
func (g *Gate) Commit(source, recordID string) error {
	return g.store.Set(source, recordID)
}
