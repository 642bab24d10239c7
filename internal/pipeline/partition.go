package pipeline

import (
	"fmt"
	"time"
)

// PartitionKey derives the hierarchical storage path for one record.
// Time is the record's own timestamp (UTC); the prefix depends on nothing
// else, so the same record time always yields the same prefix.
type PartitionKey struct {
	Source string
	Time   time.Time
}

func NewPartitionKey(source string, recordTime time.Time) PartitionKey {
	return PartitionKey{Source: source, Time: recordTime.UTC()}
}

// Prefix returns {source}/{year}/Month=MM/Day=DD/Hour=HH/Minute=mm.
func (k PartitionKey) Prefix() string {
	t := k.Time.UTC()
	return fmt.Sprintf("%s/%d/Month=%02d/Day=%02d/Hour=%02d/Minute=%02d",
		k.Source, t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute())
}

// ObjectName returns {source}_SS{ext}. The seconds component comes from
// nameTime, which is a deliberately separate input: pass the record time
// for reproducible names, or the wall clock to avoid collisions between
// runs writing the same partition.
func (k PartitionKey) ObjectName(nameTime time.Time, ext string) string {
	return fmt.Sprintf("%s_%02d%s", k.Source, nameTime.UTC().Second(), ext)
}

// Path joins Prefix and ObjectName into the full object key.
func (k PartitionKey) Path(nameTime time.Time, ext string) string {
	return k.Prefix() + "/" + k.ObjectName(nameTime, ext)
}
