package dictionary

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

const snapshotVersion = 1

type snapshot struct {
	Version int              `msgpack:"version"`
	Records []snapshotRecord `msgpack:"records"`
	Size    int              `msgpack:"matrix_size"`
	Costs   []int            `msgpack:"matrix_costs"`
}

type snapshotRecord struct {
	Surface    string         `msgpack:"s"`
	Cost       int            `msgpack:"c"`
	Tags       []int          `msgpack:"t"`
	Type       int            `msgpack:"y"`
	Expression []snapshotPart `msgpack:"e,omitempty"`
}

type snapshotPart struct {
	Surface string `msgpack:"s"`
	Tag     int    `msgpack:"t"`
}

// WriteSnapshot serializes the store so ReadSnapshot can rebuild it without
// parsing the text sources again.
func (s *Store) WriteSnapshot(w io.Writer) error {
	snap := snapshot{
		Version: snapshotVersion,
		Records: make([]snapshotRecord, len(s.records)),
		Size:    s.matrix.size,
		Costs:   s.matrix.costs,
	}
	for i, r := range s.records {
		sr := snapshotRecord{
			Surface: r.Surface,
			Cost:    r.Cost,
			Tags:    make([]int, len(r.Tags)),
			Type:    int(r.Type),
		}
		for j, t := range r.Tags {
			sr.Tags[j] = int(t)
		}
		for _, p := range r.Expression {
			sr.Expression = append(sr.Expression, snapshotPart{Surface: p.Surface, Tag: int(p.Tag)})
		}
		snap.Records[i] = sr
	}
	return msgpack.NewEncoder(w).Encode(&snap)
}

// ReadSnapshot rebuilds a store written by WriteSnapshot.
func ReadSnapshot(r io.Reader) (*Store, error) {
	var snap snapshot
	if err := msgpack.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", snap.Version)
	}
	if snap.Size != NumTags || len(snap.Costs) != snap.Size*snap.Size {
		return nil, fmt.Errorf("snapshot matrix is %d contexts wide, want %d", snap.Size, NumTags)
	}
	records := make([]Record, len(snap.Records))
	for i, sr := range snap.Records {
		rec := Record{
			Surface: sr.Surface,
			Cost:    sr.Cost,
			Tags:    make([]Tag, len(sr.Tags)),
			Type:    Type(sr.Type),
		}
		for j, t := range sr.Tags {
			rec.Tags[j] = Tag(t)
		}
		for _, p := range sr.Expression {
			rec.Expression = append(rec.Expression, Part{Surface: p.Surface, Tag: Tag(p.Tag)})
		}
		records[i] = rec
	}
	m := &Matrix{size: snap.Size, costs: snap.Costs}
	return NewStore(records, m)
}
