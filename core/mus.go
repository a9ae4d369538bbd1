package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for types that cross the storage boundary. Written in
// the same shape the generated serializers take: an XxxMUS value with
// Marshal, Unmarshal and Size.

// IDMUS serializes IDs as unsigned varints.
var IDMUS = idMUS{}

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

// DocTextMUS serializes cached extraction results. The timestamp is
// stored as Unix microseconds.
var DocTextMUS = docTextMUS{}

type docTextMUS struct{}

func (docTextMUS) Marshal(v DocText, bs []byte) (n int) {
	n = ord.String.Marshal(v.Text, bs)
	n += varint.Int64.Marshal(v.ExtractedAt.UTC().UnixMicro(), bs[n:])
	return n
}

func (docTextMUS) Unmarshal(bs []byte) (v DocText, n int, err error) {
	v.Text, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var micro int64
	var n1 int
	micro, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ExtractedAt = time.UnixMicro(micro).UTC()
	return
}

func (docTextMUS) Size(v DocText) int {
	return ord.String.Size(v.Text) + varint.Int64.Size(v.ExtractedAt.UTC().UnixMicro())
}
