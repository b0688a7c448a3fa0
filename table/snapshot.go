package table

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/wordlego/core"
)

// Compression selects the snapshot payload compression.
type Compression uint8

const (
	// CompressionNone stores the payload uncompressed.
	CompressionNone Compression = iota
	// CompressionZstd compresses the payload with zstd (default).
	CompressionZstd
	// CompressionLZ4 compresses the payload with lz4.
	CompressionLZ4
)

var snapshotMagic = [4]byte{'W', 'L', 'T', 'S'}

const snapshotVersion = 1

var (
	// ErrSnapshotCorrupt is returned when a snapshot fails structural or
	// checksum validation.
	ErrSnapshotCorrupt = errors.New("table: snapshot corrupt")
)

// ErrSnapshotMismatch indicates a snapshot built from a different
// vocabulary than the one being loaded against.
type ErrSnapshotMismatch struct {
	Want uint32
	Got  uint32
}

func (e *ErrSnapshotMismatch) Error() string {
	return fmt.Sprintf("table: snapshot fingerprint %08x does not match vocabulary %08x", e.Got, e.Want)
}

type snapshotHeader struct {
	Magic       [4]byte
	Version     uint8
	Compression uint8
	_           [2]byte // padding, reserved
	Fingerprint uint32
	PayloadLen  uint64
	PayloadCRC  uint32
}

// Save writes a snapshot of t to w, tagged with the vocabulary
// fingerprint it was built from.
func (t *Table) Save(w io.Writer, fingerprint uint32, compression Compression) error {
	payload, err := t.encodePayload()
	if err != nil {
		return err
	}

	compressed, err := compress(payload, compression)
	if err != nil {
		return err
	}

	header := snapshotHeader{
		Magic:       snapshotMagic,
		Version:     snapshotVersion,
		Compression: uint8(compression),
		Fingerprint: fingerprint,
		PayloadLen:  uint64(len(compressed)),
		PayloadCRC:  crc32.ChecksumIEEE(compressed),
	}
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}
	_, err = w.Write(compressed)
	return err
}

// Load reads a snapshot from r. The snapshot must have been saved from
// a vocabulary with the given fingerprint; a mismatch is reported as
// *ErrSnapshotMismatch so callers can fall back to Build.
func Load(r io.Reader, fingerprint uint32) (*Table, error) {
	var header snapshotHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: short header: %w", ErrSnapshotCorrupt, err)
	}
	if header.Magic != snapshotMagic {
		return nil, fmt.Errorf("%w: bad magic", ErrSnapshotCorrupt)
	}
	if header.Version != snapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrSnapshotCorrupt, header.Version)
	}
	if header.Fingerprint != fingerprint {
		return nil, &ErrSnapshotMismatch{Want: fingerprint, Got: header.Fingerprint}
	}

	compressed := make([]byte, header.PayloadLen)
	if _, err := io.ReadFull(r, compressed); err != nil {
		return nil, fmt.Errorf("%w: short payload: %w", ErrSnapshotCorrupt, err)
	}
	if crc32.ChecksumIEEE(compressed) != header.PayloadCRC {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrSnapshotCorrupt)
	}

	payload, err := decompress(compressed, Compression(header.Compression))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSnapshotCorrupt, err)
	}

	return decodePayload(payload)
}

func (t *Table) encodePayload() ([]byte, error) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, uint32(t.numWords)); err != nil {
		return nil, err
	}
	for g := 0; g < t.numWords; g++ {
		outcomes := t.outcomes[g]
		if err := binary.Write(&buf, binary.LittleEndian, uint16(len(outcomes))); err != nil {
			return nil, err
		}
		for _, o := range outcomes {
			data, err := o.Members.MarshalBinary()
			if err != nil {
				return nil, err
			}
			if err := binary.Write(&buf, binary.LittleEndian, uint16(o.Pattern)); err != nil {
				return nil, err
			}
			if err := binary.Write(&buf, binary.LittleEndian, uint32(len(data))); err != nil {
				return nil, err
			}
			buf.Write(data)
		}
	}
	return buf.Bytes(), nil
}

func decodePayload(payload []byte) (*Table, error) {
	r := bytes.NewReader(payload)

	var numWords uint32
	if err := binary.Read(r, binary.LittleEndian, &numWords); err != nil {
		return nil, err
	}
	t := &Table{
		numWords: int(numWords),
		outcomes: make([][]Outcome, numWords),
	}
	for g := uint32(0); g < numWords; g++ {
		var count uint16
		if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
			return nil, err
		}
		outcomes := make([]Outcome, count)
		for i := range outcomes {
			var pattern uint16
			if err := binary.Read(r, binary.LittleEndian, &pattern); err != nil {
				return nil, err
			}
			if pattern >= core.NumPatterns {
				return nil, fmt.Errorf("pattern %d out of range", pattern)
			}
			var size uint32
			if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
				return nil, err
			}
			data := make([]byte, size)
			if _, err := io.ReadFull(r, data); err != nil {
				return nil, err
			}
			members := roaring.New()
			if err := members.UnmarshalBinary(data); err != nil {
				return nil, err
			}
			outcomes[i] = Outcome{Pattern: core.Pattern(pattern), Members: members}
		}
		t.outcomes[g] = outcomes
	}
	return t, nil
}

func compress(payload []byte, compression Compression) ([]byte, error) {
	switch compression {
	case CompressionNone:
		return payload, nil
	case CompressionZstd:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, err
		}
		defer enc.Close()
		return enc.EncodeAll(payload, nil), nil
	case CompressionLZ4:
		var buf bytes.Buffer
		w := lz4.NewWriter(&buf)
		if _, err := w.Write(payload); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown compression %d", compression)
	}
}

func decompress(payload []byte, compression Compression) ([]byte, error) {
	switch compression {
	case CompressionNone:
		return payload, nil
	case CompressionZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return dec.DecodeAll(payload, nil)
	case CompressionLZ4:
		return io.ReadAll(lz4.NewReader(bytes.NewReader(payload)))
	default:
		return nil, fmt.Errorf("unknown compression %d", compression)
	}
}
