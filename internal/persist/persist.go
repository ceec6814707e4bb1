// Package persist stores board snapshots as snappy-compressed gob blobs.
package persist

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/golang/snappy"

	"connex/internal/board"
)

// magic prefixes every save file; the trailing byte is the format version.
var magic = []byte{'C', 'N', 'X', 1}

// Encode writes s to w.
func Encode(w io.Writer, s board.Snapshot) error {
	var raw bytes.Buffer
	if err := gob.NewEncoder(&raw).Encode(s); err != nil {
		return &Error{Op: "encode", Kind: KindCodec, Err: err}
	}
	if _, err := w.Write(magic); err != nil {
		return &Error{Op: "encode", Kind: KindIO, Err: err}
	}
	if _, err := w.Write(snappy.Encode(nil, raw.Bytes())); err != nil {
		return &Error{Op: "encode", Kind: KindIO, Err: err}
	}
	return nil
}

// Decode reads a snapshot written by Encode.
func Decode(r io.Reader) (board.Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return board.Snapshot{}, &Error{Op: "decode", Kind: KindIO, Err: err}
	}
	if !bytes.HasPrefix(data, magic) {
		return board.Snapshot{}, &Error{Op: "decode", Kind: KindCodec, Err: fmt.Errorf("missing header")}
	}
	raw, err := snappy.Decode(nil, data[len(magic):])
	if err != nil {
		return board.Snapshot{}, &Error{Op: "decode", Kind: KindCodec, Err: err}
	}
	var s board.Snapshot
	if err := gob.NewDecoder(bytes.NewReader(raw)).Decode(&s); err != nil {
		return board.Snapshot{}, &Error{Op: "decode", Kind: KindCodec, Err: err}
	}
	if s.Width < 0 || s.Height < 0 || len(s.Connex) != s.Width*s.Height {
		return board.Snapshot{}, &Error{Op: "decode", Kind: KindCodec, Err: fmt.Errorf("inconsistent size %dx%d", s.Width, s.Height)}
	}
	return s, nil
}

// Save writes s to path, replacing any existing file only once the new one
// is complete.
func Save(path string, s board.Snapshot) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return &Error{Op: "save", Kind: KindIO, Path: path, Err: err}
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, s); err != nil {
		tmp.Close()
		return withPath(err, "save", path)
	}
	if err := tmp.Close(); err != nil {
		return &Error{Op: "save", Kind: KindIO, Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &Error{Op: "save", Kind: KindIO, Path: path, Err: err}
	}
	return nil
}

// Load reads the snapshot stored at path.
func Load(path string) (board.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return board.Snapshot{}, &Error{Op: "load", Kind: KindIO, Path: path, Err: err}
	}
	defer f.Close()
	s, err := Decode(f)
	if err != nil {
		return board.Snapshot{}, withPath(err, "load", path)
	}
	return s, nil
}

func withPath(err error, op, path string) error {
	if pe, ok := err.(*Error); ok {
		pe.Op = op
		pe.Path = path
		return pe
	}
	return &Error{Op: op, Kind: KindIO, Path: path, Err: err}
}
