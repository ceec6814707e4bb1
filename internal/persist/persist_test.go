package persist

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"connex/internal/board"
)

func sampleSnapshot() board.Snapshot {
	cfg := board.DefaultConfig()
	cfg.Width = 12
	cfg.Height = 9
	b := board.New(cfg)
	b.Update()
	return b.Snapshot()
}

func TestSaveLoad(t *testing.T) {
	want := sampleSnapshot()
	path := filepath.Join(t.TempDir(), "board.cnx")

	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Width != want.Width || got.Height != want.Height || got.Tick != want.Tick {
		t.Fatalf("header mismatch: got %dx%d@%d", got.Width, got.Height, got.Tick)
	}
	if !slices.Equal(got.Energy, want.Energy) || !slices.Equal(got.Alpha, want.Alpha) || !slices.Equal(got.Delta, want.Delta) {
		t.Fatal("grid contents differ after round trip")
	}
}

func TestLoadMissingFileIsIOError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.cnx"))
	if !errors.Is(err, ErrIO) {
		t.Fatalf("want ErrIO, got %v", err)
	}
	if errors.Is(err, ErrCodec) {
		t.Fatal("missing file should not match ErrCodec")
	}
	var pe *Error
	if !errors.As(err, &pe) || pe.Op != "load" || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("unexpected error shape: %#v", err)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	cases := [][]byte{
		[]byte("hello"),
		append(append([]byte(nil), magic...), 0xff, 0x00, 0x13),
	}
	for _, data := range cases {
		_, err := Decode(bytes.NewReader(data))
		if !errors.Is(err, ErrCodec) {
			t.Fatalf("Decode(%q) = %v, want ErrCodec", data, err)
		}
	}
}

func TestSaveIntoMissingDirIsIOError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "board.cnx")
	if err := Save(path, sampleSnapshot()); !errors.Is(err, ErrIO) {
		t.Fatalf("want ErrIO, got %v", err)
	}
}
