package radix

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDump(t *testing.T) {
	r := New[int]()
	r.Insert("slow", 1)
	r.Insert("slower", 2)
	r.Insert("team", 3)
	r.Insert("test", 4)

	var b bytes.Buffer
	if err := r.Dump(&b); err != nil {
		t.Fatal(err)
	}
	want := "slow = 1\n" +
		"    er = 2\n" +
		"te\n" +
		"    am = 3\n" +
		"    st = 4\n"
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Errorf("Dump mismatch (-want +got):\n%s", diff)
	}

	r.Insert("", 0)
	b.Reset()
	if err := r.Dump(&b); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("= 0\n"+want, b.String()); diff != "" {
		t.Errorf("Dump mismatch (-want +got):\n%s", diff)
	}
}

var errFull = errors.New("full")

type fullWriter struct{ n int }

func (w *fullWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errFull
	}
	w.n--
	return len(p), nil
}

func TestDumpWriteError(t *testing.T) {
	r := New[int]()
	r.Insert("a", 1)
	r.Insert("b", 2)
	r.Insert("c", 3)

	w := &fullWriter{n: 1}
	if err := r.Dump(w); !errors.Is(err, errFull) {
		t.Errorf("Dump error = %v, want %v", err, errFull)
	}
}

func TestStats(t *testing.T) {
	var r Trie[int]
	if diff := cmp.Diff(Stats{Nodes: 1}, r.Stats()); diff != "" {
		t.Errorf("empty Stats mismatch (-want +got):\n%s", diff)
	}

	r.Insert("slow", 1)
	r.Insert("slower", 2)
	r.Insert("team", 3)
	r.Insert("test", 4)
	want := Stats{Nodes: 6, Entries: 4, MaxDepth: 2}
	if diff := cmp.Diff(want, r.Stats()); diff != "" {
		t.Errorf("Stats mismatch (-want +got):\n%s", diff)
	}
}
