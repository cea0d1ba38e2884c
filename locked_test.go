package radix

import (
	"fmt"
	"sync"
	"testing"
)

func TestLockedConcurrentInsert(t *testing.T) {
	l := NewLocked[int]()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				l.Insert(fmt.Sprintf("worker%d/key%03d", w, i), i)
				l.StartsWith(fmt.Sprintf("worker%d/", w))
			}
		}(w)
	}
	wg.Wait()

	if n := l.Len(); n != 800 {
		t.Errorf("l.Len() = %d, want 800", n)
	}
	if got := len(l.StartsWith("worker3/")); got != 100 {
		t.Errorf("StartsWith(worker3/) returned %d entries, want 100", got)
	}
	if got := l.List("", ListOptions{Delimiter: "/"}); len(got.CommonPrefixes) != 8 {
		t.Errorf("List returned %v, want 8 common prefixes", got.CommonPrefixes)
	}
	if st := l.Stats(); st.Entries != 800 {
		t.Errorf("Stats().Entries = %d, want 800", st.Entries)
	}
	checkTree(t, l.Snapshot())
}

func TestLockedUpdate(t *testing.T) {
	var l Locked[int]
	l.Insert("counter", 0)

	var wg sync.WaitGroup
	for w := 0; w < 10; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				l.Update("counter", func(v *int) { *v++ })
			}
		}()
	}
	wg.Wait()

	if v, _ := l.Find("counter"); v != 1000 {
		t.Errorf("counter = %d, want 1000", v)
	}
	if l.Update("missing", func(*int) { t.Errorf("fn called for a missing key") }) {
		t.Errorf("Update(missing) = true")
	}

	if v, ok := l.Remove("counter"); !ok || v != 1000 {
		t.Errorf("Remove(counter) = %d, %v", v, ok)
	}
	if _, ok := l.Find("counter"); ok {
		t.Errorf("counter still present")
	}
}

func TestLockedSnapshotIsolated(t *testing.T) {
	l := NewLocked[string]()
	l.Insert("a", "1")

	s := l.Snapshot()
	l.Insert("b", "2")
	s.Insert("c", "3")

	if _, ok := s.Find("b"); ok {
		t.Errorf("snapshot sees later insert")
	}
	if _, ok := l.Find("c"); ok {
		t.Errorf("tree sees snapshot insert")
	}
}
