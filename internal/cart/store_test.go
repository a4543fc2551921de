package cart

import (
	"testing"

	"github.com/omaatv/eticaret-projem/internal/storage"
)

// recordingStorage wraps a Memory storage and counts Save calls so tests can
// assert the one-write-per-mutation rule.
type recordingStorage struct {
	*storage.Memory
	saves int
}

func newRecordingStorage() *recordingStorage {
	return &recordingStorage{Memory: storage.NewMemory()}
}

func (r *recordingStorage) Save(key string, value []byte) error {
	r.saves++
	return r.Memory.Save(key, value)
}

func sampleItem(id int) Item {
	return Item{ProductID: id, Name: "Koşu Ayakkabısı", Slug: "kosu-ayakkabisi", UnitPrice: 1499, ImageURL: "/img/shoe.jpg"}
}

func TestAddMergesByProductID(t *testing.T) {
	s := NewStore(newRecordingStorage(), nil)

	s.Add(sampleItem(1), 1)
	s.Add(sampleItem(1), 2)
	s.Add(sampleItem(1), 4)

	items := s.Items()
	if len(items) != 1 {
		t.Fatalf("expected a single line item, got %d", len(items))
	}
	if items[0].Quantity != 7 {
		t.Fatalf("expected quantity 7, got %d", items[0].Quantity)
	}
}

func TestAddIgnoresUnidentifiedProducts(t *testing.T) {
	st := newRecordingStorage()
	s := NewStore(st, nil)

	s.Add(Item{Name: "no id", Slug: "x"}, 1)
	s.Add(Item{ProductID: 2}, 1) // missing slug

	if len(s.Items()) != 0 {
		t.Fatalf("expected cart to stay empty, got %d items", len(s.Items()))
	}
	if st.saves != 0 {
		t.Fatalf("no-op adds must not persist, got %d saves", st.saves)
	}
}

func TestAddDefaultsQuantityToOne(t *testing.T) {
	s := NewStore(newRecordingStorage(), nil)

	s.Add(sampleItem(1), 0)
	s.Add(sampleItem(2), -5)

	for _, item := range s.Items() {
		if item.Quantity != 1 {
			t.Fatalf("expected quantity 1 for product %d, got %d", item.ProductID, item.Quantity)
		}
	}
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	s := NewStore(newRecordingStorage(), nil)

	s.Add(sampleItem(3), 1)
	s.Add(sampleItem(1), 1)
	s.Add(sampleItem(2), 1)
	s.Add(sampleItem(1), 1) // merge must not reorder

	items := s.Items()
	want := []int{3, 1, 2}
	for i, id := range want {
		if items[i].ProductID != id {
			t.Fatalf("unexpected order at %d: got %d, want %d", i, items[i].ProductID, id)
		}
	}
}

func TestUpdateQuantityReplacesAndRemoves(t *testing.T) {
	s := NewStore(newRecordingStorage(), nil)
	s.Add(sampleItem(1), 5)

	s.UpdateQuantity(1, 2)
	if got := s.Items()[0].Quantity; got != 2 {
		t.Fatalf("expected quantity replaced with 2, got %d", got)
	}

	s.UpdateQuantity(1, 0)
	if len(s.Items()) != 0 {
		t.Fatalf("expected item removed at quantity 0")
	}

	s.Add(sampleItem(1), 3)
	s.UpdateQuantity(1, -4)
	if len(s.Items()) != 0 {
		t.Fatalf("expected item removed at negative quantity")
	}
}

func TestRemoveMissingIsNoOp(t *testing.T) {
	st := newRecordingStorage()
	s := NewStore(st, nil)
	s.Add(sampleItem(1), 1)
	before := st.saves

	s.Remove(99)

	if len(s.Items()) != 1 {
		t.Fatalf("existing item must survive removal of a missing id")
	}
	if st.saves != before {
		t.Fatalf("removing a missing item must not persist")
	}
}

func TestCountAndTotal(t *testing.T) {
	s := NewStore(newRecordingStorage(), nil)
	s.Add(Item{ProductID: 1, Slug: "a", UnitPrice: 10}, 2)
	s.Add(Item{ProductID: 2, Slug: "b", UnitPrice: 2.5}, 4)

	if s.Count() != 6 {
		t.Fatalf("expected count 6, got %d", s.Count())
	}
	if s.Total() != 30 {
		t.Fatalf("expected total 30, got %v", s.Total())
	}

	s.UpdateQuantity(2, 1)
	if s.Count() != 3 || s.Total() != 22.5 {
		t.Fatalf("derived values stale after update: count=%d total=%v", s.Count(), s.Total())
	}
}

func TestOneSavePerMutation(t *testing.T) {
	st := newRecordingStorage()
	s := NewStore(st, nil)

	s.Add(sampleItem(1), 1)      // 1
	s.Add(sampleItem(1), 2)      // 2 (merge still persists)
	s.UpdateQuantity(1, 5)       // 3
	s.Add(sampleItem(2), 1)      // 4
	s.Remove(2)                  // 5
	s.Clear()                    // 6
	s.UpdateQuantity(42, 3)      // missing item, no write
	s.Add(Item{Slug: "bad"}, 1)  // guard, no write

	if st.saves != 6 {
		t.Fatalf("expected exactly 6 saves, got %d", st.saves)
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	st := storage.NewMemory()

	first := NewStore(st, nil)
	first.Add(sampleItem(1), 2)
	first.Add(sampleItem(2), 1)

	second := NewStore(st, nil)
	items := second.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items after reload, got %d", len(items))
	}
	if items[0].ProductID != 1 || items[0].Quantity != 2 {
		t.Fatalf("unexpected first item after reload: %+v", items[0])
	}
	if second.Total() != first.Total() {
		t.Fatalf("total changed across reload: %v != %v", second.Total(), first.Total())
	}
}

func TestCorruptedBlobYieldsEmptyCart(t *testing.T) {
	st := storage.NewMemory()
	st.Save(StorageKey, []byte(`{not json`))

	s := NewStore(st, nil)
	if len(s.Items()) != 0 {
		t.Fatalf("expected empty cart from corrupted blob")
	}

	// the store must still be usable afterwards
	s.Add(sampleItem(1), 1)
	if len(s.Items()) != 1 {
		t.Fatalf("store unusable after corrupted rehydrate")
	}
}

func TestClearPersistsEmptyList(t *testing.T) {
	st := storage.NewMemory()
	s := NewStore(st, nil)
	s.Add(sampleItem(1), 1)
	s.Clear()

	data, err := st.Load(StorageKey)
	if err != nil {
		t.Fatalf("expected persisted blob after clear: %v", err)
	}
	if string(data) != "[]" {
		t.Fatalf("expected empty list blob, got %s", data)
	}
}
