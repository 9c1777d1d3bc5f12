package core

import (
	"errors"
	"testing"
	"time"
)

func TestSessionStore_CreateAndGet(t *testing.T) {
	store := NewSessionStore(0)
	catalog := NewIndex(nil, nil)

	sess := store.Create(KindItems, "items.xlsx", []RawRow{validItemRow()}, false, catalog)
	if sess.ID == "" {
		t.Fatal("session id should be assigned")
	}
	if len(sess.Results) != 1 || !sess.Results[0].IsValid {
		t.Fatalf("results = %+v", sess.Results)
	}

	got, err := store.Get(sess.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.FileName != "items.xlsx" || got.Kind != KindItems {
		t.Errorf("session = %+v", got)
	}
}

func TestSessionStore_GetUnknown(t *testing.T) {
	store := NewSessionStore(0)
	if _, err := store.Get("nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
}

// Each session validates against its own clone: a duplicate absorbed by one
// upload must not poison a concurrent upload of the same file.
func TestSessionStore_SessionsDoNotShareState(t *testing.T) {
	store := NewSessionStore(0)
	catalog := NewIndex(nil, nil)

	first := store.Create(KindItems, "a.csv", []RawRow{validItemRow()}, false, catalog)
	second := store.Create(KindItems, "b.csv", []RawRow{validItemRow()}, false, catalog)

	if !first.Results[0].IsValid {
		t.Errorf("first upload should be clean, got %q", first.Results[0].Reason)
	}
	if !second.Results[0].IsValid {
		t.Errorf("second upload must not see the first upload's name keys, got %q", second.Results[0].Reason)
	}
	if catalog.HasNameKey(NameKey("Bolt", "2")) {
		t.Error("source catalog index must stay unmutated")
	}
}

func TestSessionStore_Revalidate(t *testing.T) {
	store := NewSessionStore(0)
	sess := store.Create(KindBoms, "boms.csv", []RawRow{{"1", "S1", "C1", "0"}}, false, bomCatalog(nil))
	if sess.Results[0].IsValid {
		t.Fatal("setup: row should start invalid")
	}

	got, err := store.Revalidate(sess.ID, 0, RawRow{"1", "S1", "C1", "5"})
	if err != nil {
		t.Fatalf("Revalidate: %v", err)
	}
	if !got.IsValid {
		t.Errorf("corrected row should be valid, got %q", got.Reason)
	}

	if _, err := store.Revalidate(sess.ID, 5, RawRow{"1", "S1", "C1", "5"}); err == nil {
		t.Error("out-of-range index should error")
	}
}

func TestSessionStore_Expiry(t *testing.T) {
	store := NewSessionStore(time.Minute)
	now := time.Unix(1000, 0)
	store.now = func() time.Time { return now }

	sess := store.Create(KindItems, "items.csv", nil, false, NewIndex(nil, nil))

	now = now.Add(2 * time.Minute)
	if _, err := store.Get(sess.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expired session: err = %v, want ErrSessionNotFound", err)
	}
	if store.Len() != 0 {
		t.Errorf("expired session should be dropped, len = %d", store.Len())
	}
}

func TestSessionStore_Delete(t *testing.T) {
	store := NewSessionStore(0)
	sess := store.Create(KindItems, "items.csv", nil, false, NewIndex(nil, nil))
	store.Delete(sess.ID)
	if _, err := store.Get(sess.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("deleted session: err = %v", err)
	}
}
