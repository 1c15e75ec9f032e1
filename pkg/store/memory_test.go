package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/conclusiv/conclusiv/pkg/narrative"
)

func testNarrative(title string) *narrative.Narrative {
	n := &narrative.Narrative{
		Title:    title,
		Template: "zoom_reveal",
		Sections: []narrative.Section{{Title: "Intro"}, {Title: "Close"}},
	}
	if err := n.Validate(); err != nil {
		panic(err)
	}
	return n
}

func TestMemStoreSaveAndGet(t *testing.T) {
	ctx := context.Background()
	st := NewMemStore()
	defer st.Close(ctx)

	id, err := st.SaveNarrative(ctx, testNarrative("First"))
	if err != nil {
		t.Fatalf("SaveNarrative: %v", err)
	}
	if id == "" {
		t.Fatal("SaveNarrative should assign an ID")
	}

	got, err := st.GetNarrative(ctx, id)
	if err != nil {
		t.Fatalf("GetNarrative: %v", err)
	}
	if got.Title != "First" || len(got.Sections) != 2 {
		t.Errorf("got %+v", got)
	}
}

func TestMemStoreGetMissing(t *testing.T) {
	st := NewMemStore()
	if _, err := st.GetNarrative(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	st := NewMemStore()

	n := testNarrative("v1")
	id, _ := st.SaveNarrative(ctx, n)

	n.Title = "v2"
	id2, err := st.SaveNarrative(ctx, n)
	if err != nil {
		t.Fatal(err)
	}
	if id2 != id {
		t.Errorf("overwrite should keep the ID: %s != %s", id2, id)
	}

	got, _ := st.GetNarrative(ctx, id)
	if got.Title != "v2" {
		t.Errorf("Title = %q", got.Title)
	}
}

func TestMemStoreIsolation(t *testing.T) {
	ctx := context.Background()
	st := NewMemStore()

	n := testNarrative("Isolated")
	id, _ := st.SaveNarrative(ctx, n)

	// Mutating the saved or fetched narrative must not leak into the store.
	n.Sections[0].Title = "mutated"
	got, _ := st.GetNarrative(ctx, id)
	if got.Sections[0].Title != "Intro" {
		t.Error("store should copy narratives on save")
	}

	got.Sections[1].Title = "mutated"
	again, _ := st.GetNarrative(ctx, id)
	if again.Sections[1].Title != "Close" {
		t.Error("store should copy narratives on get")
	}
}

func TestMemStoreDelete(t *testing.T) {
	ctx := context.Background()
	st := NewMemStore()

	id, _ := st.SaveNarrative(ctx, testNarrative("Doomed"))
	share, err := st.CreateShare(ctx, id, "flyover_map", 0)
	if err != nil {
		t.Fatal(err)
	}

	if err := st.DeleteNarrative(ctx, id); err != nil {
		t.Fatalf("DeleteNarrative: %v", err)
	}
	if _, err := st.GetNarrative(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Error("deleted narrative should be gone")
	}
	// Shares die with their narrative.
	if _, err := st.GetShare(ctx, share.Token); !errors.Is(err, ErrShareNotFound) {
		t.Error("shares should be removed with the narrative")
	}

	if err := st.DeleteNarrative(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Error("double delete should return ErrNotFound")
	}
}

func TestMemStoreList(t *testing.T) {
	ctx := context.Background()
	st := NewMemStore()

	st.SaveNarrative(ctx, testNarrative("a"))
	st.SaveNarrative(ctx, testNarrative("b"))
	st.SaveNarrative(ctx, testNarrative("c"))

	list, err := st.ListNarratives(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 3 {
		t.Fatalf("len = %d", len(list))
	}
	// Newest first.
	if list[0].Title != "c" || list[2].Title != "a" {
		t.Errorf("order = %s, %s, %s", list[0].Title, list[1].Title, list[2].Title)
	}
}

func TestSaveStampsCreatedAt(t *testing.T) {
	ctx := context.Background()
	st := NewMemStore()

	// IDs are random UUIDs, so recency must come from CreatedAt; every
	// backend stamps it on save so listing can sort on it.
	id, _ := st.SaveNarrative(ctx, testNarrative("Stamped"))
	got, err := st.GetNarrative(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if got.CreatedAt.IsZero() {
		t.Error("SaveNarrative should stamp CreatedAt")
	}

	// An explicit stamp survives the save.
	when := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	n := testNarrative("Backdated")
	n.CreatedAt = when
	id2, _ := st.SaveNarrative(ctx, n)
	got2, _ := st.GetNarrative(ctx, id2)
	if !got2.CreatedAt.Equal(when) {
		t.Errorf("CreatedAt = %v, want %v", got2.CreatedAt, when)
	}
}

func TestMemStoreShares(t *testing.T) {
	ctx := context.Background()
	st := NewMemStore()

	// Sharing a missing narrative fails.
	if _, err := st.CreateShare(ctx, "missing", "", 0); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	id, _ := st.SaveNarrative(ctx, testNarrative("Shared"))
	share, err := st.CreateShare(ctx, id, "priority_ladder", DefaultShareTTL)
	if err != nil {
		t.Fatalf("CreateShare: %v", err)
	}
	if share.Token == "" || share.NarrativeID != id {
		t.Errorf("share = %+v", share)
	}
	if share.ExpiresAt.IsZero() {
		t.Error("TTL share should carry an expiration")
	}

	got, err := st.GetShare(ctx, share.Token)
	if err != nil {
		t.Fatalf("GetShare: %v", err)
	}
	if got.Template != "priority_ladder" {
		t.Errorf("Template = %q", got.Template)
	}

	if _, err := st.GetShare(ctx, "bogus-token"); !errors.Is(err, ErrShareNotFound) {
		t.Error("unknown token should return ErrShareNotFound")
	}
}

func TestMemStoreShareExpiry(t *testing.T) {
	ctx := context.Background()
	st := NewMemStore()

	id, _ := st.SaveNarrative(ctx, testNarrative("Ephemeral"))
	share, _ := st.CreateShare(ctx, id, "", time.Nanosecond)

	time.Sleep(time.Millisecond)
	if _, err := st.GetShare(ctx, share.Token); !errors.Is(err, ErrShareNotFound) {
		t.Error("expired share should return ErrShareNotFound")
	}
}

func TestResolveShare(t *testing.T) {
	ctx := context.Background()
	st := NewMemStore()

	id, _ := st.SaveNarrative(ctx, testNarrative("Resolved"))
	share, _ := st.CreateShare(ctx, id, "contrast_split", 0)

	n, template, err := ResolveShare(ctx, st, share.Token)
	if err != nil {
		t.Fatalf("ResolveShare: %v", err)
	}
	if n.Title != "Resolved" || template != "contrast_split" {
		t.Errorf("got %q / %q", n.Title, template)
	}

	// A dangling share resolves to ErrShareNotFound, not ErrNotFound.
	st.DeleteNarrative(ctx, id)
	if _, _, err := ResolveShare(ctx, st, share.Token); !errors.Is(err, ErrShareNotFound) {
		t.Errorf("expected ErrShareNotFound, got %v", err)
	}
}
