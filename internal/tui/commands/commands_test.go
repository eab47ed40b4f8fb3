package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/javiermolinar/weekpick/internal/schedule"
)

type fakeRepo struct {
	load     func() (schedule.SelectedTimes, error)
	saved    map[schedule.DayKey]int
	deleted  []schedule.DayKey
	cleared  bool
	failWith error
}

func (f *fakeRepo) Load(ctx context.Context) (schedule.SelectedTimes, error) {
	if f.load == nil {
		return nil, errors.New("not implemented")
	}
	return f.load()
}

func (f *fakeRepo) SaveDay(ctx context.Context, day schedule.DayKey, blocks schedule.DayBlocks) error {
	if f.failWith != nil {
		return f.failWith
	}
	if f.saved == nil {
		f.saved = make(map[schedule.DayKey]int)
	}
	f.saved[day] = len(blocks)
	return nil
}

func (f *fakeRepo) DeleteDay(ctx context.Context, day schedule.DayKey) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.deleted = append(f.deleted, day)
	return nil
}

func (f *fakeRepo) Clear(ctx context.Context) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.cleared = true
	return nil
}

func (f *fakeRepo) Close() error {
	return nil
}

func TestLoadSelections(t *testing.T) {
	monday := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	stored, err := schedule.SelectedTimes{}.Commit("Mon 1/6", schedule.Interval{
		Start: monday.Add(9 * time.Hour),
		End:   monday.Add(10 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	repo := &fakeRepo{load: func() (schedule.SelectedTimes, error) { return stored, nil }}
	msg := LoadSelections(repo)()
	loaded, ok := msg.(SelectionsLoadedMsg)
	if !ok {
		t.Fatalf("msg = %T, want SelectionsLoadedMsg", msg)
	}
	if loaded.Selected.Len() != 1 {
		t.Errorf("loaded %d blocks, want 1", loaded.Selected.Len())
	}
}

func TestLoadSelections_Error(t *testing.T) {
	wantErr := errors.New("disk on fire")
	repo := &fakeRepo{load: func() (schedule.SelectedTimes, error) { return nil, wantErr }}

	msg := LoadSelections(repo)()
	failed, ok := msg.(LoadFailedMsg)
	if !ok {
		t.Fatalf("msg = %T, want LoadFailedMsg", msg)
	}
	if !errors.Is(failed.Err, wantErr) {
		t.Errorf("err = %v, want wrapping %v", failed.Err, wantErr)
	}
}

func TestNilRepoCommandsAreNil(t *testing.T) {
	if LoadSelections(nil) != nil {
		t.Error("LoadSelections(nil) should be nil")
	}
	w := NewWriter(nil)
	if w != nil {
		t.Fatal("NewWriter(nil) should be nil")
	}
	if w.SaveDay("Mon 1/6", nil) != nil {
		t.Error("SaveDay on a nil writer should be nil")
	}
	if w.DeleteDay("Mon 1/6") != nil {
		t.Error("DeleteDay on a nil writer should be nil")
	}
	if w.Clear() != nil {
		t.Error("Clear on a nil writer should be nil")
	}
}

func TestCopyToClipboard(t *testing.T) {
	var got string
	write := func(text string) error {
		got = text
		return nil
	}

	msg := CopyToClipboard(write, "week", "Mon 1/6\n9:00 AM - 10:00 AM EST")()
	copied, ok := msg.(CopiedMsg)
	if !ok {
		t.Fatalf("msg = %T, want CopiedMsg", msg)
	}
	if copied.Label != "week" || got != "Mon 1/6\n9:00 AM - 10:00 AM EST" {
		t.Errorf("copied = %+v, clipboard = %q", copied, got)
	}

	if _, ok := CopyToClipboard(write, "week", "")().(StatusMsgCmd); !ok {
		t.Error("empty text should produce a status message")
	}

	failing := func(string) error { return errors.New("no clipboard") }
	if _, ok := CopyToClipboard(failing, "week", "x")().(ErrMsg); !ok {
		t.Error("clipboard failure should produce ErrMsg")
	}
}
