package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kintreeapp/kintree/pkg/errors"
	"github.com/kintreeapp/kintree/pkg/family"
	"github.com/kintreeapp/kintree/pkg/provider/memory"
)

func browseFixture(t *testing.T) (*browseModel, family.Person) {
	t.Helper()
	store := memory.New()
	focal := memory.SeedDemo(store)
	m := newBrowseModel(store, focal.ID, 800)
	return m, focal
}

func fetchFor(t *testing.T, m *browseModel, personID string) fetchResultMsg {
	t.Helper()
	msg := m.fetchCmd(personID)()
	result, ok := msg.(fetchResultMsg)
	if !ok {
		t.Fatalf("fetchCmd returned %T", msg)
	}
	return result
}

func TestBrowseInitialFetch(t *testing.T) {
	m, focal := browseFixture(t)
	if m.view.PendingID() != focal.ID {
		t.Fatalf("pending = %q, want %q", m.view.PendingID(), focal.ID)
	}

	model, _ := m.Update(fetchFor(t, m, focal.ID))
	m = model.(*browseModel)

	tr := m.view.Current()
	if tr == nil {
		t.Fatal("no tree after successful fetch")
	}
	if tr.SelectedID != focal.ID {
		t.Errorf("selected = %q, want %q", tr.SelectedID, focal.ID)
	}
	// Cursor starts on the selected person in the center row.
	if m.rowIdx != 1 {
		t.Errorf("rowIdx = %d, want 1", m.rowIdx)
	}
	if p, ok := m.cursorPerson(); !ok || p.ID != focal.ID {
		t.Errorf("cursor on %v, want selected person", p)
	}
}

func TestBrowseEnterRecenters(t *testing.T) {
	m, focal := browseFixture(t)
	model, _ := m.Update(fetchFor(t, m, focal.ID))
	m = model.(*browseModel)

	// Move up to the parents row and recenter on the first parent.
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = model.(*browseModel)
	if m.rowIdx != 0 {
		t.Fatalf("rowIdx = %d, want 0", m.rowIdx)
	}
	parent, ok := m.cursorPerson()
	if !ok {
		t.Fatal("no cursor person on parents row")
	}

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(*browseModel)
	if cmd == nil {
		t.Fatal("enter should start a fetch")
	}
	if m.view.PendingID() != parent.ID {
		t.Errorf("pending = %q, want %q", m.view.PendingID(), parent.ID)
	}
	if !m.view.Dimmed() {
		t.Error("previous tree should dim while loading")
	}

	model, _ = m.Update(fetchFor(t, m, parent.ID))
	m = model.(*browseModel)
	if tr := m.view.Current(); tr.SelectedID != parent.ID {
		t.Errorf("selected = %q, want %q", tr.SelectedID, parent.ID)
	}
}

func TestBrowseStaleResponseDiscarded(t *testing.T) {
	m, focal := browseFixture(t)
	model, _ := m.Update(fetchFor(t, m, focal.ID))
	m = model.(*browseModel)

	tr := m.view.Current()
	spouseID := tr.Set.Spouses[0].ID
	childID := tr.Set.Children[0].ID

	// Select the spouse, then the child before the spouse fetch lands.
	spouseFetch := fetchFor(t, m, spouseID)
	m.view.BeginLoading(spouseID)
	m.view.BeginLoading(childID)

	model, _ = m.Update(spouseFetch)
	m = model.(*browseModel)

	if got := m.view.Current().SelectedID; got != focal.ID {
		t.Errorf("stale response applied: selected = %q", got)
	}
	if m.view.PendingID() != childID {
		t.Errorf("pending = %q, want %q", m.view.PendingID(), childID)
	}
}

func TestBrowseFetchFailure(t *testing.T) {
	m, focal := browseFixture(t)
	model, _ := m.Update(fetchFor(t, m, focal.ID))
	m = model.(*browseModel)

	m.view.BeginLoading("nobody")
	model, _ = m.Update(fetchResultMsg{
		personID: "nobody",
		err:      errors.New(errors.ErrCodePersonNotFound, "person not found"),
	})
	m = model.(*browseModel)

	if _, ok := m.view.ErrorBanner(); !ok {
		t.Fatal("no error banner after failed fetch")
	}
	if m.view.Current() == nil || m.view.Current().SelectedID != focal.ID {
		t.Error("previous tree should survive a failed fetch")
	}

	// r retries the failed selection.
	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = model.(*browseModel)
	if cmd == nil {
		t.Fatal("r should start a retry fetch")
	}
	if m.view.PendingID() != "nobody" {
		t.Errorf("pending = %q, want nobody", m.view.PendingID())
	}
}

func TestBrowseViewLandmarks(t *testing.T) {
	m, focal := browseFixture(t)
	model, _ := m.Update(fetchFor(t, m, focal.ID))
	m = model.(*browseModel)

	out := m.View()
	for _, want := range []string{"Parents row", "Center row with siblings and spouses", "Children row"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing landmark %q", want)
		}
	}
	if !strings.Contains(out, "Family tree of") {
		t.Error("view missing title")
	}
}
