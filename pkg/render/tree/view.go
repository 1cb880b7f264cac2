package tree

// Phase of the view lifecycle across selection changes.
type Phase string

// View phases.
const (
	// PhaseShowing means a tree is displayed and interactive.
	PhaseShowing Phase = "showing"
	// PhaseLoading means a new selection's data is being fetched; the
	// previous tree remains visible, dimmed and non-interactive.
	PhaseLoading Phase = "loading"
)

// View tracks which tree is on screen across selection changes.
//
// The lifecycle is Showing(A) → BeginLoading(B) → Complete(B, tree) →
// Showing(B). A failed fetch returns to Showing(A) with an error banner and
// the failed id retained for a user-initiated retry; the previously shown
// tree is never cleared. Stale completions (an id that is no longer the
// pending selection) are discarded: last selection wins.
type View struct {
	phase     Phase
	current   *Tree
	pendingID string
	failedID  string
	errMsg    string
}

// NewView creates a view with nothing shown yet.
func NewView() *View {
	return &View{phase: PhaseShowing}
}

// Phase returns the current lifecycle phase.
func (v *View) Phase() Phase { return v.phase }

// Current returns the tree on screen, or nil before the first load.
// While loading, this is still the previous tree.
func (v *View) Current() *Tree { return v.current }

// Dimmed reports whether the displayed tree should render dimmed and
// non-interactive (a newer selection's fetch is in flight).
func (v *View) Dimmed() bool { return v.phase == PhaseLoading && v.current != nil }

// PendingID returns the id being fetched, or "" when not loading.
func (v *View) PendingID() string { return v.pendingID }

// BeginLoading records that personID's relationship set is being fetched.
// Calling it again with a different id supersedes the previous pending
// selection. The error banner from a prior failure is cleared.
func (v *View) BeginLoading(personID string) {
	v.phase = PhaseLoading
	v.pendingID = personID
	v.failedID = ""
	v.errMsg = ""
}

// Complete installs the fetched tree if personID is still the pending
// selection and reports whether it was accepted. A stale completion (the
// user has since selected someone else) is discarded without touching the
// displayed tree.
func (v *View) Complete(personID string, t Tree) bool {
	if v.phase != PhaseLoading || v.pendingID != personID {
		return false
	}
	v.current = &t
	v.phase = PhaseShowing
	v.pendingID = ""
	return true
}

// Fail records a fetch failure for personID and returns to showing the
// previous tree with an error banner. Stale failures are ignored. The
// failed id is kept so the user can retry.
func (v *View) Fail(personID string, err error) bool {
	if v.phase != PhaseLoading || v.pendingID != personID {
		return false
	}
	v.phase = PhaseShowing
	v.pendingID = ""
	v.failedID = personID
	if err != nil {
		v.errMsg = err.Error()
	} else {
		v.errMsg = "failed to load relationships"
	}
	return true
}

// ErrorBanner returns the banner message and whether one should be shown.
func (v *View) ErrorBanner() (string, bool) {
	return v.errMsg, v.errMsg != ""
}

// RetryID returns the id of the failed fetch, or "" when there is nothing
// to retry. Retrying is always user-initiated; the view never refetches on
// its own.
func (v *View) RetryID() string { return v.failedID }
