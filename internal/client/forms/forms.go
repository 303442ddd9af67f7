// Package forms coordinates the add/edit form state for one collection
// screen: exclusive edit focus, the add-form visibility gate, per-slot
// in-flight gating, and transient success/error banners.
package forms

// BannerKind classifies the transient message shown above a screen.
type BannerKind int

const (
	BannerNone BannerKind = iota
	BannerSuccess
	BannerError
)

// Banner is a transient outcome message. A success banner is cleared by the
// next user input event; an error banner persists until the user edits the
// offending draft.
type Banner struct {
	Kind BannerKind
	Text string
}

// Slot identifies a logical action slot. At most one submission per slot may
// be outstanding; a second submit while the first is in flight is suppressed,
// not queued.
type Slot int

const (
	SlotAdd Slot = iota
	SlotEdit
)

// Machine tracks the form state for one collection of drafts of type D.
// The add form and the edit focus are independent: both may be open, and
// submitting one never disturbs the other.
type Machine[D any] struct {
	addOpen  bool
	addDraft D

	editingID string
	editDraft D

	inFlight map[Slot]bool
	banner   Banner
}

func New[D any]() *Machine[D] {
	return &Machine[D]{inFlight: make(map[Slot]bool)}
}

// OpenAddForm shows the add form without touching edit focus.
func (m *Machine[D]) OpenAddForm() {
	m.addOpen = true
}

// CloseAddForm hides the add form and discards its draft.
func (m *Machine[D]) CloseAddForm() {
	m.addOpen = false
	var zero D
	m.addDraft = zero
}

func (m *Machine[D]) AddFormOpen() bool { return m.addOpen }

// SetAddDraft records user input into the add form. Any banner is cleared:
// typing dismisses a lingering error proactively, not merely on next submit.
func (m *Machine[D]) SetAddDraft(d D) {
	m.addDraft = d
	m.banner = Banner{}
}

func (m *Machine[D]) AddDraft() D { return m.addDraft }

// StartEdit moves edit focus to id. Focus is exclusive: a draft typed into a
// previously focused entity is discarded, never saved.
func (m *Machine[D]) StartEdit(id string, d D) {
	m.editingID = id
	m.editDraft = d
}

// CancelEdit returns edit focus to none without persisting the draft.
func (m *Machine[D]) CancelEdit() {
	m.editingID = ""
	var zero D
	m.editDraft = zero
}

// EditingID returns the id under edit focus, or "" when there is none.
func (m *Machine[D]) EditingID() string { return m.editingID }

// SetEditDraft records user input into the edit form and clears any banner.
func (m *Machine[D]) SetEditDraft(d D) {
	m.editDraft = d
	m.banner = Banner{}
}

func (m *Machine[D]) EditDraft() D { return m.editDraft }

// BeginSubmit marks the slot busy. It reports false when a submission is
// already outstanding, in which case the caller must drop the attempt.
func (m *Machine[D]) BeginSubmit(s Slot) bool {
	if m.inFlight[s] {
		return false
	}
	m.inFlight[s] = true
	return true
}

// FinishSubmit completes the slot's outstanding submission. On success the
// slot's form closes (the add form hides, edit focus returns to none) and a
// success banner carries msg; on failure the form stays as it was and the
// error text is surfaced.
func (m *Machine[D]) FinishSubmit(s Slot, msg string, err error) {
	m.inFlight[s] = false

	if err != nil {
		m.banner = Banner{Kind: BannerError, Text: err.Error()}
		return
	}

	switch s {
	case SlotAdd:
		m.CloseAddForm()
	case SlotEdit:
		m.CancelEdit()
	}
	m.banner = Banner{Kind: BannerSuccess, Text: msg}
}

// InFlight reports whether the slot has an outstanding submission.
func (m *Machine[D]) InFlight(s Slot) bool { return m.inFlight[s] }

func (m *Machine[D]) Banner() Banner { return m.banner }

func (m *Machine[D]) ClearBanner() { m.banner = Banner{} }
