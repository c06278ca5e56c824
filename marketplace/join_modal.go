package marketplace

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	ErrModalNotOpen       = errors.New("marketplace: join modal is not open")
	ErrSubmissionInFlight = errors.New("marketplace: join request is being submitted")
)

// ModalState is a state of the join modal
type ModalState int

const (
	StateClosed ModalState = iota
	StateOpen
	StateSubmitting
	StateSuccess
)

func (s ModalState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	}
	return fmt.Sprintf("ModalState(%d)", int(s))
}

// SubmitStatus is the outcome of the latest submission
type SubmitStatus int

const (
	SubmitNone SubmitStatus = iota
	SubmitPending
	SubmitOK
	SubmitError
)

// ModalSnapshot is a copy of the modal's state safe to hand to templates
type ModalSnapshot struct {
	State      ModalState
	Status     SubmitStatus
	CampaignID string
	Form       JoinForm
	Errors     FieldErrors
	FormError  string
	CloseAt    time.Time
}

// IsOpen reports whether the modal dialog is visible
func (s ModalSnapshot) IsOpen() bool {
	return s.State != StateClosed
}

// Busy reports whether submit and cancel must be disabled
func (s ModalSnapshot) Busy() bool {
	return s.State == StateSubmitting
}

// JoinModal drives closed -> open -> submitting -> success -> closed for
// one visitor. It is safe for concurrent use; a cancel or second submit
// that arrives while a submission is in flight is refused.
type JoinModal struct {
	mu         sync.Mutex
	submitter  Submitter
	closeDelay time.Duration
	now        func() time.Time

	state      ModalState
	status     SubmitStatus
	campaignID string
	form       JoinForm
	errors     FieldErrors
	formError  string
	successAt  time.Time
	lastSeen   time.Time
}

// NewJoinModal creates a closed modal
func NewJoinModal(submitter Submitter, closeDelay time.Duration) *JoinModal {
	return newJoinModal(submitter, closeDelay, time.Now)
}

func newJoinModal(submitter Submitter, closeDelay time.Duration, now func() time.Time) *JoinModal {
	return &JoinModal{
		submitter:  submitter,
		closeDelay: closeDelay,
		now:        now,
		lastSeen:   now(),
	}
}

// Open shows the form for campaignID. Opening while already open switches
// campaigns and clears the form.
func (m *JoinModal) Open(campaignID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastSeen = m.now()
	if m.state == StateSubmitting {
		return ErrSubmissionInFlight
	}
	m.resetLocked()
	m.state = StateOpen
	m.campaignID = campaignID
	return nil
}

// Submit validates form and, when valid, hands the request to the
// submitter. Validation failures are returned as FieldErrors and leave the
// modal open with no side effect.
func (m *JoinModal) Submit(ctx context.Context, form JoinForm) error {
	m.mu.Lock()
	m.lastSeen = m.now()
	switch m.state {
	case StateSubmitting:
		m.mu.Unlock()
		return ErrSubmissionInFlight
	case StateOpen:
	default:
		m.mu.Unlock()
		return ErrModalNotOpen
	}

	m.form = form
	m.formError = ""
	req, err := form.ToJoinRequest(m.campaignID, m.now())
	if err != nil {
		var fieldErrs FieldErrors
		if errors.As(err, &fieldErrs) {
			m.errors = fieldErrs
		}
		m.mu.Unlock()
		return err
	}
	m.errors = nil
	m.state = StateSubmitting
	m.status = SubmitPending
	submitter := m.submitter
	m.mu.Unlock()

	err = submitter.Submit(ctx, req)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastSeen = m.now()
	if err != nil {
		m.state = StateOpen
		m.status = SubmitError
		m.formError = "Failed to join campaign. Please try again."
		return fmt.Errorf("join campaign %s: %w", req.CampaignID, err)
	}
	m.state = StateSuccess
	m.status = SubmitOK
	m.successAt = m.now()
	return nil
}

// Cancel closes the modal and discards the form. It is refused while a
// submission is in flight.
func (m *JoinModal) Cancel() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastSeen = m.now()

	if m.state == StateSubmitting {
		return ErrSubmissionInFlight
	}
	m.resetLocked()
	return nil
}

// Expire closes a successful modal once its close delay has passed and
// reports whether it did.
func (m *JoinModal) Expire() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.expireLocked()
}

// Snapshot returns a copy of the current state
func (m *JoinModal) Snapshot() ModalSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.expireLocked()
	snap := ModalSnapshot{
		State:      m.state,
		Status:     m.status,
		CampaignID: m.campaignID,
		Form:       m.form,
		FormError:  m.formError,
	}
	if len(m.errors) > 0 {
		snap.Errors = make(FieldErrors, len(m.errors))
		for k, v := range m.errors {
			snap.Errors[k] = v
		}
	}
	if m.state == StateSuccess {
		snap.CloseAt = m.successAt.Add(m.closeDelay)
	}
	return snap
}

// State returns the current state
func (m *JoinModal) State() ModalState {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expireLocked()
	return m.state
}

// touch marks the modal as in use by its visitor
func (m *JoinModal) touch() {
	m.mu.Lock()
	m.lastSeen = m.now()
	m.mu.Unlock()
}

// stale reports whether the modal has been untouched for ttl and holds no
// submission in flight
func (m *JoinModal) stale(ttl time.Duration) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expireLocked()
	if m.state == StateSubmitting {
		return false
	}
	return m.now().Sub(m.lastSeen) >= ttl
}

func (m *JoinModal) expireLocked() bool {
	if m.state != StateSuccess {
		return false
	}
	if m.now().Before(m.successAt.Add(m.closeDelay)) {
		return false
	}
	m.resetLocked()
	return true
}

func (m *JoinModal) resetLocked() {
	m.state = StateClosed
	m.status = SubmitNone
	m.campaignID = ""
	m.form = JoinForm{}
	m.errors = nil
	m.formError = ""
	m.successAt = time.Time{}
}

// ModalRegistry hands out one JoinModal per visitor. Modals untouched for
// the idle TTL are dropped by Sweep, whatever state they were left in,
// unless a submission is in flight.
type ModalRegistry struct {
	mu         sync.Mutex
	modals     map[string]*JoinModal
	submitter  Submitter
	closeDelay time.Duration
	idleTTL    time.Duration
	now        func() time.Time
}

// NewModalRegistry creates an empty registry whose modals share submitter
func NewModalRegistry(submitter Submitter, closeDelay, idleTTL time.Duration) *ModalRegistry {
	return &ModalRegistry{
		modals:     make(map[string]*JoinModal),
		submitter:  submitter,
		closeDelay: closeDelay,
		idleTTL:    idleTTL,
		now:        time.Now,
	}
}

// Get returns the visitor's modal, creating a closed one if needed. The
// modal counts as active from this call on, so a concurrent Sweep keeps it.
func (r *ModalRegistry) Get(visitorID string) *JoinModal {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.modals[visitorID]
	if !ok {
		m = newJoinModal(r.submitter, r.closeDelay, r.now)
		r.modals[visitorID] = m
		return m
	}
	m.touch()
	return m
}

// Peek returns the visitor's modal without creating one
func (r *ModalRegistry) Peek(visitorID string) (*JoinModal, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.modals[visitorID]
	if ok {
		m.touch()
	}
	return m, ok
}

// Sweep drops idle modals and returns how many were removed
func (r *ModalRegistry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, m := range r.modals {
		if m.stale(r.idleTTL) {
			delete(r.modals, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked modals
func (r *ModalRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.modals)
}
