// Package verification gates checkout behind a phone number and a simulated
// confirmation code. No SMS is sent and no code is checked against a sent
// value: any four-character code passes. That mirrors the storefront's
// behavior and must stay until a real verification backend replaces it.
package verification

import "sync"

const defaultPhone = "+7"

// User-facing validation messages.
const (
	errInvalidPhone = "Введите корректный номер телефона"
	errInvalidCode  = "Неверный код подтверждения"
)

// State is a snapshot of the verification dialog.
type State struct {
	DialogVisible bool   `json:"dialogVisible"`
	PhoneNumber   string `json:"phoneNumber"`
	Code          string `json:"code"`
	CodeSent      bool   `json:"codeSent"`
	ErrorMessage  string `json:"errorMessage,omitempty"`
}

func defaultState() State {
	return State{PhoneNumber: defaultPhone}
}

// Flow is the checkout verification state machine:
//
//	Closed -> AwaitingPhone -> AwaitingCode -> Closed (verified)
//
// Cancel returns to Closed from anywhere with no callback. Failed submits
// stay in place and record an error message.
type Flow struct {
	mu    sync.Mutex
	state State
}

func NewFlow() *Flow {
	return &Flow{state: defaultState()}
}

// State returns the current snapshot.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Show opens the dialog with the default phone prefix and no code or error.
func (f *Flow) Show() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = defaultState()
	f.state.DialogVisible = true
}

// Cancel closes the dialog and resets everything.
func (f *Flow) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = defaultState()
}

// UpdatePhone replaces the phone number verbatim. Validation happens at
// submit, not here.
func (f *Flow) UpdatePhone(number string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.PhoneNumber = number
}

// SubmitPhone moves to the code step when the number is at least 11
// characters, otherwise records a validation error and stays.
func (f *Flow) SubmitPhone() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len([]rune(f.state.PhoneNumber)) >= 11 {
		f.state.CodeSent = true
		f.state.ErrorMessage = ""
	} else {
		f.state.ErrorMessage = errInvalidPhone
	}
}

// UpdateCode replaces the confirmation code verbatim.
func (f *Flow) UpdateCode(code string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Code = code
}

// SubmitCode accepts any four-character code: it hands the verified phone to
// onSuccess exactly once and resets the flow to its closed defaults. Any
// other code length records a validation error and stays on the code step.
func (f *Flow) SubmitCode(onSuccess func(phone string)) {
	f.mu.Lock()
	if len([]rune(f.state.Code)) != 4 {
		f.state.ErrorMessage = errInvalidCode
		f.mu.Unlock()
		return
	}
	phone := f.state.PhoneNumber
	f.state = defaultState()
	f.mu.Unlock()

	if onSuccess != nil {
		onSuccess(phone)
	}
}
