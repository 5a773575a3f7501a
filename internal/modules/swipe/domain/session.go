package domain

// SessionState is the swipe session's view state. Index stays within
// [0, Length-1]; advancing at the last index leaves it unchanged.
type SessionState struct {
	Index           int
	Length          int
	SwipeInProgress bool
	ModalVisible    bool
	selected        string
	hasSelected     bool
}

func NewSessionState(length int) SessionState {
	s := SessionState{}
	s.Resequence(length)
	return s
}

// Advance moves to the next candidate and reports whether it did.
func (s *SessionState) Advance() bool {
	if s.Index+1 >= s.Length {
		return false
	}
	s.Index++
	return true
}

func (s *SessionState) Resequence(length int) {
	if length < 0 {
		length = 0
	}
	s.Length = length
	s.Index = 0
	s.SwipeInProgress = false
	s.CloseModal()
}

func (s *SessionState) Empty() bool {
	return s.Length == 0
}

func (s *SessionState) OpenModal(coupleID string) {
	s.selected = coupleID
	s.hasSelected = true
	s.ModalVisible = true
}

// CloseModal hides the modal and clears the selection.
func (s *SessionState) CloseModal() {
	s.selected = ""
	s.hasSelected = false
	s.ModalVisible = false
}

func (s SessionState) Selected() (string, bool) {
	return s.selected, s.hasSelected
}
