package validation

// State tracks where a form field sits in its interaction lifecycle.
type State int

const (
	StateUntouched State = iota
	StateValid
	StateInvalid
)

// Rule pairs a predicate with the message reported when it fails.
type Rule struct {
	Check   func(string) bool
	Message string
}

// Field carries per-field validation state for interactive forms.
// Leaving the field (Blur) evaluates its rules; typing again (Input)
// optimistically clears an error without re-running validation.
type Field struct {
	rules   []Rule
	state   State
	message string
}

func NewField(rules ...Rule) *Field {
	return &Field{rules: rules}
}

// Blur evaluates the field's rules in order against the given value and
// settles into Valid or Invalid with the first failing rule's message.
func (f *Field) Blur(value string) State {
	for _, rule := range f.rules {
		if !rule.Check(value) {
			f.state = StateInvalid
			f.message = rule.Message
			return f.state
		}
	}
	f.state = StateValid
	f.message = ""
	return f.state
}

// Input records that the user is typing again. An invalid field drops back
// to untouched so the error disappears immediately; a valid field stays
// valid.
func (f *Field) Input() {
	if f.state == StateInvalid {
		f.state = StateUntouched
		f.message = ""
	}
}

func (f *Field) State() State {
	return f.state
}

func (f *Field) Message() string {
	return f.message
}
