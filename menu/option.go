package menu

import "errors"

var (
	// ErrEmptyOptionSet is returned when a menu without options is asked to open.
	ErrEmptyOptionSet = errors.New("menu has no options")
	// ErrIndexOutOfRange is returned when a commit targets a missing option.
	// The commit is turned into a cancel.
	ErrIndexOutOfRange = errors.New("menu index out of range")
)

// Option is one selectable menu entry. InsertText is appended to the buffer
// when the option is committed.
type Option struct {
	ID         string
	Label      string
	InsertText string
}

// ValidateOptions reports ErrEmptyOptionSet for an empty option sequence.
func ValidateOptions(options []Option) error {
	if len(options) == 0 {
		return ErrEmptyOptionSet
	}
	return nil
}

func cloneOptions(options []Option) []Option {
	if len(options) == 0 {
		return nil
	}
	out := make([]Option, len(options))
	copy(out, options)
	return out
}
