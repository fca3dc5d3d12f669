package menu

// Result describes what Apply did with an Action.
type Result struct {
	Action Action

	// Changed is true when the menu state (phase, anchor or highlight) moved.
	Changed bool

	// Committed is the inserted option when Inserted is true.
	Committed Option
	Inserted  bool

	// Err carries recoverable failures: ErrEmptyOptionSet, metrics errors on
	// open, ErrIndexOutOfRange on commit.
	Err error
}

// PassThrough reports whether the key should reach ordinary text entry.
func (r Result) PassThrough() bool {
	return r.Action.Kind == ActionPassThrough
}

// Apply runs the single transition named by a. ActionPassThrough and
// ActionSwallow leave the machine untouched.
func (m *Machine) Apply(a Action) Result {
	res := Result{Action: a}
	before := m.state

	switch a.Kind {
	case ActionOpen:
		res.Err = m.Trigger()
	case ActionPrev:
		m.Prev()
	case ActionNext:
		m.Next()
	case ActionSelect:
		m.Select(a.Index)
	case ActionCommit:
		opt, err := m.Commit()
		if err != nil {
			res.Err = err
		} else if before.IsOpen() {
			res.Committed = opt
			res.Inserted = true
		}
	case ActionCancel:
		m.Cancel()
	}

	res.Changed = m.state != before
	return res
}
