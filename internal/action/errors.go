package action

import (
	"errors"
	"fmt"
)

// Impossible reports that an action cannot happen right now. It carries a
// player-facing message and is returned before any state is changed.
// Every other error out of Perform is fatal.
type Impossible struct {
	Msg string
}

func (e *Impossible) Error() string { return e.Msg }

// Impossiblef builds an Impossible error.
func Impossiblef(format string, args ...any) error {
	return &Impossible{Msg: fmt.Sprintf(format, args...)}
}

// AsImpossible unwraps err into an Impossible, if it is one.
func AsImpossible(err error) (*Impossible, bool) {
	var imp *Impossible
	if errors.As(err, &imp) {
		return imp, true
	}
	return nil, false
}

// IsImpossible reports whether err is a recoverable refusal.
func IsImpossible(err error) bool {
	_, ok := AsImpossible(err)
	return ok
}
