package types

import "github.com/google/uuid"

// RunID identifies one invocation of the command in logs.
type RunID string

func NewRunID() RunID {
	return RunID(uuid.NewString())
}

func (x RunID) String() string {
	return string(x)
}
