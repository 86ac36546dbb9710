package domain

// LockState is the client-side mirror of the server project mutex
type LockState string

const (
	LockUnlocked  LockState = "UNLOCKED"
	LockAcquiring LockState = "ACQUIRING"
	LockLocked    LockState = "LOCKED"
	LockReleasing LockState = "RELEASING"
)

// IsTransient reports whether a network transition is in flight
func (s LockState) IsTransient() bool {
	return s == LockAcquiring || s == LockReleasing
}

var lockTransitions = map[LockState][]LockState{
	LockUnlocked:  {LockAcquiring},
	LockAcquiring: {LockLocked, LockUnlocked},
	LockLocked:    {LockReleasing, LockUnlocked},
	LockReleasing: {LockUnlocked, LockLocked},
}

// CanTransition reports whether from -> to is a legal lock transition.
// LOCKED -> UNLOCKED is the forced path (shutdown, expiry).
func CanTransition(from, to LockState) bool {
	for _, next := range lockTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
