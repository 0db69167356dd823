package engine

// System is a per-frame update pass that also receives routed events
type System interface {
	EventHandler

	// Init resets session state for a new game
	Init()

	// Name returns the system's name
	Name() string

	// Priority orders Update calls, lower values run first
	Priority() int

	// Update runs once per frame after event dispatch
	Update()
}
