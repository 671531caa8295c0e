package ecs

// System represents a behavior that operates on the storage's components.
// User-defined systems should implement this interface and can include Singleton fields
// for accessing shared state, as well as custom state fields that persist between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
