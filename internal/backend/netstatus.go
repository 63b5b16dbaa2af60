package backend

import "sync"

// NetStatus is the network-status collaborator: a toggleable connected flag.
// The refresh shell consults it before issuing a fetch.
type NetStatus struct {
	mu        sync.Mutex
	connected bool
}

// NewNetStatus constructs the flag in the given state.
func NewNetStatus(connected bool) *NetStatus {
	return &NetStatus{connected: connected}
}

// Connected reports the current state.
func (n *NetStatus) Connected() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.connected
}

// SetConnected flips the flag (the in-memory "offline mode").
func (n *NetStatus) SetConnected(connected bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.connected = connected
}

// Toggle flips the flag and returns the new state.
func (n *NetStatus) Toggle() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.connected = !n.connected
	return n.connected
}
