package assistant

// Registry holds the registered handlers in a fixed order.
// Registration order is significant: the dispatcher breaks score ties in
// favor of the earlier-registered handler.
type Registry struct {
	handlers []Handler
	byID     map[HandlerID]Handler
}

// NewRegistry creates a new handler registry.
func NewRegistry() *Registry {
	return &Registry{
		byID: make(map[HandlerID]Handler),
	}
}

// Register appends a handler. Registering the same ID twice keeps the first
// and ignores the second.
func (r *Registry) Register(h Handler) {
	if _, ok := r.byID[h.ID()]; ok {
		return
	}
	r.handlers = append(r.handlers, h)
	r.byID[h.ID()] = h
}

// Get retrieves a handler by ID.
func (r *Registry) Get(id HandlerID) (Handler, bool) {
	h, ok := r.byID[id]
	return h, ok
}

// List returns all handlers in registration order.
func (r *Registry) List() []Handler {
	return r.handlers
}

// Len returns the number of registered handlers.
func (r *Registry) Len() int {
	return len(r.handlers)
}
