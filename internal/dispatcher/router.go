package dispatcher

import (
	"sort"
	"strings"
	"sync"

	"github.com/dshills/lineedit/internal/dispatcher/handler"
)

// Router routes actions to handlers using namespace prefixes
// (e.g., "line" routes "line.add" and "line.remove").
type Router struct {
	mu sync.RWMutex

	namespaces map[string]handler.NamespaceHandler
}

// NewRouter creates a new action router.
func NewRouter() *Router {
	return &Router{
		namespaces: make(map[string]handler.NamespaceHandler),
	}
}

// RegisterNamespace registers a handler for all actions in a namespace.
func (r *Router) RegisterNamespace(namespace string, h handler.NamespaceHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.namespaces[namespace] = h
}

// UnregisterNamespace removes a namespace handler.
func (r *Router) UnregisterNamespace(namespace string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.namespaces, namespace)
}

// Route finds the appropriate handler for an action.
// Returns nil if no handler is found.
func (r *Router) Route(actionName string) handler.Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if h, ok := r.namespaces[extractNamespace(actionName)]; ok && h.CanHandle(actionName) {
		return handler.NewNamespaceAdapter(h)
	}
	return nil
}

// HasNamespace returns true if a handler is registered for the namespace.
func (r *Router) HasNamespace(namespace string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.namespaces[namespace]
	return ok
}

// Namespaces returns all registered namespace names, sorted.
func (r *Router) Namespaces() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.namespaces))
	for name := range r.namespaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CanRoute returns true if the router can handle the action.
func (r *Router) CanRoute(actionName string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.namespaces[extractNamespace(actionName)]
	return ok && h.CanHandle(actionName)
}

// extractNamespace extracts the namespace from "namespace.action" format.
// Returns empty string if no namespace separator is found.
func extractNamespace(actionName string) string {
	idx := strings.Index(actionName, ".")
	if idx < 0 {
		return ""
	}
	return actionName[:idx]
}
