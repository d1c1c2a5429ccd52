// Package tray drives the system tray icon and routes its events to handlers.
package tray

import (
	"fmt"
	"sync"
)

// Kind identifies what happened in the tray.
type Kind int

const (
	// Click is a click on the tray icon itself.
	Click Kind = iota
	// MenuItemSelected is a selection of a menu item; Event.ID names it.
	MenuItemSelected
)

func (k Kind) String() string {
	switch k {
	case Click:
		return "click"
	case MenuItemSelected:
		return "menu-item-selected"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Event is a tray event.
type Event struct {
	Kind Kind
	ID   string // menu item id; empty for Click
}

// Handler reacts to an event.
type Handler func(Event)

// Dispatcher maps events to handlers. It is safe for concurrent use.
type Dispatcher struct {
	mu      sync.RWMutex
	onClick Handler
	items   map[string]Handler
}

// NewDispatcher returns a Dispatcher with no handlers.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{items: make(map[string]Handler)}
}

// OnClick sets the handler for clicks on the icon.
func (d *Dispatcher) OnClick(h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onClick = h
}

// OnMenuItem sets the handler for the menu item with the given id.
func (d *Dispatcher) OnMenuItem(id string, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.items[id] = h
}

// Dispatch calls the handler registered for ev and reports whether there
// was one. Events without a handler are dropped.
func (d *Dispatcher) Dispatch(ev Event) bool {
	d.mu.RLock()
	var h Handler
	switch ev.Kind {
	case Click:
		h = d.onClick
	case MenuItemSelected:
		h = d.items[ev.ID]
	}
	d.mu.RUnlock()

	if h == nil {
		return false
	}
	h(ev)
	return true
}

// QuitID is the id of the quit menu item.
const QuitID = "quit"

// Item is a tray menu entry.
type Item struct {
	ID          string
	Title       string
	Tooltip     string
	Accelerator string // advisory; shown in the tooltip
}

// tooltip returns the item's tooltip with its accelerator appended.
func (i Item) tooltip() string {
	if i.Accelerator == "" {
		return i.Tooltip
	}
	if i.Tooltip == "" {
		return i.Accelerator
	}
	return i.Tooltip + " (" + i.Accelerator + ")"
}

// DefaultMenu returns the menu shown when none is configured: a single
// Quit item.
func DefaultMenu() []Item {
	return []Item{
		{ID: QuitID, Title: "Quit", Tooltip: "Quit shellbar", Accelerator: "Cmd+Q"},
	}
}
