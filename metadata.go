package dlist

// OpaqueNode is an opaque handle to the source node that produced a display
// item. The only safe operation is comparison: the painting core never
// dereferences it, so layout data never reaches back into the document tree.
type OpaqueNode uintptr

// ID returns the raw handle value, for debugging.
func (n OpaqueNode) ID() uintptr {
	return uintptr(n)
}

// Cursor is a resolved CSS cursor.
type Cursor uint8

// Cursor values. NotPointing is the zero value and marks an item that is
// ineligible for pointer events; CursorAuto is only meaningful as input to
// ResolvePointing.
const (
	NotPointing Cursor = iota
	CursorAuto
	CursorDefault
	CursorNone
	CursorContextMenu
	CursorHelp
	CursorPointer
	CursorProgress
	CursorWait
	CursorCell
	CursorCrosshair
	CursorText
	CursorVerticalText
	CursorAlias
	CursorCopy
	CursorMove
	CursorNoDrop
	CursorNotAllowed
	CursorGrab
	CursorGrabbing
	CursorAllScroll
	CursorColResize
	CursorRowResize
	CursorZoomIn
	CursorZoomOut
)

var cursorNames = [...]string{
	NotPointing:        "<not pointing>",
	CursorAuto:         "auto",
	CursorDefault:      "default",
	CursorNone:         "none",
	CursorContextMenu:  "context-menu",
	CursorHelp:         "help",
	CursorPointer:      "pointer",
	CursorProgress:     "progress",
	CursorWait:         "wait",
	CursorCell:         "cell",
	CursorCrosshair:    "crosshair",
	CursorText:         "text",
	CursorVerticalText: "vertical-text",
	CursorAlias:        "alias",
	CursorCopy:         "copy",
	CursorMove:         "move",
	CursorNoDrop:       "no-drop",
	CursorNotAllowed:   "not-allowed",
	CursorGrab:         "grab",
	CursorGrabbing:     "grabbing",
	CursorAllScroll:    "all-scroll",
	CursorColResize:    "col-resize",
	CursorRowResize:    "row-resize",
	CursorZoomIn:       "zoom-in",
	CursorZoomOut:      "zoom-out",
}

// String returns the CSS keyword of the cursor.
func (c Cursor) String() string {
	if int(c) < len(cursorNames) {
		return cursorNames[c]
	}
	return "unknown"
}

// ParseCursor returns the cursor named by a CSS keyword.
func ParseCursor(name string) (Cursor, bool) {
	for c := CursorAuto; int(c) < len(cursorNames); c++ {
		if cursorNames[c] == name {
			return c, true
		}
	}
	return NotPointing, false
}

// PointerEvents is the computed value of the pointer-events property.
type PointerEvents uint8

// PointerEvents values.
const (
	PointerEventsAuto PointerEvents = iota
	PointerEventsNone
)

// ResolvePointing combines pointer-events and cursor into the value stored in
// Metadata.Pointing. defaultCursor replaces cursor: auto; it is usually
// CursorDefault, or CursorText / CursorVerticalText for text items.
func ResolvePointing(pe PointerEvents, cursor, defaultCursor Cursor) Cursor {
	switch {
	case pe == PointerEventsNone:
		return NotPointing
	case cursor == CursorAuto:
		return defaultCursor
	default:
		return cursor
	}
}

// Metadata is attached to every display item. It lets hit testing report the
// originating node and the cursor to show while hovering it.
type Metadata struct {
	// Node is the node that produced the item.
	Node OpaqueNode
	// Pointing is the hover cursor. NotPointing excludes the item from hit
	// testing (pointer-events: none).
	Pointing Cursor
}

// NewMetadata returns metadata for an item produced by node.
func NewMetadata(node OpaqueNode, pe PointerEvents, cursor, defaultCursor Cursor) Metadata {
	return Metadata{Node: node, Pointing: ResolvePointing(pe, cursor, defaultCursor)}
}

// IsPointing reports whether the item takes part in hit testing.
func (m Metadata) IsPointing() bool {
	return m.Pointing != NotPointing
}
