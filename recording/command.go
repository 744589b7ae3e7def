package recording

import (
	"github.com/gogpu/dlist"
	"github.com/gogpu/dlist/effects"
	"github.com/gogpu/dlist/geom"
)

// CommandType identifies the type of a command.
// Each command type corresponds to one dlist.Backend call.
type CommandType uint8

const (
	// State commands
	CmdSetTransform        CommandType = iota // Set transformation matrix
	CmdPushClipRect                           // Push rectangular clip
	CmdPushClipRoundedRect                    // Push rounded rectangle clip
	CmdPopClip                                // Pop clip
	CmdBeginIsolation                         // Start painting into a temporary target
	CmdEndIsolation                           // Composite the temporary target back

	// Drawing commands
	CmdFillRect           // Fill a rectangle
	CmdDrawGlyphRun       // Draw glyphs of a text item
	CmdDrawImage          // Draw an image
	CmdDrawBorder         // Draw a border
	CmdDrawLinearGradient // Fill with a linear gradient
	CmdDrawLine           // Draw a line
	CmdDrawBoxShadow      // Draw a box shadow
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSetTransform:        "SetTransform",
	CmdPushClipRect:        "PushClipRect",
	CmdPushClipRoundedRect: "PushClipRoundedRect",
	CmdPopClip:             "PopClip",
	CmdBeginIsolation:      "BeginIsolation",
	CmdEndIsolation:        "EndIsolation",
	CmdFillRect:            "FillRect",
	CmdDrawGlyphRun:        "DrawGlyphRun",
	CmdDrawImage:           "DrawImage",
	CmdDrawBorder:          "DrawBorder",
	CmdDrawLinearGradient:  "DrawLinearGradient",
	CmdDrawLine:            "DrawLine",
	CmdDrawBoxShadow:       "DrawBoxShadow",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// IsDraw reports whether the command paints pixels.
func (c CommandType) IsDraw() bool {
	return c >= CmdFillRect && c <= CmdDrawBoxShadow
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// ImageRef is a reference to an image in the resource pool.
type ImageRef uint32

// TextRef is a reference to a text item in the resource pool.
type TextRef uint32

// InvalidRef is the sentinel value for an invalid reference.
const InvalidRef = ^uint32(0)

// IsValid returns true if the reference points to a valid image.
func (r ImageRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// IsValid returns true if the reference points to a valid text item.
func (r TextRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// SetTransformCommand sets the current transformation matrix.
type SetTransformCommand struct {
	Matrix geom.Matrix
}

// Type implements Command.
func (SetTransformCommand) Type() CommandType { return CmdSetTransform }

// PushClipRectCommand intersects the clip with a rectangle.
type PushClipRectCommand struct {
	Rect geom.Rect
}

// Type implements Command.
func (PushClipRectCommand) Type() CommandType { return CmdPushClipRect }

// PushClipRoundedRectCommand intersects the clip with a rounded rectangle.
type PushClipRoundedRectCommand struct {
	Rect  geom.Rect
	Radii geom.BorderRadii
}

// Type implements Command.
func (PushClipRoundedRectCommand) Type() CommandType { return CmdPushClipRoundedRect }

// PopClipCommand restores the previous clip.
type PopClipCommand struct{}

// Type implements Command.
func (PopClipCommand) Type() CommandType { return CmdPopClip }

// BeginIsolationCommand starts a temporary draw target. Commands up to the
// matching EndIsolationCommand paint into it.
type BeginIsolationCommand struct {
	Filters   effects.Set
	BlendMode effects.BlendMode
}

// Type implements Command.
func (BeginIsolationCommand) Type() CommandType { return CmdBeginIsolation }

// EndIsolationCommand composites the innermost temporary target back.
type EndIsolationCommand struct {
	Filters   effects.Set
	BlendMode effects.BlendMode
}

// Type implements Command.
func (EndIsolationCommand) Type() CommandType { return CmdEndIsolation }

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------

// FillRectCommand fills a rectangle with a solid color.
type FillRectCommand struct {
	Rect  geom.Rect
	Color dlist.Color
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

// DrawGlyphRunCommand draws a text item.
type DrawGlyphRunCommand struct {
	// Text references the item in the resource pool.
	Text TextRef
	// Bounds is a copy of the item bounds, for inspection.
	Bounds geom.Rect
}

// Type implements Command.
func (DrawGlyphRunCommand) Type() CommandType { return CmdDrawGlyphRun }

// DrawImageCommand draws an image stretched over Bounds.
type DrawImageCommand struct {
	Bounds    geom.Rect
	Image     ImageRef
	Rendering dlist.ImageRendering
}

// Type implements Command.
func (DrawImageCommand) Type() CommandType { return CmdDrawImage }

// DrawBorderCommand draws the four sides of a border.
type DrawBorderCommand struct {
	Bounds geom.Rect
	Widths geom.SideOffsets[geom.Au]
	Radii  geom.BorderRadii
	Colors geom.SideOffsets[dlist.Color]
	Styles geom.SideOffsets[dlist.BorderStyle]
}

// Type implements Command.
func (DrawBorderCommand) Type() CommandType { return CmdDrawBorder }

// DrawLinearGradientCommand fills Bounds with a linear gradient.
type DrawLinearGradientCommand struct {
	Bounds     geom.Rect
	Start, End geom.Point
	Stops      []dlist.GradientStop
}

// Type implements Command.
func (DrawLinearGradientCommand) Type() CommandType { return CmdDrawLinearGradient }

// DrawLineCommand draws a line filling Bounds.
type DrawLineCommand struct {
	Bounds geom.Rect
	Color  dlist.Color
	Style  dlist.BorderStyle
}

// Type implements Command.
func (DrawLineCommand) Type() CommandType { return CmdDrawLine }

// DrawBoxShadowCommand draws a box shadow.
type DrawBoxShadowCommand struct {
	BoxBounds    geom.Rect
	Offset       geom.Point
	Color        dlist.Color
	BlurRadius   geom.Au
	SpreadRadius geom.Au
	ClipMode     dlist.BoxShadowClipMode
}

// Type implements Command.
func (DrawBoxShadowCommand) Type() CommandType { return CmdDrawBoxShadow }
