package recording

import (
	"fmt"
	"image"

	"github.com/gogpu/dlist"
	"github.com/gogpu/dlist/effects"
	"github.com/gogpu/dlist/geom"
)

// Recorder captures dlist.Backend calls as commands. Use FinishRecording
// to obtain a Recording that can be inspected or replayed.
//
// Example:
//
//	rec := recording.NewRecorder(800, 600)
//	root.Paint(dlist.NewPaintContext(rec), tile, geom.Identity(), nil)
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	resources     *ResourcePool

	transform geom.Matrix
	clipDepth int
}

var _ dlist.Backend = (*Recorder)(nil)

// NewRecorder creates a new Recorder for the given dimensions, with an
// identity transform and no clip.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:     width,
		height:    height,
		commands:  make([]Command, 0, 256),
		resources: NewResourcePool(),
		transform: geom.Identity(),
	}
}

// FinishRecording returns a Recording containing all recorded commands.
// After calling FinishRecording, the Recorder should not be used again.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:     r.width,
		height:    r.height,
		commands:  r.commands,
		resources: r.resources,
	}
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

// ClipDepth returns the number of clips currently pushed.
func (r *Recorder) ClipDepth() int {
	return r.clipDepth
}

func (r *Recorder) record(cmd Command) {
	r.commands = append(r.commands, cmd)
}

// --------------------------------------------------------------------------
// Transform and Clip
// --------------------------------------------------------------------------

// Transform returns the current transform.
func (r *Recorder) Transform() geom.Matrix {
	return r.transform
}

// SetTransform records a transform change.
func (r *Recorder) SetTransform(m geom.Matrix) {
	r.transform = m
	r.record(SetTransformCommand{Matrix: m})
}

// PushClipRect records a rectangular clip.
func (r *Recorder) PushClipRect(rect geom.Rect) {
	r.clipDepth++
	r.record(PushClipRectCommand{Rect: rect})
}

// PushClipRoundedRect records a rounded rectangle clip.
func (r *Recorder) PushClipRoundedRect(rect geom.Rect, radii geom.BorderRadii) {
	r.clipDepth++
	r.record(PushClipRoundedRectCommand{Rect: rect, Radii: radii})
}

// PopClip records a clip pop. It panics if no clip is pushed.
func (r *Recorder) PopClip() {
	if r.clipDepth == 0 {
		panic("recording: PopClip with empty clip stack")
	}
	r.clipDepth--
	r.record(PopClipCommand{})
}

// --------------------------------------------------------------------------
// Drawing
// --------------------------------------------------------------------------

// FillRect records a solid fill.
func (r *Recorder) FillRect(rect geom.Rect, c dlist.Color) {
	r.record(FillRectCommand{Rect: rect, Color: c})
}

// DrawGlyphRun records a text draw. The item is pooled by reference.
func (r *Recorder) DrawGlyphRun(text *dlist.TextItem) {
	ref := r.resources.AddText(text)
	r.record(DrawGlyphRunCommand{Text: ref, Bounds: text.Bounds})
}

// DrawImage records an image draw. The image is pooled by reference.
func (r *Recorder) DrawImage(bounds geom.Rect, img image.Image, rendering dlist.ImageRendering) {
	ref := r.resources.AddImage(img)
	r.record(DrawImageCommand{Bounds: bounds, Image: ref, Rendering: rendering})
}

// DrawBorder records a border draw.
func (r *Recorder) DrawBorder(bounds geom.Rect, widths geom.SideOffsets[geom.Au], radii geom.BorderRadii,
	colors geom.SideOffsets[dlist.Color], styles geom.SideOffsets[dlist.BorderStyle]) {
	r.record(DrawBorderCommand{Bounds: bounds, Widths: widths, Radii: radii, Colors: colors, Styles: styles})
}

// DrawLinearGradient records a gradient fill. The stops are copied.
func (r *Recorder) DrawLinearGradient(bounds geom.Rect, start, end geom.Point, stops []dlist.GradientStop) {
	r.record(DrawLinearGradientCommand{
		Bounds: bounds,
		Start:  start,
		End:    end,
		Stops:  append([]dlist.GradientStop(nil), stops...),
	})
}

// DrawLine records a line draw.
func (r *Recorder) DrawLine(bounds geom.Rect, c dlist.Color, style dlist.BorderStyle) {
	r.record(DrawLineCommand{Bounds: bounds, Color: c, Style: style})
}

// DrawBoxShadow records a box shadow draw.
func (r *Recorder) DrawBoxShadow(boxBounds geom.Rect, offset geom.Point, c dlist.Color, blur, spread geom.Au,
	mode dlist.BoxShadowClipMode) {
	r.record(DrawBoxShadowCommand{
		BoxBounds:    boxBounds,
		Offset:       offset,
		Color:        c,
		BlurRadius:   blur,
		SpreadRadius: spread,
		ClipMode:     mode,
	})
}

// --------------------------------------------------------------------------
// Isolation
// --------------------------------------------------------------------------

// TemporaryDrawTarget returns r when no isolation is needed, or a nested
// Recorder sharing r's resources and transform.
func (r *Recorder) TemporaryDrawTarget(filters effects.Set, mode effects.BlendMode) dlist.Backend {
	if !effects.NeedsIsolation(filters, mode) {
		return r
	}
	return &Recorder{
		width:     r.width,
		height:    r.height,
		resources: r.resources,
		transform: r.transform,
	}
}

// CompositeTemporaryDrawTarget appends the commands of a nested Recorder,
// wrapped in isolation markers. It panics if tmp did not come from
// TemporaryDrawTarget or still has clips pushed.
func (r *Recorder) CompositeTemporaryDrawTarget(tmp dlist.Backend, filters effects.Set, mode effects.BlendMode) {
	if tmp == dlist.Backend(r) {
		return
	}
	nested, ok := tmp.(*Recorder)
	if !ok || nested.resources != r.resources {
		panic(fmt.Sprintf("recording: cannot composite foreign draw target %T", tmp))
	}
	if nested.clipDepth != 0 {
		panic("recording: composited draw target has unbalanced clips")
	}
	r.record(BeginIsolationCommand{Filters: filters, BlendMode: mode})
	r.commands = append(r.commands, nested.commands...)
	r.record(EndIsolationCommand{Filters: filters, BlendMode: mode})
}

// --------------------------------------------------------------------------
// Recording
// --------------------------------------------------------------------------

// Recording is an immutable container for recorded commands.
// It can be replayed to any dlist.Backend.
type Recording struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// DrawCommands returns only the commands that paint pixels, in order.
func (r *Recording) DrawCommands() []Command {
	var out []Command
	for _, cmd := range r.commands {
		if cmd.Type().IsDraw() {
			out = append(out, cmd)
		}
	}
	return out
}

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Playback replays the recording to the given backend. Isolation markers
// are replayed through the backend's own temporary draw targets.
func (r *Recording) Playback(backend dlist.Backend) {
	stack := []dlist.Backend{backend}
	cur := backend

	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case SetTransformCommand:
			cur.SetTransform(c.Matrix)
		case PushClipRectCommand:
			cur.PushClipRect(c.Rect)
		case PushClipRoundedRectCommand:
			cur.PushClipRoundedRect(c.Rect, c.Radii)
		case PopClipCommand:
			cur.PopClip()
		case BeginIsolationCommand:
			tmp := cur.TemporaryDrawTarget(c.Filters, c.BlendMode)
			stack = append(stack, tmp)
			cur = tmp
		case EndIsolationCommand:
			tmp := cur
			stack = stack[:len(stack)-1]
			cur = stack[len(stack)-1]
			cur.CompositeTemporaryDrawTarget(tmp, c.Filters, c.BlendMode)
		case FillRectCommand:
			cur.FillRect(c.Rect, c.Color)
		case DrawGlyphRunCommand:
			cur.DrawGlyphRun(r.resources.GetText(c.Text))
		case DrawImageCommand:
			cur.DrawImage(c.Bounds, r.resources.GetImage(c.Image), c.Rendering)
		case DrawBorderCommand:
			cur.DrawBorder(c.Bounds, c.Widths, c.Radii, c.Colors, c.Styles)
		case DrawLinearGradientCommand:
			cur.DrawLinearGradient(c.Bounds, c.Start, c.End, c.Stops)
		case DrawLineCommand:
			cur.DrawLine(c.Bounds, c.Color, c.Style)
		case DrawBoxShadowCommand:
			cur.DrawBoxShadow(c.BoxBounds, c.Offset, c.Color, c.BlurRadius, c.SpreadRadius, c.ClipMode)
		}
	}
}
