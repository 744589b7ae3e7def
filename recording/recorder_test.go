package recording

import (
	"image"
	"reflect"
	"testing"

	"github.com/gogpu/dlist"
	"github.com/gogpu/dlist/effects"
	"github.com/gogpu/dlist/geom"
)

func TestNewRecorder(t *testing.T) {
	rec := NewRecorder(800, 600)

	if rec.Width() != 800 {
		t.Errorf("Width() = %d, want 800", rec.Width())
	}
	if rec.Height() != 600 {
		t.Errorf("Height() = %d, want 600", rec.Height())
	}
	if !rec.Transform().IsIdentity() {
		t.Errorf("Transform() = %+v, want identity", rec.Transform())
	}
	if rec.resources == nil {
		t.Error("resources should not be nil")
	}
}

func TestRecorderCommands(t *testing.T) {
	rec := NewRecorder(100, 100)
	red := dlist.RGB(1, 0, 0)
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	text := &dlist.TextItem{BaseItem: dlist.BaseItem{Bounds: geom.RectPx(1, 2, 3, 4)}}

	rec.SetTransform(geom.Translation(5, 5))
	rec.PushClipRect(geom.RectPx(0, 0, 50, 50))
	rec.PushClipRoundedRect(geom.RectPx(0, 0, 50, 50), geom.AllSame(geom.Px(4)))
	rec.FillRect(geom.RectPx(0, 0, 10, 10), red)
	rec.DrawGlyphRun(text)
	rec.DrawImage(geom.RectPx(0, 0, 4, 4), img, dlist.RenderingPixelated)
	rec.DrawLine(geom.RectPx(0, 9, 10, 1), red, dlist.BorderSolid)
	rec.PopClip()
	rec.PopClip()

	r := rec.FinishRecording()
	var got []CommandType
	for _, cmd := range r.Commands() {
		got = append(got, cmd.Type())
	}
	want := []CommandType{
		CmdSetTransform, CmdPushClipRect, CmdPushClipRoundedRect,
		CmdFillRect, CmdDrawGlyphRun, CmdDrawImage, CmdDrawLine,
		CmdPopClip, CmdPopClip,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("command types = %v, want %v", got, want)
	}

	if n := len(r.DrawCommands()); n != 4 {
		t.Errorf("len(DrawCommands()) = %d, want 4", n)
	}

	glyphs := r.Commands()[4].(DrawGlyphRunCommand)
	if r.Resources().GetText(glyphs.Text) != text {
		t.Error("DrawGlyphRun should pool the text item by reference")
	}
	if glyphs.Bounds != text.Bounds {
		t.Errorf("glyph bounds = %v, want %v", glyphs.Bounds, text.Bounds)
	}
	if got := rec.Transform(); got != geom.Translation(5, 5) {
		t.Errorf("Transform() = %+v after SetTransform", got)
	}
}

func TestRecorderPopEmptyClipPanics(t *testing.T) {
	rec := NewRecorder(10, 10)
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic popping an empty clip stack")
		}
	}()
	rec.PopClip()
}

func TestRecorderGradientStopsCopied(t *testing.T) {
	rec := NewRecorder(10, 10)
	stops := []dlist.GradientStop{{Offset: 0, Color: dlist.Black}, {Offset: 1, Color: dlist.White}}
	rec.DrawLinearGradient(geom.RectPx(0, 0, 10, 10), geom.Pt(0, 0), geom.Pt(10, 0), stops)
	stops[0].Offset = 0.5

	cmd := rec.FinishRecording().Commands()[0].(DrawLinearGradientCommand)
	if cmd.Stops[0].Offset != 0 {
		t.Error("recorded stops should not alias the caller's slice")
	}
}

func TestRecorderIsolation(t *testing.T) {
	rec := NewRecorder(100, 100)

	if tmp := rec.TemporaryDrawTarget(nil, effects.BlendNormal); tmp != dlist.Backend(rec) {
		t.Error("TemporaryDrawTarget without effects should return the receiver")
	}

	filters := effects.Set{effects.Opacity(0.5)}
	tmp := rec.TemporaryDrawTarget(filters, effects.BlendMultiply)
	if tmp == dlist.Backend(rec) {
		t.Fatal("TemporaryDrawTarget with effects should return a nested recorder")
	}
	tmp.FillRect(geom.RectPx(0, 0, 10, 10), dlist.Black)
	rec.CompositeTemporaryDrawTarget(tmp, filters, effects.BlendMultiply)

	cmds := rec.FinishRecording().Commands()
	if len(cmds) != 3 {
		t.Fatalf("len(Commands()) = %d, want 3", len(cmds))
	}
	begin, ok := cmds[0].(BeginIsolationCommand)
	if !ok || begin.BlendMode != effects.BlendMultiply || len(begin.Filters) != 1 {
		t.Errorf("cmds[0] = %#v, want BeginIsolation(multiply)", cmds[0])
	}
	if cmds[1].Type() != CmdFillRect || cmds[2].Type() != CmdEndIsolation {
		t.Errorf("got %v, %v, want FillRect, EndIsolation", cmds[1].Type(), cmds[2].Type())
	}
}

func TestRecorderCompositeForeignTargetPanics(t *testing.T) {
	rec := NewRecorder(10, 10)
	other := NewRecorder(10, 10)
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic compositing a foreign target")
		}
	}()
	rec.CompositeTemporaryDrawTarget(other, effects.Set{effects.Opacity(0.5)}, effects.BlendNormal)
}

func TestPlayback(t *testing.T) {
	src := NewRecorder(100, 100)
	src.SetTransform(geom.Translation(1, 2))
	src.PushClipRect(geom.RectPx(0, 0, 50, 50))
	filters := effects.Set{effects.Opacity(0.25)}
	tmp := src.TemporaryDrawTarget(filters, effects.BlendScreen)
	tmp.DrawBorder(geom.RectPx(0, 0, 20, 20),
		geom.AllSides(geom.Px(2)), geom.BorderRadii{},
		geom.AllSides(dlist.Black), geom.AllSides(dlist.BorderSolid))
	tmp.DrawBoxShadow(geom.RectPx(0, 0, 20, 20), geom.Pt(2, 2), dlist.Black, geom.Px(3), 0, dlist.ShadowClipOutset)
	src.CompositeTemporaryDrawTarget(tmp, filters, effects.BlendScreen)
	src.PopClip()
	recorded := src.FinishRecording()

	dst := NewRecorder(100, 100)
	recorded.Playback(dst)
	replayed := dst.FinishRecording()

	if !reflect.DeepEqual(recorded.Commands(), replayed.Commands()) {
		t.Errorf("playback mismatch:\n got %v\nwant %v", replayed.Commands(), recorded.Commands())
	}
	if dst.ClipDepth() != 0 {
		t.Errorf("ClipDepth() = %d after playback, want 0", dst.ClipDepth())
	}
}
