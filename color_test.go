package dlist

import (
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#f00", color.NRGBA{R: 255, A: 255}, false},
		{"#0f08", color.NRGBA{G: 255, A: 136}, false},
		{"336699", color.NRGBA{R: 0x33, G: 0x66, B: 0x99, A: 255}, false},
		{"#11223344", color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}, false},
		{"#12", color.NRGBA{}, true},
		{"#zzz", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && c.NRGBA() != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, c.NRGBA(), tt.want)
			}
		})
	}
}

func TestColorRGBAPremultiplied(t *testing.T) {
	r, g, b, a := RGBA(1, 0.5, 0, 0.5).RGBA()
	if a != 0x7fff || r != 0x7fff || b != 0 {
		t.Errorf("RGBA() = %#x %#x %#x %#x", r, g, b, a)
	}
	if g < 0x3ffe || g > 0x4000 {
		t.Errorf("green = %#x, want about 0x3fff", g)
	}
}

func TestColorFrom(t *testing.T) {
	c := ColorFrom(color.NRGBA{R: 255, G: 0, B: 255, A: 255})
	if c != RGB(1, 0, 1) {
		t.Errorf("ColorFrom() = %+v", c)
	}
	if !Transparent.IsTransparent() || Black.IsTransparent() {
		t.Error("IsTransparent() mismatch")
	}
}

func TestResolvePointing(t *testing.T) {
	tests := []struct {
		name   string
		pe     PointerEvents
		cursor Cursor
		want   Cursor
	}{
		{"pointer-events none", PointerEventsNone, CursorPointer, NotPointing},
		{"auto uses default", PointerEventsAuto, CursorAuto, CursorText},
		{"explicit cursor", PointerEventsAuto, CursorWait, CursorWait},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolvePointing(tt.pe, tt.cursor, CursorText); got != tt.want {
				t.Errorf("ResolvePointing() = %v, want %v", got, tt.want)
			}
		})
	}

	md := NewMetadata(0x10, PointerEventsNone, CursorPointer, CursorDefault)
	if md.IsPointing() || md.Node.ID() != 0x10 {
		t.Errorf("NewMetadata() = %+v", md)
	}
}

func TestParseCursor(t *testing.T) {
	c, ok := ParseCursor("not-allowed")
	if !ok || c != CursorNotAllowed || c.String() != "not-allowed" {
		t.Errorf("ParseCursor(not-allowed) = %v, %v", c, ok)
	}
	if _, ok := ParseCursor("<not pointing>"); ok {
		t.Error("ParseCursor should not accept the NotPointing label")
	}
}
