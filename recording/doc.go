// Package recording provides a backend that records drawing calls as
// commands.
//
// A Recorder implements dlist.Backend. Painting a stacking context into it
// captures every call the painter makes, in order, as a typed command. The
// result is a Recording that can be inspected in tests and tools, or played
// back into any other backend.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(800, 600)
//	root.Paint(dlist.NewPaintContext(rec), tile, geom.Identity(), nil)
//	r := rec.FinishRecording()
//
//	for _, cmd := range r.DrawCommands() {
//	    fmt.Println(cmd.Type())
//	}
//
// # Isolation
//
// When a stacking context needs isolation the Recorder hands out a nested
// Recorder. Compositing it back records a BeginIsolation command, the nested
// commands and an EndIsolation command, so playback reproduces the same
// temporary draw targets on the destination backend.
//
// # Backend Registration
//
// Backends can be registered by name, following the database/sql driver
// pattern, so tools can pick one from a flag:
//
//	func init() {
//	    recording.Register("raster", func(w, h int) dlist.Backend {
//	        return raster.New(w, h)
//	    })
//	}
//
//	b, err := recording.NewBackend("raster", 800, 600)
//
// # Thread Safety
//
// Recorder and Recording are not safe for concurrent use. The registry is.
package recording
