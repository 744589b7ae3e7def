package raster

import (
	"log/slog"

	"github.com/gogpu/dlist"
)

// logger returns the module-wide logger configured with dlist.SetLogger.
func logger() *slog.Logger {
	return dlist.Logger()
}
