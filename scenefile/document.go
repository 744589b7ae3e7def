package scenefile

// The document types mirror the YAML layout. They are converted into dlist
// values by the builder; nothing outside this package sees them.

type document struct {
	Width  int          `yaml:"width"`
	Height int          `yaml:"height"`
	Root   contextEntry `yaml:"root"`
}

type contextEntry struct {
	Bounds    []float32      `yaml:"bounds"`
	Overflow  []float32      `yaml:"overflow"`
	Z         int32          `yaml:"z"`
	Transform *transformSpec `yaml:"transform"`
	Filters   []filterSpec   `yaml:"filters"`
	Blend     string         `yaml:"blend"`
	Layer     *layerSpec     `yaml:"layer"`
	Items     []itemEntry    `yaml:"items"`
	Children  []contextEntry `yaml:"children"`
}

type transformSpec struct {
	Translate []float32 `yaml:"translate"`
	Rotate    float32   `yaml:"rotate"`
	Scale     []float32 `yaml:"scale"`
}

type filterSpec struct {
	Kind   string  `yaml:"kind"`
	Amount float32 `yaml:"amount"`
	Radius float32 `yaml:"radius"`
}

type layerSpec struct {
	ID         uint64 `yaml:"id"`
	Background string `yaml:"background"`
}

type clipSpec struct {
	Rect   []float32 `yaml:"rect"`
	Radius []float32 `yaml:"radius"`
}

type stopSpec struct {
	Offset float32 `yaml:"offset"`
	Color  string  `yaml:"color"`
}

type itemEntry struct {
	Kind    string    `yaml:"kind"`
	Section string    `yaml:"section"`
	Bounds  []float32 `yaml:"bounds"`
	Clip    *clipSpec `yaml:"clip"`

	Node          uint64 `yaml:"node"`
	Cursor        string `yaml:"cursor"`
	PointerEvents string `yaml:"pointer-events"`

	Color string `yaml:"color"`

	// border
	Widths []float32 `yaml:"widths"`
	Colors []string  `yaml:"colors"`
	Styles []string  `yaml:"styles"`
	Radius []float32 `yaml:"radius"`

	// text
	Text        string    `yaml:"text"`
	Size        float32   `yaml:"size"`
	Origin      []float32 `yaml:"origin"`
	Orientation string    `yaml:"orientation"`
	Blur        float32   `yaml:"blur"`

	// image
	Src       string    `yaml:"src"`
	Stretch   []float32 `yaml:"stretch"`
	Rendering string    `yaml:"rendering"`

	// gradient
	Start []float32  `yaml:"start"`
	End   []float32  `yaml:"end"`
	Stops []stopSpec `yaml:"stops"`

	// line
	Style string `yaml:"style"`

	// box shadow
	Box      []float32 `yaml:"box"`
	Offset   []float32 `yaml:"offset"`
	Spread   float32   `yaml:"spread"`
	ClipMode string    `yaml:"clip-mode"`
}
