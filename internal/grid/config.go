package grid

// ImageProber reports the intrinsic pixel dimensions of an image file.
// Implementations perform real I/O; the formatter treats any probe error
// as "no thumbnail available" rather than a failure.
type ImageProber interface {
	Probe(path string) (width, height int, err error)
}

// Style holds the CSS class and id attribute values emitted on the table
// elements. Empty values omit the corresponding attribute.
type Style struct {
	TableClass string
	TableID    string
	RowClass   string
	CellClass  string
	NameClass  string // class of the <div> wrapping the name/link block
	LinkClass  string
	ThumbClass string // class of the thumbnail box <div>
}

// Thumbnails configures thumbnail lookup and sizing.
type Thumbnails struct {
	// Dir is the thumbnail directory as a web path relative to the page,
	// used both for the <img> src and (joined with WebRoot) to locate the
	// file on disk.
	Dir string
	// WebRoot is the filesystem directory the web server serves from.
	WebRoot string
	// MaxWidth and MaxHeight bound the displayed size. Zero means
	// unconstrained; the corresponding width/height attribute is omitted.
	MaxWidth  int
	MaxHeight int
	// DrawBox draws a centered enclosing <div> around the thumbnail,
	// fixed to the max dimensions when set. The box is drawn even when
	// the entity has no thumbnail, as an empty placeholder.
	DrawBox bool
	// Prober reads image dimensions. Nil uses the filesystem.
	Prober ImageProber
}

// Config controls a single formatting pass. Entities are opaque to the
// formatter: every entity-derived value comes from one of the callbacks,
// and a nil callback silently omits the corresponding output.
type Config[T any] struct {
	// Columns is the requested column count, clamped to the entity count.
	Columns int
	Order   Order
	// Target is the target attribute of generated hyperlinks.
	Target string
	Style  Style
	Thumbs Thumbnails

	// RenderEntity, when set, produces the entire cell body verbatim and
	// all other callbacks are ignored.
	RenderEntity func(T) string
	Name         func(T) string
	URL          func(T) string
	// ThumbnailFile returns the image file name within Thumbs.Dir.
	ThumbnailFile func(T) string
}

// NewConfig returns a Config with the documented defaults: a single
// column, row-major order, thumbnail box drawn, everything else empty.
func NewConfig[T any]() Config[T] {
	return Config[T]{
		Columns: 1,
		Order:   RowMajor,
		Thumbs:  Thumbnails{DrawBox: true},
	}
}
