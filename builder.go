package tickloop

import (
	"fmt"
	"strings"

	"github.com/comalice/tickloop/video"
	"github.com/comalice/tickloop/video/headless"
)

// Builder provides a fluent API for configuring and constructing a Runtime.
// A Builder is used for one Build call and not reused afterward.
type Builder struct {
	title       string
	width       int32
	height      int32
	enableVideo bool
	driver      video.Driver
}

// New creates a builder with default settings: empty title, zero size
// (backend default), video disabled.
func New() *Builder {
	return &Builder{}
}

// Title sets the display title forwarded to the video backend. Not validated
// here; validation happens at Build.
func (b *Builder) Title(title string) *Builder {
	b.title = title
	return b
}

// Size sets the display dimensions. Zero values mean "use the backend
// default", which is also the builder default.
func (b *Builder) Size(width, height int32) *Builder {
	b.width = width
	b.height = height
	return b
}

// EnableVideo marks the video subsystem as required. Without it, Build never
// touches a driver.
func (b *Builder) EnableVideo() *Builder {
	b.enableVideo = true
	return b
}

// Driver injects the video backend to use. Ignored unless EnableVideo is
// set. When video is enabled and no driver is injected, Build falls back to
// a headless driver.
func (b *Builder) Driver(d video.Driver) *Builder {
	b.driver = d
	return b
}

// FromConfig folds a Config into the builder. It is applied like any other
// chained call, so later explicit calls override it.
func (b *Builder) FromConfig(cfg Config) *Builder {
	b.title = cfg.Title
	b.width = cfg.Video.Width
	b.height = cfg.Video.Height
	b.enableVideo = cfg.Video.Enabled
	return b
}

// Build validates the accumulated settings, performs the one fallible setup
// step, and returns a ready Runtime.
//
// With video disabled this has no side effects at all. With video enabled it
// rejects titles containing a NUL byte (the backend calling convention needs
// a NUL-terminated string), initializes the driver, and checks readiness.
func (b *Builder) Build() (*Runtime, error) {
	if !b.enableVideo {
		return &Runtime{}, nil
	}

	if strings.ContainsRune(b.title, 0) {
		return nil, fmt.Errorf("%w: title contains a NUL byte", ErrInvalidConfiguration)
	}

	drv := b.driver
	if drv == nil {
		drv = headless.New()
	}

	drv.Init(b.width, b.height, b.title)
	if !drv.IsReady() {
		return nil, ErrInitializationFailure
	}

	return &Runtime{driver: drv}, nil
}
