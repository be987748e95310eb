package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	kernCacheLimit int
	kerning        KernMode
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		kernCacheLimit: 1024,
		kerning:        KernTables,
	}
}

// WithKernCacheLimit sets the maximum number of memoised shaped kerning
// pairs. A value of 0 disables the cache limit.
func WithKernCacheLimit(n int) SourceOption {
	return func(c *sourceConfig) {
		c.kernCacheLimit = n
	}
}

// KernMode selects where FontSource takes pair kerning from.
type KernMode uint8

const (
	// KernTables reads the kern table and GPOS pair adjustments directly.
	KernTables KernMode = iota

	// KernShaped shapes every pair with HarfBuzz (go-text/typesetting) and
	// memoises the result. It honours the full GPOS positioning pipeline.
	KernShaped
)

// WithKerning selects the kerning source.
func WithKerning(m KernMode) SourceOption {
	return func(c *sourceConfig) {
		c.kerning = m
	}
}

// DrawOption configures a Draw call.
type DrawOption func(*drawConfig)

// drawConfig holds configuration for Draw.
type drawConfig struct {
	composite Compositing
}

// defaultDrawConfig returns the default draw configuration.
func defaultDrawConfig() drawConfig {
	return drawConfig{
		composite: CompositeOverwrite,
	}
}

// WithComposite selects how glyph coverage is written into the target.
func WithComposite(c Compositing) DrawOption {
	return func(d *drawConfig) {
		d.composite = c
	}
}
