package text

import (
	"os"
	"sync"
)

// DefaultFontPath is the font Default loads when FontPathEnv is unset.
const DefaultFontPath = "/usr/share/fonts/ttf/noto/NotoMono-Regular.ttf"

// FontPathEnv names the environment variable that overrides DefaultFontPath.
// Its value is a path or a bare font file name (see LocateFont).
const FontPathEnv = "CANVAS_FONT_PATH"

var (
	defaultOnce   sync.Once
	defaultSource *FontSource
)

// Default returns the process-wide default font, loading it on first use.
//
// The font is read at most once. If it cannot be loaded the failure is
// logged at warn level and an empty FontSource is returned for the rest of
// the process: text measures as zero and draws nothing.
func Default() *FontSource {
	defaultOnce.Do(func() {
		defaultSource = loadDefault(defaultFontPath())
	})
	return defaultSource
}

func defaultFontPath() string {
	if p := os.Getenv(FontPathEnv); p != "" {
		return p
	}
	return DefaultFontPath
}

func loadDefault(ref string) *FontSource {
	path, err := LocateFont(ref)
	if err != nil {
		slogger().Warn("text: default font unavailable", "font", ref, "err", err)
		return emptySource()
	}
	s, err := NewFontSourceFromFile(path)
	if err != nil {
		slogger().Warn("text: default font unavailable", "path", path, "err", err)
		return emptySource()
	}
	slogger().Debug("text: default font loaded", "path", path, "name", s.Name())
	return s
}
