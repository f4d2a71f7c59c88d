package config

import "flag"

// Flags are the command-line overrides. Only flags given explicitly replace
// values from the file or environment.
type Flags struct {
	fs *flag.FlagSet

	path      string
	logLevel  string
	assetsDir string
	debugAddr string
	width     int
	height    int
	tps       int
}

// RegisterFlags defines the configuration flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	defaults := Default()
	f := &Flags{fs: fs}
	fs.StringVar(&f.path, "config", "", "Path to a YAML config file")
	fs.StringVar(&f.logLevel, "loglevel", defaults.LogLevel, "Log level (error, warn, info, debug, trace)")
	fs.StringVar(&f.assetsDir, "assets", defaults.AssetsDir, "Directory holding game assets")
	fs.StringVar(&f.debugAddr, "debug-addr", defaults.DebugAddr, "Listen address of the debug stats server (empty disables it)")
	fs.IntVar(&f.width, "width", defaults.Window.Width, "Window width")
	fs.IntVar(&f.height, "height", defaults.Window.Height, "Window height")
	fs.IntVar(&f.tps, "tps", defaults.Window.TPS, "Ticks per second")
	return f
}

// Path returns the -config flag.
func (f *Flags) Path() string {
	return f.path
}

// Apply copies every flag that was set on the command line into c.
func (f *Flags) Apply(c *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "loglevel":
			c.LogLevel = f.logLevel
		case "assets":
			c.AssetsDir = f.assetsDir
		case "debug-addr":
			c.DebugAddr = f.debugAddr
		case "width":
			c.Window.Width = f.width
		case "height":
			c.Window.Height = f.height
		case "tps":
			c.Window.TPS = f.tps
		}
	})
}
