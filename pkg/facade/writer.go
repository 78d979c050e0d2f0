package facade

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/DonKeyHot1/eclair"
)

// ANSI color codes for terminal output.
const (
	red     = "\x1b[31m"
	green   = "\x1b[32m"
	yellow  = "\x1b[33m"
	blue    = "\x1b[34m"
	magenta = "\x1b[35m"
	boldRed = "\x1b[31;1m"
	reset   = "\x1b[0m"
)

// rootName is printed in place of the empty root logger name.
const rootName = "root"

func defaultLevelColors() map[eclair.Level]string {
	return map[eclair.Level]string{
		eclair.TraceLevel: magenta,
		eclair.DebugLevel: blue,
		eclair.InfoLevel:  green,
		eclair.WarnLevel:  yellow,
		eclair.ErrorLevel: red,
		eclair.FatalLevel: boldRed,
	}
}

// WriterConfig configures a WriterFactory.
type WriterConfig struct {
	// Output receives one line per record. Defaults to os.Stderr.
	Output io.Writer

	// EnableColor colors the level tag when the output is a terminal.
	EnableColor bool

	// ForceTTY keeps colors on even when the output is not a terminal.
	ForceTTY bool

	// LevelColors overrides the default per-level colors.
	LevelColors map[eclair.Level]string

	// TimeFormat stamps records. Defaults to time.RFC3339.
	TimeFormat string

	// DisableTimestamp drops the timestamp column, which keeps test
	// output comparable.
	DisableTimestamp bool
}

// WriterFactory emits plain text lines to a single writer. All facades it
// hands out share one mutex, so concurrent records never interleave.
type WriterFactory struct {
	mu     sync.Mutex
	out    io.Writer
	format string
	stamp  bool
	colors map[eclair.Level]string
}

// Ensure WriterFactory implements eclair.FacadeFactory.
var _ eclair.FacadeFactory = (*WriterFactory)(nil)

// NewWriterFactory creates a text line factory. Colors follow the terminal
// policy: enabled only when requested and the output is a TTY, unless
// ForceTTY overrides the detection.
func NewWriterFactory(config WriterConfig) *WriterFactory {
	out := config.Output
	if out == nil {
		out = os.Stderr
	}

	format := config.TimeFormat
	if format == "" {
		format = time.RFC3339
	}

	var colors map[eclair.Level]string

	if config.EnableColor && (config.ForceTTY || hasTTY(out)) {
		colors = config.LevelColors
		if colors == nil {
			colors = defaultLevelColors()
		}
	}

	return &WriterFactory{
		out:    out,
		format: format,
		stamp:  !config.DisableTimestamp,
		colors: colors,
	}
}

// GetFacade returns a facade labelled with name.
func (f *WriterFactory) GetFacade(name string) eclair.Facade {
	if name == "" {
		name = rootName
	}

	return &writerFacade{factory: f, name: name}
}

func hasTTY(writer io.Writer) bool {
	fder, ok := writer.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	fd := fder.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type writerFacade struct {
	factory *WriterFactory
	name    string
}

// Ensure writerFacade implements eclair.Facade.
var _ eclair.Facade = (*writerFacade)(nil)

func (w *writerFacade) Log(level eclair.Level, message string) {
	w.factory.write(w.name, level, message, nil)
}

func (w *writerFacade) LogError(level eclair.Level, message string, cause error) {
	w.factory.write(w.name, level, message, cause)
}

func (f *WriterFactory) write(name string, level eclair.Level, message string, cause error) {
	if level == eclair.OffLevel {
		return
	}

	var line strings.Builder

	if f.stamp {
		line.WriteString(time.Now().Format(f.format))
		line.WriteByte(' ')
	}

	tag := fmt.Sprintf("%-5s", level.String())
	if color, ok := f.colors[level]; ok {
		tag = color + tag + reset
	}

	line.WriteString(tag)
	line.WriteByte(' ')
	line.WriteString(name)
	line.WriteString(" : ")
	line.WriteString(message)

	if cause != nil {
		line.WriteString(" cause=")
		line.WriteString(cause.Error())
	}

	line.WriteByte('\n')

	f.mu.Lock()
	defer f.mu.Unlock()

	_, _ = io.WriteString(f.out, line.String())
}
