package logging

import (
	"fmt"
	"io"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/komsit37/sg/pkg/sg/view"
)

// PlainFormatter writes "LEVEL timestamp message k=v ..." lines.
type PlainFormatter struct {
	TimestampFormat string
	LevelDesc       []string
}

// NewPlainFormatter returns the formatter used by New.
func NewPlainFormatter() *PlainFormatter {
	return &PlainFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		LevelDesc:       []string{"PANIC", "FATAL", "ERROR", "WARN ", "INFO ", "DEBUG", "TRACE"},
	}
}

func (f PlainFormatter) Format(entry *log.Entry) ([]byte, error) {
	level := strings.ToUpper(entry.Level.String())
	if int(entry.Level) < len(f.LevelDesc) {
		level = f.LevelDesc[entry.Level]
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s", level, entry.Time.Format(f.TimestampFormat), entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// New builds a logger writing to out at the named level.
func New(level string, out io.Writer) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	l := log.New()
	l.SetOutput(out)
	l.SetFormatter(NewPlainFormatter())
	l.SetLevel(lvl)
	return l, nil
}

// Observer returns a view observer that logs every transition.
func Observer(logger log.FieldLogger) func(view.Snapshot) {
	return func(s view.Snapshot) {
		entry := logger.WithField("state", s.State.String())
		switch s.State {
		case view.Failed:
			entry.WithError(s.Err).Warnln("analysis failed")
		case view.Complete:
			entry.WithField("generation", s.Generation).
				WithField("symbols", strings.Join(s.Results.Symbols(), ",")).
				Debugln("analysis committed")
		default:
			entry.Debugln("view transition")
		}
	}
}
