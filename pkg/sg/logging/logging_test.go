package logging

import (
	"bytes"
	"errors"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/komsit37/sg/pkg/sg/source"
	"github.com/komsit37/sg/pkg/sg/view"
)

func TestPlainFormatter(t *testing.T) {
	entry := &log.Entry{
		Time:    time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC),
		Level:   log.InfoLevel,
		Message: "hello",
		Data:    log.Fields{"b": 2, "a": "x"},
	}
	out, err := NewPlainFormatter().Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "INFO  2026-10-15 08:00:00 hello a=x b=2\n", string(out))

	entry.Level = log.TraceLevel
	entry.Data = nil
	out, err = NewPlainFormatter().Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "TRACE 2026-10-15 08:00:00 hello\n", string(out))
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New("loud", &bytes.Buffer{})
	assert.Error(t, err)
}

func TestObserver(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("debug", &buf)
	require.NoError(t, err)
	obs := Observer(l)

	obs(view.Snapshot{State: view.Analyzing})
	obs(view.Snapshot{State: view.Complete, Results: source.Reference(), Generation: 1})
	obs(view.Snapshot{State: view.Failed, Err: errors.New("boom")})

	out := buf.String()
	assert.Contains(t, out, "view transition state=analyzing")
	assert.Contains(t, out, "analysis committed generation=1 state=complete symbols=NVDA,META,AVGO")
	assert.Contains(t, out, "WARN ")
	assert.Contains(t, out, "error=boom")
}

func TestObserverRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("info", &buf)
	require.NoError(t, err)
	Observer(l)(view.Snapshot{State: view.Analyzing})
	assert.Empty(t, buf.String())
}
