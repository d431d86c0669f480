package nbody

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
)

// SnapshotSink receives the state of the system during Integrate
type SnapshotSink interface {
	OnStart(totalSteps int, snapEvery int) error
	OnSnapshot(tDays float64, bodies []Body) error
	OnEnd(finalTDays float64) error
	Close() error
}

// JSONLSnapshotWriter writes one JSON object per snapshot
type JSONLSnapshotWriter struct {
	c  io.Closer
	bw *bufio.Writer
}

type jsonlSnapshot struct {
	TimeDays float64 `json:"time_days"`
	Bodies   []Body  `json:"bodies"`
}

// NewJSONLSnapshotWriter creates (or truncates) path
func NewJSONLSnapshotWriter(path string) (*JSONLSnapshotWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return NewJSONLWriter(f), nil
}

// NewJSONLWriter wraps w. Close closes w if it is an io.Closer.
func NewJSONLWriter(w io.Writer) *JSONLSnapshotWriter {
	c, _ := w.(io.Closer)
	return &JSONLSnapshotWriter{c: c, bw: bufio.NewWriter(w)}
}

func (w *JSONLSnapshotWriter) OnStart(totalSteps int, snapEvery int) error { return nil }

func (w *JSONLSnapshotWriter) OnSnapshot(tDays float64, bodies []Body) error {
	b, err := json.Marshal(jsonlSnapshot{TimeDays: tDays, Bodies: bodies})
	if err != nil {
		return err
	}
	if _, err := w.bw.Write(b); err != nil {
		return err
	}
	return w.bw.WriteByte('\n')
}

func (w *JSONLSnapshotWriter) OnEnd(finalTDays float64) error { return w.bw.Flush() }

func (w *JSONLSnapshotWriter) Close() error {
	if err := w.bw.Flush(); err != nil {
		return err
	}
	if w.c != nil {
		return w.c.Close()
	}
	return nil
}
