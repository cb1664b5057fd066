package audit

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

// FileRecorder appends events as JSON lines to a log file.
type FileRecorder struct {
	log    *logrus.Logger
	closer io.Closer
}

// NewFileRecorder opens (or creates) the audit log at path in append
// mode.
func NewFileRecorder(path string) (*FileRecorder, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrap(err, "open audit log")
	}
	log := logrus.New()
	log.SetOutput(f)
	log.SetFormatter(&logrus.JSONFormatter{})
	return &FileRecorder{log: log, closer: f}, nil
}

func (r *FileRecorder) Record(event Event) error {
	entry := r.log.WithFields(logrus.Fields(event.Fields)).WithField("action", event.Action)
	entry.Time = event.Time
	switch event.Level {
	case "warn":
		entry.Warn(event.Action)
	case "error":
		entry.Error(event.Action)
	default:
		entry.Info(event.Action)
	}
	return nil
}

func (r *FileRecorder) Close() error {
	return r.closer.Close()
}
