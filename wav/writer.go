package wav

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/rabidaudio/mdf2wav/cdda"
)

// ErrExists is returned by Create when the destination file already
// exists. Existing files are never overwritten.
var ErrExists = fs.ErrExist

// TrackWriter streams PCM data into a WAV file. The file is created with a
// placeholder header declaring zero payload bytes, so it is well-formed
// even if later writes fail. Finalize rewrites the header with the true
// sizes once all data is known, then closes the file.
type TrackWriter struct {
	f       *os.File
	samples uint32
}

// Create opens path exclusively for writing and writes the placeholder
// header. If the file already exists the error wraps [ErrExists] and
// nothing is written.
func Create(path string) (*TrackWriter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("create %v: %w", path, err)
	}
	if _, err := f.Write(Header(0)); err != nil {
		f.Close()
		return nil, fmt.Errorf("write header %v: %w", path, err)
	}
	return &TrackWriter{f: f}, nil
}

// Write appends PCM payload bytes after the header and accumulates the
// sample count used to patch the header on Finalize.
func (w *TrackWriter) Write(p []byte) (int, error) {
	n, err := w.f.Write(p)
	w.samples += uint32(n) / (cdda.Channels * cdda.BytesPerSample)
	if err != nil {
		return n, fmt.Errorf("write %v: %w", w.f.Name(), err)
	}
	return n, nil
}

// Samples returns the number of sample frames written so far.
func (w *TrackWriter) Samples() uint32 {
	return w.samples
}

// Name returns the path of the underlying file.
func (w *TrackWriter) Name() string {
	return w.f.Name()
}

// Finalize patches the header size fields with the final payload length
// and closes the file. The payload bytes already written are untouched.
func (w *TrackWriter) Finalize() error {
	dataSize := w.samples * cdda.Channels * cdda.BytesPerSample
	if _, err := w.f.Seek(0, io.SeekStart); err != nil {
		w.f.Close()
		return fmt.Errorf("finalize %v: %w", w.f.Name(), err)
	}
	if _, err := w.f.Write(Header(dataSize)); err != nil {
		w.f.Close()
		return fmt.Errorf("finalize %v: %w", w.f.Name(), err)
	}
	return w.f.Close()
}

// ensure interface conformation
var _ io.Writer = (*TrackWriter)(nil)
