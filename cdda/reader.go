package cdda

import "io"

// SectorReader reads whole raw sectors from an underlying stream.
//
// A short final read, including a zero-byte one, is the normal end of the
// stream and is reported as io.EOF, never as an error. Trailing bytes of a
// partial sector are discarded.
type SectorReader struct {
	r   io.Reader
	buf [RawSectorSize]byte
}

// NewSectorReader returns a SectorReader over r.
func NewSectorReader(r io.Reader) *SectorReader {
	return &SectorReader{r: r}
}

// Next reads and returns the next raw sector. The returned Sector aliases
// an internal buffer and is only valid until the following call to Next.
func (sr *SectorReader) Next() (Sector, error) {
	_, err := io.ReadFull(sr.r, sr.buf[:])
	if err == io.ErrUnexpectedEOF {
		// partial sector at the end of the image
		return nil, io.EOF
	}
	if err != nil {
		return nil, err
	}
	return Sector(sr.buf[:]), nil
}
