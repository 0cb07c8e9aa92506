// Package wav writes RIFF/WAVE PCM container files for CD audio data.
//
// The 44-byte canonical header is fully determined by the audio format
// constants in package cdda except for its two size fields, which depend
// on the payload length. [Header] is a pure function from payload length
// to header bytes; [TrackWriter] handles the two-phase write: a zero-size
// placeholder at creation, patched with the final sizes on Finalize.
package wav

import (
	"encoding/binary"

	"github.com/rabidaudio/mdf2wav/cdda"
)

// HeaderSize is the size of the canonical RIFF/WAVE PCM header.
const HeaderSize = 44

const (
	pcmFormat     = 1  // linear PCM
	subchunk1Size = 16 // fmt chunk size for PCM
)

// Header returns the 44-byte header for a PCM file whose data chunk holds
// dataSize payload bytes. Fields are little-endian. The overall RIFF chunk
// size is the data size plus the 36 header bytes that follow the first two
// fields.
func Header(dataSize uint32) []byte {
	const blockAlign = cdda.Channels * cdda.BytesPerSample
	const byteRate = cdda.SampleRate * blockAlign

	b := make([]byte, HeaderSize)
	copy(b[0:4], "RIFF")
	binary.LittleEndian.PutUint32(b[4:8], 36+dataSize)
	copy(b[8:12], "WAVE")
	copy(b[12:16], "fmt ")
	binary.LittleEndian.PutUint32(b[16:20], subchunk1Size)
	binary.LittleEndian.PutUint16(b[20:22], pcmFormat)
	binary.LittleEndian.PutUint16(b[22:24], cdda.Channels)
	binary.LittleEndian.PutUint32(b[24:28], cdda.SampleRate)
	binary.LittleEndian.PutUint32(b[28:32], byteRate)
	binary.LittleEndian.PutUint16(b[32:34], blockAlign)
	binary.LittleEndian.PutUint16(b[34:36], cdda.BitsPerSample)
	copy(b[36:40], "data")
	binary.LittleEndian.PutUint32(b[40:44], dataSize)
	return b
}

// DataSize reads back the data chunk size field from a header.
func DataSize(header []byte) uint32 {
	return binary.LittleEndian.Uint32(header[40:44])
}

// ChunkSize reads back the overall RIFF chunk size field from a header.
func ChunkSize(header []byte) uint32 {
	return binary.LittleEndian.Uint32(header[4:8])
}
