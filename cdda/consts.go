package cdda

// SampleRate is the number of samples per second. All Redbook audio
// CDs use 44.1KHz.
const SampleRate = 44100

// BytesPerSample is 2 bytes, representing signed 16-bit samples.
const BytesPerSample = 2

// BitsPerSample is the sample depth in bits.
const BitsPerSample = BytesPerSample * 8

// Channels is the number of audio channels in the data. All Redbook
// audio CDs are stereo.
const Channels = 2

// FramesPerSecond is the number of audio frames in one second of audio.
// An audio frame is the smallest valid unit of length for a track, defined
// as 1/75th of a second. Redbook track offsets are specified in MM:SS:FF.
//
// Note that this definition of frame is interchangable with sector.
const FramesPerSecond = 75

// BytesPerSector is the number of bytes of audio contained in one sector
// of CD data, 2352 bytes.
const BytesPerSector = SampleRate * Channels * BytesPerSample / FramesPerSecond

// SubcodeSize is the number of subcode bytes trailing the audio data in
// each raw sector. The 96 bytes carry the eight subcode channels P..W,
// one bit-plane per bit position.
const SubcodeSize = 96

// RawSectorSize is the size of one sector in a raw disk image dumped with
// subcode data, 2448 bytes: the audio payload immediately followed by the
// subcode region.
const RawSectorSize = BytesPerSector + SubcodeSize

// SubcodeP is the bit mask of the P channel within a subcode byte.
// P is the highest bit-plane.
const SubcodeP = 1 << 7

// (samples/second)*(bytes/sample)*(channels)/(bytes/sector) = 75 sectors/sec
const SectorsPerSecond = (SampleRate * Channels * BytesPerSample) / BytesPerSector

// SamplesPerSector is the number of 16-bit samples (counting both channels
// as one sample frame) held in one sector's audio payload.
const SamplesPerSector = BytesPerSector / (Channels * BytesPerSample)
