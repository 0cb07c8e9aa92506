// Package cdda models raw CD-DA sectors as they appear in disk images
// dumped with subcode data (e.g. Alcohol 120% .mdf images): 2352 bytes of
// 16-bit stereo PCM followed by 96 bytes of subcode channels.
package cdda

// Sector is one raw 2448-byte sector: the audio payload followed by the
// subcode region. A Sector is only a view over the bytes, it never owns or
// copies them.
type Sector []byte

// Audio returns the 2352-byte PCM payload region of the sector.
func (s Sector) Audio() []byte {
	return s[:BytesPerSector]
}

// Subcode returns the 96-byte subcode region of the sector.
func (s Sector) Subcode() []byte {
	return s[BytesPerSector:RawSectorSize]
}

// IsTrackStart reports whether the sector marks the start of a new track:
// the P channel is set in every subcode byte of the sector.
//
// Real discs encode P as a square wave during pause areas, so a single
// edge or run can also signal a boundary. This stricter all-ones rule is
// what mdf2wav has always shipped with, and it is kept as-is.
func (s Sector) IsTrackStart() bool {
	for _, b := range s.Subcode() {
		if b&SubcodeP == 0 {
			return false
		}
	}
	return true
}
