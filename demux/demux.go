// Package demux splits a raw CD-DA image with subcode data into one WAV
// file per track.
//
// The demultiplexer consumes a sequential stream of raw 2448-byte sectors,
// watches the subcode P channel for track boundaries, and drives a
// per-track file session: open on a boundary sector, append audio payload,
// patch the header and close on the next boundary or at end of stream.
package demux

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/rabidaudio/mdf2wav/cdda"
	"github.com/rabidaudio/mdf2wav/wav"
)

// TrackSink receives the audio payload of one track. Create a sink, write
// payload bytes to it, then Finalize exactly once.
type TrackSink interface {
	io.Writer
	// Samples reports the number of sample frames written so far.
	Samples() uint32
	// Name identifies the destination, used in diagnostics and errors.
	Name() string
	// Finalize patches the container header with the final payload size
	// and releases the sink.
	Finalize() error
}

// TrackInfo describes one finalized track.
type TrackInfo struct {
	TrackNum    int    // 1-based track index
	Name        string // destination file name
	Samples     uint32 // sample frames written
	StartSector int64  // stream offset of the boundary sector, in sectors
	EndSector   int64  // stream offset one past the last payload sector
}

// DurationSeconds returns the track length in whole seconds, truncated.
func (t TrackInfo) DurationSeconds() int64 {
	return int64(t.Samples) / cdda.SampleRate
}

// Demuxer splits a raw sector stream into per-track WAV files named
// track_XX.wav in Dir (the current directory if empty). The zero value is
// ready to use.
//
// Existing destination files are never overwritten: a name collision
// aborts the run, leaving tracks finalized before it intact on disk.
type Demuxer struct {
	// Dir is the destination directory for track files.
	Dir string
	// Create overrides how track sinks are opened. If nil, tracks are
	// created as exclusive WAV files via [wav.Create].
	Create func(track int) (TrackSink, error)
}

// Run consumes r until exhaustion and returns the finalized tracks in
// order. A short final read is the normal end of the stream. Audio data
// before the first boundary sector is dropped.
func (d *Demuxer) Run(r io.Reader) ([]TrackInfo, error) {
	create := d.Create
	if create == nil {
		create = func(track int) (TrackSink, error) {
			return wav.Create(filepath.Join(d.Dir, TrackName(track)))
		}
	}

	var (
		tracks []TrackInfo
		open   TrackSink // at most one session at a time
		start  int64     // stream offset of the open session, in sectors
		track  int       // 1-based, incremented on every boundary
		offset int64     // running stream offset, in sectors
	)

	finalize := func() error {
		info := TrackInfo{
			TrackNum:    track,
			Name:        open.Name(),
			Samples:     open.Samples(),
			StartSector: start,
			EndSector:   offset,
		}
		if err := open.Finalize(); err != nil {
			return err
		}
		open = nil
		tracks = append(tracks, info)
		log.WithFields(log.Fields{
			"track":        info.TrackNum,
			"duration_s":   info.DurationSeconds(),
			"start_sector": info.StartSector,
			"end_sector":   info.EndSector,
		}).Infof("finalized %v", info.Name)
		return nil
	}

	sectors := cdda.NewSectorReader(r)
	for {
		sector, err := sectors.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return tracks, fmt.Errorf("read sector %d: %w", offset, err)
		}

		if sector.IsTrackStart() {
			track++
			log.WithField("sector", offset).Debugf("track %d boundary", track)
			if open != nil {
				if err := finalize(); err != nil {
					return tracks, err
				}
			}
			open, err = create(track)
			if err != nil {
				if errors.Is(err, fs.ErrExist) {
					return tracks, fmt.Errorf(
						"%v already exists, won't overwrite: %w", TrackName(track), err)
				}
				return tracks, err
			}
			start = offset
		}

		if open != nil {
			if _, err := open.Write(sector.Audio()); err != nil {
				return tracks, err
			}
		}
		offset++
	}

	if open != nil {
		if err := finalize(); err != nil {
			return tracks, err
		}
	}
	return tracks, nil
}

// TrackName returns the destination file name for a 1-based track index,
// e.g. "track_01.wav".
func TrackName(track int) string {
	return fmt.Sprintf("track_%02d.wav", track)
}
