// mdf2wav converts a raw CD-DA disk image with subchannel data into one
// WAV file per track, using the subcode P channel to find track
// boundaries.
//
// Each output file is named track_XX.wav, where XX is the track number
// starting from 01:
//
//	mdf2wav < disk.mdf
package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rabidaudio/mdf2wav/demux"
	"github.com/rabidaudio/mdf2wav/vfs"
)

func main() {
	var (
		in      string
		out     string
		image   string
		label   string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "mdf2wav",
		Short: "split a raw CD-DA image with subcode data into WAV tracks",
		Long: `mdf2wav reads a raw CD-DA (Red Book) disk image with subchannel data
and writes one WAV file per track, named track_XX.wav. Track boundaries
are detected from the subcode P channel. Existing files are never
overwritten.

The image is read from stdin unless --in is given.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}

			var r io.Reader = os.Stdin
			if in != "" {
				f, err := os.Open(in)
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			d := demux.Demuxer{Dir: out}
			tracks, err := d.Run(r)
			if err != nil {
				return err
			}
			log.WithField("tracks", len(tracks)).Info("done")

			if image == "" {
				return nil
			}
			wavs := make([]string, len(tracks))
			for i, t := range tracks {
				wavs[i] = t.Name
			}
			return vfs.Pack(image, label, wavs)
		},
	}

	cmd.Flags().StringVarP(&in, "in", "i", "", "disk image file (default stdin)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "destination directory for track files")
	cmd.Flags().StringVar(&image, "image", "", "also pack the tracks into a FAT32 disk image at this path")
	cmd.Flags().StringVar(&label, "label", "MDFWAV", "volume label for the FAT32 image")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "mdf2wav: %v\n", err)
		os.Exit(1)
	}
}
