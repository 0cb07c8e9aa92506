// Package vfs packs finalized track WAV files into an MBR-partitioned
// FAT32 disk image, suitable for car stereos and other appliances that
// expect a FAT volume of TRACKXX.WAV files.
package vfs

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/diskfs/go-diskfs"
	"github.com/diskfs/go-diskfs/disk"
	"github.com/diskfs/go-diskfs/filesystem"
	"github.com/diskfs/go-diskfs/filesystem/fat32"
	"github.com/diskfs/go-diskfs/partition/mbr"
)

const SECTOR_SIZE = 512
const START = 2048

// MinImageSize is the smallest image we will build. FAT32 needs a
// minimum cluster count, so tiny images are padded up to this.
const MinImageSize = 64 * fat32.MB

// slack for the partition table, FATs and directory entries
const overhead = 16 * fat32.MB

// Image is a FAT32 disk image under construction.
type Image struct {
	filesystem.FileSystem
	Path string
}

// sanitizeLabel converts a volume label to DOS format by uppercasing,
// limiting to ASCII letters, and trimming to 11 chars
func sanitizeLabel(label string) string {
	// https://en.wikipedia.org/wiki/8.3_filename
	newLabel := make([]rune, 0, 11)
	for _, r := range strings.ToUpper(label) {
		if len(newLabel) == 11 {
			break
		}
		if r >= 'A' && r <= 'Z' {
			newLabel = append(newLabel, r)
		}
	}
	return string(newLabel)
}

// Create builds an empty image at path with a single FAT32 partition.
// sizeBytes is rounded up to a sector multiple and padded to MinImageSize.
// Be sure to Close() the Image after use.
func Create(path, label string, sizeBytes int64) (*Image, error) {
	size := sizeBytes + overhead
	if size < MinImageSize {
		size = MinImageSize
	}
	size += SECTOR_SIZE - (size % SECTOR_SIZE)

	dsk, err := diskfs.Create(path, size, diskfs.SectorSizeDefault)
	if err != nil {
		return nil, err
	}

	// create an MBR with one partition
	table := &mbr.Table{
		LogicalSectorSize:  SECTOR_SIZE,
		PhysicalSectorSize: SECTOR_SIZE,
		Partitions: []*mbr.Partition{
			{
				Bootable: false,
				Type:     mbr.Fat32LBA,
				Start:    START,
				Size:     uint32(size/SECTOR_SIZE) - START,
			},
		},
	}
	err = dsk.Partition(table)
	if err != nil {
		defer os.Remove(path)
		return nil, err
	}
	// Create a FAT32 filesystem
	fatfs, err := dsk.CreateFilesystem(disk.FilesystemSpec{
		Partition:   1,
		FSType:      filesystem.TypeFat32,
		VolumeLabel: sanitizeLabel(label),
	})
	if err != nil {
		defer os.Remove(path)
		return nil, err
	}

	return &Image{FileSystem: fatfs, Path: path}, nil
}

// AddTrack copies the WAV file at wavPath into the image as
// /TRACKXX.WAV, where XX is the 1-based track index.
func (img *Image) AddTrack(track int, wavPath string) error {
	src, err := os.Open(wavPath)
	if err != nil {
		return err
	}
	defer src.Close() // ignore error: file was opened read-only.

	fname := fmt.Sprintf("/TRACK%02d.WAV", track)
	dst, err := img.OpenFile(fname, os.O_CREATE|os.O_RDWR)
	if err != nil {
		return fmt.Errorf("create track %v: %w", fname, err)
	}
	_, err = io.Copy(dst, src)
	if err != nil {
		return fmt.Errorf("copy track %v: %w", fname, err)
	}
	return nil
}

func (img *Image) Close() error {
	return img.FileSystem.Close()
}

// Pack builds an image at path containing the given WAV files in order,
// sized to fit their contents.
func Pack(path, label string, wavs []string) error {
	var total int64
	for _, w := range wavs {
		stat, err := os.Stat(w)
		if err != nil {
			return err
		}
		total += stat.Size()
	}

	img, err := Create(path, label, total)
	if err != nil {
		return err
	}
	for i, w := range wavs {
		if err := img.AddTrack(i+1, w); err != nil {
			img.Close()
			return err
		}
	}
	return img.Close()
}
