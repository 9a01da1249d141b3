package util

import (
	"fmt"
	"os"
	"syscall"
)

// FileInfo contains the file attributes used to fingerprint a dataset file
// between reloads.
type FileInfo struct {
	ModTime int64  // Last modification time of the file
	Size    int64  // File size in bytes
	Inode   uint64 // Inode number (unique file identifier on Unix-like systems)
}

// GetFileInfo retrieves detailed file information, including inode number.
// Supported on Linux and macOS.
func GetFileInfo(filepath string) (*FileInfo, error) {
	stat, err := os.Stat(filepath)
	if err != nil {
		return nil, err
	}

	sysStat, ok := stat.Sys().(*syscall.Stat_t)
	if !ok {
		return nil, fmt.Errorf("failed to get file system information: %s", filepath)
	}

	return &FileInfo{
		ModTime: stat.ModTime().Unix(),
		Size:    stat.Size(),
		Inode:   sysStat.Ino,
	}, nil
}

// Fingerprint returns a compact identity string for the file state. Two
// identical fingerprints mean the dataset has not changed on disk.
func (f *FileInfo) Fingerprint() string {
	return fmt.Sprintf("%d:%d:%d", f.Inode, f.Size, f.ModTime)
}
