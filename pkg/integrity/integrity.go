// Package integrity verifies the binding library against the checksum
// recorded in the install manifest.
package integrity

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"

	"github.com/zeebo/blake3"
)

// FileOpener abstracts file access for testability.
type FileOpener interface {
	Open(name string) (io.ReadCloser, error)
}

// RealFileOpener implements FileOpener using the real filesystem.
type RealFileOpener struct{}

func (r *RealFileOpener) Open(name string) (io.ReadCloser, error) {
	return os.Open(name) //nolint:gosec // intentional: hashing the resolved library file
}

// Algorithm identifies a supported checksum algorithm.
type Algorithm string

const (
	AlgorithmSHA256 Algorithm = "sha256"
	AlgorithmBLAKE3 Algorithm = "blake3"
)

// NewHasher returns a hasher for the algorithm.
func (a Algorithm) NewHasher() (hash.Hash, error) {
	switch a {
	case AlgorithmSHA256, "":
		return sha256.New(), nil
	case AlgorithmBLAKE3:
		return blake3.New(), nil
	default:
		return nil, fmt.Errorf("unsupported checksum algorithm %q", a)
	}
}

// hexLength is the expected digest length in hex characters.
// Both sha256 and blake3 produce 32-byte digests.
const hexLength = 64

// Verify hashes the file at path and compares the digest against
// expectedHex. A mismatch is an error carrying both digests.
func Verify(path, expectedHex string, algorithm Algorithm, opener FileOpener) error {
	expectedHex = strings.ToLower(expectedHex)
	if _, err := hex.DecodeString(expectedHex); err != nil {
		return fmt.Errorf("expected checksum is not valid hexadecimal")
	}
	if len(expectedHex) != hexLength {
		return fmt.Errorf("expected checksum has %d characters, want %d", len(expectedHex), hexLength)
	}

	actual, err := FileDigest(path, algorithm, opener)
	if err != nil {
		return err
	}

	if actual != expectedHex {
		return fmt.Errorf("checksum mismatch: expected %s, got %s", expectedHex, actual)
	}
	return nil
}

// FileDigest returns the hex digest of the file at path.
func FileDigest(path string, algorithm Algorithm, opener FileOpener) (string, error) {
	h, err := algorithm.NewHasher()
	if err != nil {
		return "", err
	}

	if opener == nil {
		opener = &RealFileOpener{}
	}
	f, err := opener.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
