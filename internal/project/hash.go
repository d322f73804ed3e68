package project

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
)

// Digest is a SHA-256 content hash; the driver's disk cache keys on it.
type Digest [sha256.Size]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

func (d Digest) IsZero() bool {
	var z Digest
	return d == z
}

// HashBytes hashes in-memory content.
func HashBytes(content []byte) Digest {
	return sha256.Sum256(content)
}

// HashFile hashes a file's content without loading it whole.
func HashFile(path string) (Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return Digest{}, err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return Digest{}, err
	}
	var d Digest
	copy(d[:], h.Sum(nil))
	return d, nil
}
