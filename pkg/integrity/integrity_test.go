package integrity

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockFileOpener struct {
	OpenFunc func(name string) (io.ReadCloser, error)
}

func (m *mockFileOpener) Open(name string) (io.ReadCloser, error) {
	return m.OpenFunc(name)
}

func opener(content string) *mockFileOpener {
	return &mockFileOpener{OpenFunc: func(string) (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(content)), nil
	}}
}

func openerErr(err error) *mockFileOpener {
	return &mockFileOpener{OpenFunc: func(string) (io.ReadCloser, error) { return nil, err }}
}

// Digests of the empty input, fixed by the respective specifications.
const (
	emptySHA256 = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	emptyBLAKE3 = "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262"
)

const testContentSHA256 = "6ae8a75555209fd6c44157c0aed8016e763ff435a19cf186f76863140143ff72"

func TestVerify_SHA256(t *testing.T) {
	err := Verify("lib.so", testContentSHA256, AlgorithmSHA256, opener("test content"))
	assert.NoError(t, err)
}

func TestVerify_EmptyInputVectors(t *testing.T) {
	tests := []struct {
		name     string
		algo     Algorithm
		expected string
	}{
		{"sha256", AlgorithmSHA256, emptySHA256},
		{"blake3", AlgorithmBLAKE3, emptyBLAKE3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, Verify("lib.so", tt.expected, tt.algo, opener("")))
		})
	}
}

func TestVerify_DefaultsToSHA256(t *testing.T) {
	err := Verify("lib.so", testContentSHA256, "", opener("test content"))
	assert.NoError(t, err)
}

func TestVerify_Mismatch(t *testing.T) {
	wrong := strings.Repeat("0", 64)

	err := Verify("lib.so", wrong, AlgorithmSHA256, opener("test content"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "checksum mismatch")
}

func TestVerify_UppercaseHexAccepted(t *testing.T) {
	err := Verify("lib.so", strings.ToUpper(testContentSHA256), AlgorithmSHA256, opener("test content"))
	assert.NoError(t, err)
}

func TestVerify_InvalidExpectedChecksum(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"not hex", strings.Repeat("z", 64)},
		{"too short", "abcd"},
		{"too long", strings.Repeat("a", 65)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Verify("lib.so", tt.expected, AlgorithmSHA256, opener("test content"))
			assert.Error(t, err)
		})
	}
}

func TestVerify_UnsupportedAlgorithm(t *testing.T) {
	err := Verify("lib.so", testContentSHA256, Algorithm("md5"), opener("test content"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported checksum algorithm")
}

func TestVerify_OpenError(t *testing.T) {
	openErr := errors.New("permission denied")

	err := Verify("lib.so", testContentSHA256, AlgorithmSHA256, openerErr(openErr))

	require.Error(t, err)
	assert.ErrorIs(t, err, openErr)
}

func TestFileDigest_BLAKE3RoundTrip(t *testing.T) {
	digest, err := FileDigest("lib.so", AlgorithmBLAKE3, opener("binding library bytes"))
	require.NoError(t, err)
	require.Len(t, digest, 64)

	assert.NoError(t, Verify("lib.so", digest, AlgorithmBLAKE3, opener("binding library bytes")))
}
