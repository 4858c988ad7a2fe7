// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"io"
	"testing"
)

// mockOggReader simulates oggvorbis.Reader: interleaved float32 values.
type mockOggReader struct {
	sampleRate int
	channels   int
	values     []float32
	offset     int
	failRead   bool
}

func (m *mockOggReader) SampleRate() int { return m.sampleRate }
func (m *mockOggReader) Channels() int   { return m.channels }

func (m *mockOggReader) Read(dst []float32) (int, error) {
	if m.failRead {
		return 0, io.ErrUnexpectedEOF
	}
	if m.offset >= len(m.values) {
		return 0, io.EOF
	}

	n := copy(dst, m.values[m.offset:])
	m.offset += n
	return n, nil
}

func TestReadAll_CollectsWholeStream(t *testing.T) {
	t.Parallel()

	mock := &mockOggReader{
		sampleRate: 48000,
		channels:   2,
		values:     []float32{0.1, -0.1, 0.2, -0.2, 0.3, -0.3},
	}

	buf, err := readAll(mock)
	if err != nil {
		t.Fatalf("readAll() error = %v", err)
	}

	if buf.SampleRate() != 48000 {
		t.Errorf("rate = %d, want 48000", buf.SampleRate())
	}
	if buf.Channels() != 2 {
		t.Errorf("channels = %d, want 2", buf.Channels())
	}
	if buf.Frames() != 3 {
		t.Fatalf("frames = %d, want 3", buf.Frames())
	}

	for f := 0; f < 3; f++ {
		want := float32(f+1) * 0.1
		if buf.Sample(0, f) != want || buf.Sample(1, f) != -want {
			t.Errorf("frame %d = (%v, %v), want (%v, %v)",
				f, buf.Sample(0, f), buf.Sample(1, f), want, -want)
		}
	}
}

func TestReadAll_MonoStream(t *testing.T) {
	t.Parallel()

	values := make([]float32, 10000)
	for i := range values {
		values[i] = float32(i) / 10000
	}
	mock := &mockOggReader{sampleRate: 22050, channels: 1, values: values}

	buf, err := readAll(mock)
	if err != nil {
		t.Fatalf("readAll() error = %v", err)
	}
	if buf.Channels() != 1 || buf.Frames() != 10000 {
		t.Errorf("shape = %dx%d, want 1x10000", buf.Channels(), buf.Frames())
	}
}

func TestReadAll_DropsTrailingPartialFrame(t *testing.T) {
	t.Parallel()

	mock := &mockOggReader{
		sampleRate: 48000,
		channels:   2,
		values:     []float32{0.1, 0.2, 0.3},
	}

	buf, err := readAll(mock)
	if err != nil {
		t.Fatalf("readAll() error = %v", err)
	}
	if buf.Frames() != 1 {
		t.Errorf("frames = %d, want 1 (partial frame dropped)", buf.Frames())
	}
}

func TestReadAll_PropagatesReadErrors(t *testing.T) {
	t.Parallel()

	mock := &mockOggReader{sampleRate: 48000, channels: 2, failRead: true}

	if _, err := readAll(mock); err == nil {
		t.Fatal("readAll() succeeded, want read error")
	}
}

func TestDecode_RejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("not an ogg stream")))
	if err == nil {
		t.Fatal("Decode() succeeded on garbage input")
	}
}
