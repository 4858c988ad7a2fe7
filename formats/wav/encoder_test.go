// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/ik5/audedit/audio"
	"github.com/ik5/audedit/internal/audiotest"
)

func buffer(t *testing.T, rate int, channels [][]float32) *audio.Buffer {
	t.Helper()

	buf, err := audio.FromChannels(rate, channels)
	if err != nil {
		t.Fatalf("building test buffer: %v", err)
	}
	return buf
}

func TestEncode_ContainerLayout(t *testing.T) {
	t.Parallel()

	// 44100 Hz, 2 channels, 100 frames: 44 + 100*2*2 bytes in total.
	buf := buffer(t, 44100, audiotest.Silent(2, 100))

	out := new(bytes.Buffer)
	if err := Encode(out, buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	if out.Len() != 444 {
		t.Fatalf("container size = %d, want 444", out.Len())
	}

	data := out.Bytes()
	if string(data[0:4]) != "RIFF" {
		t.Errorf("chunk id = %q, want \"RIFF\"", string(data[0:4]))
	}
	if got := binary.LittleEndian.Uint32(data[4:8]); got != 436 {
		t.Errorf("total size = %d, want 436", got)
	}
	if string(data[8:12]) != "WAVE" {
		t.Errorf("format = %q, want \"WAVE\"", string(data[8:12]))
	}
	if string(data[12:16]) != "fmt " {
		t.Errorf("subchunk1 id = %q, want \"fmt \"", string(data[12:16]))
	}
	if got := binary.LittleEndian.Uint32(data[16:20]); got != 16 {
		t.Errorf("subchunk1 size = %d, want 16", got)
	}
	if got := binary.LittleEndian.Uint16(data[20:22]); got != 1 {
		t.Errorf("audio format = %d, want 1 (integer PCM)", got)
	}
	if got := binary.LittleEndian.Uint16(data[22:24]); got != 2 {
		t.Errorf("channel count = %d, want 2", got)
	}
	if got := binary.LittleEndian.Uint32(data[24:28]); got != 44100 {
		t.Errorf("sample rate = %d, want 44100", got)
	}
	if got := binary.LittleEndian.Uint32(data[28:32]); got != 176400 {
		t.Errorf("byte rate = %d, want 176400", got)
	}
	if got := binary.LittleEndian.Uint16(data[32:34]); got != 4 {
		t.Errorf("block align = %d, want 4", got)
	}
	if got := binary.LittleEndian.Uint16(data[34:36]); got != 16 {
		t.Errorf("bits per sample = %d, want 16", got)
	}
	if string(data[36:40]) != "data" {
		t.Errorf("subchunk2 id = %q, want \"data\"", string(data[36:40]))
	}
	if got := binary.LittleEndian.Uint32(data[40:44]); got != 400 {
		t.Errorf("data size = %d, want 400", got)
	}
}

func TestEncode_HeaderOnlyForEmptyBuffer(t *testing.T) {
	t.Parallel()

	buf := buffer(t, 8000, [][]float32{{}})

	out := new(bytes.Buffer)
	if err := Encode(out, buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if out.Len() != 44 {
		t.Errorf("container size = %d, want 44 (header only)", out.Len())
	}
	if got := binary.LittleEndian.Uint32(out.Bytes()[40:44]); got != 0 {
		t.Errorf("data size = %d, want 0", got)
	}
}

func sampleAt(data []byte, index int) int16 {
	return int16(binary.LittleEndian.Uint16(data[44+index*2 : 46+index*2]))
}

func TestEncode_SymmetricQuantization(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float32
		want int16
	}{
		{0, 0},
		{1, 32767},
		{-1, -32768},
		{0.5, 16383},
		{-0.5, -16384},
	}

	samples := make([]float32, len(tests))
	for i, tt := range tests {
		samples[i] = tt.in
	}
	buf := buffer(t, 8000, [][]float32{samples})

	out := new(bytes.Buffer)
	if err := Encode(out, buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	for i, tt := range tests {
		if got := sampleAt(out.Bytes(), i); got != tt.want {
			t.Errorf("sample %v quantized to %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestEncode_ClampsOutOfRangeSamples(t *testing.T) {
	t.Parallel()

	buf := buffer(t, 8000, [][]float32{{2.0, -2.0, 100, -100}})

	out := new(bytes.Buffer)
	if err := Encode(out, buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	wants := []int16{32767, -32768, 32767, -32768}
	for i, want := range wants {
		if got := sampleAt(out.Bytes(), i); got != want {
			t.Errorf("sample %d = %d, want %d (clamped)", i, got, want)
		}
	}
}

func TestEncode_InterleavesChannelOrder(t *testing.T) {
	t.Parallel()

	left := []float32{0.5, 0.5}
	right := []float32{-0.5, -0.5}
	buf := buffer(t, 8000, [][]float32{left, right})

	out := new(bytes.Buffer)
	if err := Encode(out, buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	wants := []int16{16383, -16384, 16383, -16384}
	for i, want := range wants {
		if got := sampleAt(out.Bytes(), i); got != want {
			t.Errorf("interleaved sample %d = %d, want %d", i, got, want)
		}
	}
}

func TestBytes_MatchesEncode(t *testing.T) {
	t.Parallel()

	buf := buffer(t, 8000, audiotest.Sine(8000, 2, 100, 440))

	out := new(bytes.Buffer)
	if err := Encode(out, buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	if !bytes.Equal(Bytes(buf), out.Bytes()) {
		t.Error("Bytes() and Encode() produced different containers")
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	src := buffer(t, 44100, audiotest.Sine(44100, 2, 1000, 440))

	encoded := Bytes(src)
	decoded, err := Decoder{}.Decode(bytes.NewReader(encoded))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if decoded.SampleRate() != 44100 {
		t.Errorf("rate = %d, want 44100", decoded.SampleRate())
	}
	if decoded.Channels() != 2 {
		t.Errorf("channels = %d, want 2", decoded.Channels())
	}
	if decoded.Frames() != 1000 {
		t.Fatalf("frames = %d, want 1000", decoded.Frames())
	}

	// One quantization step of headroom.
	const tolerance = 2.0 / 32768.0
	for ch := 0; ch < 2; ch++ {
		for f := 0; f < 1000; f++ {
			got := float64(decoded.Sample(ch, f))
			want := float64(src.Sample(ch, f))
			if math.Abs(got-want) > tolerance {
				t.Fatalf("sample [%d][%d] = %v, want %v within %v", ch, f, got, want, tolerance)
			}
		}
	}
}

func TestDecode_RejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("definitely not a wav file")))
	if err == nil {
		t.Fatal("Decode() succeeded on garbage input")
	}
}

func BenchmarkEncode(b *testing.B) {
	buf, err := audio.FromChannels(44100, audiotest.Sine(44100, 2, 44100*10, 440))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if err := Encode(io.Discard, buf); err != nil {
			b.Fatal(err)
		}
	}
}
