// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"fmt"
	"io"
	"os"

	"github.com/ik5/sampletext/formats/wav"
)

// Example_roundTrip writes a mono WAV and reads its sample words back.
func Example_roundTrip() {
	f, err := os.CreateTemp("", "example-*.wav")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	defer os.Remove(f.Name())
	defer f.Close()

	w, _ := wav.NewWriter(f, 16000)
	_ = w.WriteSamples([]int16{100, -100, 200})
	if err := w.Close(); err != nil {
		fmt.Println("Error:", err)
		return
	}

	_, _ = f.Seek(0, io.SeekStart)
	src, err := wav.Decoder{}.Decode(f)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	buf := make([]uint16, 8)
	n, _ := src.ReadSamples(buf)

	fmt.Printf("Sample rate: %d Hz\n", src.SampleRate())
	fmt.Println("Words:", buf[:n])
	// Output:
	// Sample rate: 16000 Hz
	// Words: [100 65436 200]
}
