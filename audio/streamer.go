package audio

// bufferStreamer plays a mono buffer on both channels at a fixed gain
// Implements beep.Streamer
type bufferStreamer struct {
	buf  floatBuffer
	gain float64
	pos  int
}

func newBufferStreamer(buf floatBuffer, gain float64) *bufferStreamer {
	return &bufferStreamer{buf: buf, gain: gain}
}

func (s *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	for n < len(samples) && s.pos < len(s.buf) {
		v := min(max(s.buf[s.pos]*s.gain, -1), 1)
		samples[n][0] = v
		samples[n][1] = v
		n++
		s.pos++
	}
	return n, true
}

func (s *bufferStreamer) Err() error {
	return nil
}
