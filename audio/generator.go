package audio

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/plug-n-chug/core"
	"github.com/lixenwraith/plug-n-chug/parameter"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveSaw
	waveNoise
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// oscillator generates raw waveform samples
func oscillator(waveType int, freq float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(parameter.AudioSampleRate)

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		case waveNoise:
			buf[i] = rand.Float64()*2 - 1
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies attack/release envelope in place
func applyEnvelope(buf floatBuffer, attackSec, releaseSec float64) {
	total := len(buf)
	attackSamples := int(attackSec * float64(parameter.AudioSampleRate))
	releaseSamples := int(releaseSec * float64(parameter.AudioSampleRate))

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// mixFloatBuffers adds b into a (in place), extending a if needed
func mixFloatBuffers(a, b floatBuffer, bScale float64) floatBuffer {
	if len(b) > len(a) {
		extended := make(floatBuffer, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * bScale
	}
	return a
}

// concatFloatBuffers appends b to a
func concatFloatBuffers(a, b floatBuffer) floatBuffer {
	result := make(floatBuffer, len(a)+len(b))
	copy(result, a)
	copy(result[len(a):], b)
	return result
}

// durationToSamples converts duration to sample count
func durationToSamples(d float64) int {
	return int(d * float64(parameter.AudioSampleRate))
}

// --- Sound Generators (unity gain) ---

// generatePourSound is a short high blip per drop
func generatePourSound() floatBuffer {
	samples := durationToSamples(parameter.PourSoundDuration.Seconds())
	buf := oscillator(waveSine, parameter.PourSoundFreq, samples)
	applyEnvelope(buf, parameter.PourSoundAttack.Seconds(), parameter.PourSoundRelease.Seconds())
	return buf
}

func generateCupReadySound() floatBuffer {
	samples := durationToSamples(parameter.CupReadySoundDuration.Seconds())
	buf := oscillator(waveNoise, 0, samples)
	applyEnvelope(buf, parameter.CupReadySoundAttack.Seconds(), parameter.CupReadySoundRelease.Seconds())

	// Low knock under the noise
	knock := oscillator(waveSine, 220.0, samples)
	applyEnvelope(knock, parameter.CupReadySoundAttack.Seconds(), parameter.CupReadySoundRelease.Seconds())
	return mixFloatBuffers(buf, knock, 1.0)
}

func generateServedSound() floatBuffer {
	// Note 1: B5 (987.77 Hz)
	n1Samples := durationToSamples(parameter.ServedNote1Duration.Seconds())
	n1 := oscillator(waveSquare, 987.77, n1Samples)
	applyEnvelope(n1, parameter.ServedSoundAttack.Seconds(), parameter.ServedNote1Release.Seconds())

	// Note 2: E6 (1318.51 Hz)
	n2Samples := durationToSamples(parameter.ServedNote2Duration.Seconds())
	n2 := oscillator(waveSquare, 1318.51, n2Samples)
	applyEnvelope(n2, parameter.ServedSoundAttack.Seconds(), parameter.ServedNote2Release.Seconds())

	return concatFloatBuffers(n1, n2)
}

func generateFailedSound() floatBuffer {
	samples := durationToSamples(parameter.FailedSoundDuration.Seconds())
	buf := oscillator(waveSaw, 100.0, samples)
	applyEnvelope(buf, parameter.FailedSoundAttack.Seconds(), parameter.FailedSoundRelease.Seconds())
	return buf
}

func generateGameOverSound() floatBuffer {
	samples := durationToSamples(parameter.GameOverSoundDuration.Seconds())

	// Fundamental A3 (220Hz)
	fund := oscillator(waveSine, 220.0, samples)
	applyEnvelope(fund, parameter.GameOverSoundAttack.Seconds(), parameter.GameOverSoundFundamentalRelease.Seconds())

	// Minor third above
	over := oscillator(waveSine, 261.63, samples)
	applyEnvelope(over, parameter.GameOverSoundAttack.Seconds(), parameter.GameOverSoundOvertoneRelease.Seconds())

	// Mix 70% fundamental + 30% overtone
	return mixFloatBuffers(fund, over, 0.3/0.7)
}

// generateSound dispatches to specific generator
func generateSound(st core.SoundType) floatBuffer {
	switch st {
	case core.SoundPour:
		return generatePourSound()
	case core.SoundCupReady:
		return generateCupReadySound()
	case core.SoundServed:
		return generateServedSound()
	case core.SoundFailed:
		return generateFailedSound()
	case core.SoundGameOver:
		return generateGameOverSound()
	default:
		return nil
	}
}
