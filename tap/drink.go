package tap

// DrinkInput is a physical pour point
type DrinkInput uint8

const (
	Tap1 DrinkInput = iota
	Tap2
	Tap3
	InputMixer1
	InputMixer2
)

// Inputs lists every pour point in dispense order
var Inputs = [...]DrinkInput{Tap1, Tap2, Tap3, InputMixer1, InputMixer2}

// IsMixer reports whether the input is a mixer inlet rather than a tap nozzle
func (i DrinkInput) IsMixer() bool {
	return i == InputMixer1 || i == InputMixer2
}

// MixerOutput returns the output fed by a mixer inlet
func (i DrinkInput) MixerOutput() (DrinkOutput, bool) {
	switch i {
	case InputMixer1:
		return OutputMixer1, true
	case InputMixer2:
		return OutputMixer2, true
	}
	return 0, false
}

func (i DrinkInput) String() string {
	switch i {
	case Tap1:
		return "Tap1"
	case Tap2:
		return "Tap2"
	case Tap3:
		return "Tap3"
	case InputMixer1:
		return "Mixer1"
	case InputMixer2:
		return "Mixer2"
	default:
		return "Unknown"
	}
}

// DrinkOutput is a logical liquid source
type DrinkOutput uint8

const (
	Color1 DrinkOutput = iota
	Color2
	Color3
	OutputMixer1
	OutputMixer2
)

// Outputs lists every liquid source
var Outputs = [...]DrinkOutput{Color1, Color2, Color3, OutputMixer1, OutputMixer2}

func (o DrinkOutput) String() string {
	switch o {
	case Color1:
		return "Color1"
	case Color2:
		return "Color2"
	case Color3:
		return "Color3"
	case OutputMixer1:
		return "Mixer1"
	case OutputMixer2:
		return "Mixer2"
	default:
		return "Unknown"
	}
}
