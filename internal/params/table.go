// internal/params/table.go
package params

import "errors"

// Modes lists the programmable pacing modes in wire (index) order.
var Modes = []string{
	"Off", "DDD", "VDD", "DDI", "DOO", "AOO", "AAI",
	"VOO", "VVI", "AAT", "VVT", "DDDR", "VDDR",
	"DDIR", "DOOR", "AOOR", "AAIR", "VOOR", "VVIR",
}

var (
	offOn    = []string{"Off", "On"}
	activity = []string{"V-Low", "Low", "Med-Low", "Med", "Med-High", "High", "V-High"}
)

// Default builds the pacemaker programmable-parameter table
// (PACEMAKER Appendix A, programmable values, increments and nominals).
// Any error means the table itself is malformed.
func Default() (*Registry, error) {
	var b tableBuilder

	b.enum("mode", Modes, "DDD")

	b.numeric("lower_rate_limit", "ppm", Int(60),
		Range(30, 50, 5), Range(51, 90, 1), Range(95, 175, 5))
	b.numeric("upper_rate_limit", "ppm", Int(120), Range(50, 175, 5))
	b.numeric("max_sensor_rate", "ppm", Int(120), Range(50, 175, 5))

	b.numeric("fixed_av_delay", "ms", Int(150), Range(70, 300, 10))
	b.enum("dynamic_av_delay", offOn, "Off")
	b.numeric("min_dynamic_av_delay", "ms", Int(50), Range(30, 100, 10))
	b.numeric("sensed_av_delay_offset", "ms", Off, Absent(), Range(-100, -10, 10))

	b.numeric("a_pulse_amplitude_regulated", "mV", Int(3500),
		Absent(), Range(500, 3200, 100), Range(3500, 7000, 500))
	b.numeric("v_pulse_amplitude_regulated", "mV", Int(3500),
		Absent(), Range(500, 3200, 100), Range(3500, 7000, 500))
	b.numeric("a_pulse_amplitude_unregulated", "mV", Int(3750), Absent(), Range(1250, 5000, 1250))
	b.numeric("v_pulse_amplitude_unregulated", "mV", Int(3750), Absent(), Range(1250, 5000, 1250))

	b.numeric("a_pulse_width", "us", Int(400), Discrete(50), Range(100, 1900, 100))
	b.numeric("v_pulse_width", "us", Int(400), Discrete(50), Range(100, 1900, 100))

	b.numeric("a_sensitivity", "uV", Int(750),
		Discrete(250), Discrete(500), Discrete(750), Range(1000, 10000, 500))
	b.numeric("v_sensitivity", "uV", Int(2500),
		Discrete(250), Discrete(500), Discrete(750), Range(1000, 10000, 500))

	b.numeric("v_refractory_period", "ms", Int(320), Range(150, 500, 10))
	b.numeric("a_refractory_period", "ms", Int(250), Range(150, 500, 10))
	b.numeric("pvarp", "ms", Int(250), Range(150, 500, 10))
	b.numeric("pvarp_extension", "ms", Off, Absent(), Range(50, 400, 50))

	b.numeric("hysteresis_rate_limit", "ppm", Off,
		Absent(), Range(30, 50, 5), Range(51, 90, 1), Range(95, 175, 5))
	b.numeric("rate_smoothing", "%", Off, Absent(), Range(3, 21, 3), Discrete(25))

	b.enum("atr_mode", offOn, "Off")
	b.numeric("atr_duration", "cc", Int(20),
		Discrete(10), Range(20, 80, 20), Range(100, 2000, 100))
	b.numeric("atr_fallback_time", "min", Int(1), Range(1, 5, 1))
	b.numeric("ventricular_blanking", "ms", Int(40), Range(30, 60, 10))

	b.enum("activity_threshold", activity, "Med")
	b.numeric("reaction_time", "sec", Int(30), Range(10, 50, 10))
	b.numeric("response_factor", "", Int(8), Range(1, 16, 1))
	b.numeric("recovery_time", "min", Int(5), Range(2, 16, 1))

	return b.build()
}

// tableBuilder collects parameters and every construction error.
type tableBuilder struct {
	params []Parameter
	errs   []error
}

func (b *tableBuilder) numeric(name, unit string, nominal Value, ds ...Descriptor) {
	p, err := NewNumeric(NumericSpec{Name: name, Unit: unit, Descriptors: ds, Nominal: nominal})
	if err != nil {
		b.errs = append(b.errs, err)
		return
	}
	b.params = append(b.params, p)
}

func (b *tableBuilder) enum(name string, values []string, nominal string) {
	p, err := NewEnum(EnumSpec{Name: name, Values: values, Nominal: nominal})
	if err != nil {
		b.errs = append(b.errs, err)
		return
	}
	b.params = append(b.params, p)
}

func (b *tableBuilder) build() (*Registry, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	return NewRegistry(b.params...)
}
