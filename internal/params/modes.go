// internal/params/modes.go
package params

import "sort"

// ModeTable maps a pacing mode to the ordered names of the parameters that
// apply to it. The order defines the download payload layout.
// It is static; callers must not mutate the slices.
type ModeTable map[string][]string

// Fields returns the payload field order for mode: "mode" followed by the
// mode's parameters. The returned slice is a copy.
func (t ModeTable) Fields(mode string) ([]string, bool) {
	names, ok := t[mode]
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(names)+1)
	out = append(out, ModeName)
	return append(out, names...), true
}

// ModeNames returns the modes in the table, sorted.
func (t ModeTable) ModeNames() []string {
	out := make([]string, 0, len(t))
	for m := range t {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

// DefaultModes returns the per-mode parameter applicability table
// (PACEMAKER page 28).
func DefaultModes() ModeTable {
	return ModeTable{
		// Pacing off: only the mode byte is sent.
		"Off": {},

		"VOO": {
			"lower_rate_limit",
			"upper_rate_limit",
			"v_pulse_amplitude_unregulated",
			"v_pulse_width",
		},
		"AOO": {
			"lower_rate_limit",
			"upper_rate_limit",
			"a_pulse_amplitude_unregulated",
			"a_pulse_width",
		},
		"VVI": {
			"lower_rate_limit",
			"upper_rate_limit",
			"v_pulse_amplitude_unregulated",
			"v_pulse_width",
			"v_sensitivity",
			"v_refractory_period",
			"hysteresis_rate_limit",
			"rate_smoothing",
		},
		"AAI": {
			"lower_rate_limit",
			"upper_rate_limit",
			"a_pulse_amplitude_unregulated",
			"a_pulse_width",
			"a_sensitivity",
			"a_refractory_period",
			"pvarp",
			"hysteresis_rate_limit",
			"rate_smoothing",
		},
		"AAT": {
			"lower_rate_limit",
			"upper_rate_limit",
			"max_sensor_rate",
			"a_pulse_amplitude_unregulated",
			"a_pulse_width",
			"a_sensitivity",
			"a_refractory_period",
			"pvarp",
		},
		"VVT": {
			"lower_rate_limit",
			"upper_rate_limit",
			"v_pulse_amplitude_unregulated",
			"v_pulse_width",
			"v_sensitivity",
			"v_refractory_period",
		},
		"VDD": {
			"lower_rate_limit",
			"upper_rate_limit",
			"fixed_av_delay",
			"dynamic_av_delay",
			"v_pulse_width",
			"v_sensitivity",
			"v_refractory_period",
			"pvarp_extension",
			"hysteresis_rate_limit",
			"rate_smoothing",
			"atr_mode",
			"atr_duration",
			"atr_fallback_time",
		},
		"DOO": {
			"lower_rate_limit",
			"upper_rate_limit",
			"fixed_av_delay",
			"a_pulse_amplitude_unregulated",
			"v_pulse_amplitude_unregulated",
			"a_pulse_width",
			"v_pulse_width",
		},
		"DDI": {
			"lower_rate_limit",
			"upper_rate_limit",
			"fixed_av_delay",
			"a_pulse_amplitude_unregulated",
			"v_pulse_amplitude_unregulated",
			"a_pulse_width",
			"v_pulse_width",
			"a_sensitivity",
			"v_sensitivity",
			"v_refractory_period",
			"a_refractory_period",
			"pvarp",
		},
		"DDD": {
			"lower_rate_limit",
			"upper_rate_limit",
			"fixed_av_delay",
			"dynamic_av_delay",
			"min_dynamic_av_delay",
			"sensed_av_delay_offset",
			"a_pulse_amplitude_unregulated",
			"v_pulse_amplitude_unregulated",
			"a_pulse_width",
			"v_pulse_width",
			"a_sensitivity",
			"v_sensitivity",
			"v_refractory_period",
			"a_refractory_period",
			"pvarp",
			"pvarp_extension",
			"hysteresis_rate_limit",
			"rate_smoothing",
			"atr_mode",
			"atr_duration",
			"atr_fallback_time",
			"ventricular_blanking",
			"activity_threshold",
		},
		"AOOR": {
			"lower_rate_limit",
			"upper_rate_limit",
			"max_sensor_rate",
			"a_pulse_amplitude_regulated",
			"a_pulse_width",
			"activity_threshold",
			"reaction_time",
			"response_factor",
			"recovery_time",
		},
		"AAIR": {
			"lower_rate_limit",
			"upper_rate_limit",
			"max_sensor_rate",
			"a_pulse_amplitude_regulated",
			"a_pulse_width",
			"a_sensitivity",
			"a_refractory_period",
			"pvarp",
			"hysteresis_rate_limit",
			"rate_smoothing",
			"activity_threshold",
			"reaction_time",
			"response_factor",
			"recovery_time",
		},
		"VOOR": {
			"lower_rate_limit",
			"upper_rate_limit",
			"max_sensor_rate",
			"v_pulse_amplitude_regulated",
			"v_pulse_width",
			"activity_threshold",
			"reaction_time",
			"response_factor",
			"recovery_time",
		},
		"VVIR": {
			"lower_rate_limit",
			"upper_rate_limit",
			"max_sensor_rate",
			"v_pulse_amplitude_regulated",
			"v_pulse_width",
			"v_sensitivity",
			"v_refractory_period",
			"hysteresis_rate_limit",
			"rate_smoothing",
			"activity_threshold",
			"reaction_time",
			"response_factor",
			"recovery_time",
		},
		"VDDR": {
			"lower_rate_limit",
			"upper_rate_limit",
			"max_sensor_rate",
			"fixed_av_delay",
			"dynamic_av_delay",
			"min_dynamic_av_delay",
			"v_pulse_amplitude_regulated",
			"v_pulse_width",
			"v_sensitivity",
			"v_refractory_period",
			"pvarp_extension",
			"rate_smoothing",
			"atr_mode",
			"atr_duration",
			"atr_fallback_time",
			"ventricular_blanking",
			"activity_threshold",
			"reaction_time",
			"response_factor",
			"recovery_time",
		},
		"DOOR": {
			"lower_rate_limit",
			"upper_rate_limit",
			"max_sensor_rate",
			"fixed_av_delay",
			"a_pulse_amplitude_regulated",
			"min_dynamic_av_delay",
			"v_pulse_amplitude_regulated",
			"a_pulse_width",
			"v_pulse_width",
			"activity_threshold",
			"reaction_time",
			"response_factor",
			"recovery_time",
		},
		"DDIR": {
			"lower_rate_limit",
			"upper_rate_limit",
			"max_sensor_rate",
			"fixed_av_delay",
			"a_pulse_amplitude_regulated",
			"min_dynamic_av_delay",
			"v_pulse_amplitude_regulated",
			"a_pulse_width",
			"v_pulse_width",
			"v_sensitivity",
			"v_refractory_period",
			"a_refractory_period",
			"pvarp",
			"activity_threshold",
			"reaction_time",
			"response_factor",
			"recovery_time",
		},
		"DDDR": {
			"lower_rate_limit",
			"upper_rate_limit",
			"max_sensor_rate",
			"fixed_av_delay",
			"dynamic_av_delay",
			"min_dynamic_av_delay",
			"sensed_av_delay_offset",
			"a_pulse_amplitude_regulated",
			"v_pulse_amplitude_regulated",
			"a_pulse_amplitude_unregulated",
			"v_pulse_amplitude_unregulated",
			"a_pulse_width",
			"v_pulse_width",
			"a_sensitivity",
			"v_sensitivity",
			"v_refractory_period",
			"a_refractory_period",
			"pvarp",
			"pvarp_extension",
			"hysteresis_rate_limit",
			"rate_smoothing",
			"atr_mode",
			"atr_duration",
			"atr_fallback_time",
			"ventricular_blanking",
			"activity_threshold",
			"reaction_time",
			"response_factor",
			"recovery_time",
		},
	}
}
