package numberutils

import "testing"

func TestToFloat64(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  float64
		ok    bool
	}{
		{name: "valid", value: "37.5683", want: 37.5683, ok: true},
		{name: "negative", value: "-0.1278", want: -0.1278, ok: true},
		{name: "integer", value: "42", want: 42, ok: true},
		{name: "empty", value: "", want: 0, ok: false},
		{name: "not a number", value: "seoul", want: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToFloat64(tt.value)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ToFloat64(%q) = (%v, %v), want (%v, %v)", tt.value, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestToFloat64WithDefault(t *testing.T) {
	if got := ToFloat64WithDefault("126.9778", 0); got != 126.9778 {
		t.Errorf("ToFloat64WithDefault valid = %v, want 126.9778", got)
	}
	if got := ToFloat64WithDefault("", 1.5); got != 1.5 {
		t.Errorf("ToFloat64WithDefault empty = %v, want the default", got)
	}
}
