package fp

import "testing"

func TestPortableEnv(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Run("FP_PORTABLE="+tt.value, func(t *testing.T) {
			t.Setenv("FP_PORTABLE", tt.value)
			if got := PortableEnv(); got != tt.want {
				t.Errorf("PortableEnv() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDispatchModes(t *testing.T) {
	savedLevel, savedName, savedFMA := currentLevel, currentName, hasFMA
	defer func() { currentLevel, currentName, hasFMA = savedLevel, savedName, savedFMA }()

	setPortableMode()
	if CurrentLevel() != DispatchPortable || CurrentName() != "portable" || HasFMA() {
		t.Errorf("portable mode: level=%v name=%q fma=%v", CurrentLevel(), CurrentName(), HasFMA())
	}

	setIEEEMode(true)
	if CurrentLevel() != DispatchIEEE754 || CurrentName() != "ieee754+fma" || !HasFMA() {
		t.Errorf("ieee mode: level=%v name=%q fma=%v", CurrentLevel(), CurrentName(), HasFMA())
	}

	setIEEEMode(false)
	if CurrentName() != "ieee754" || HasFMA() {
		t.Errorf("ieee mode without fma: name=%q fma=%v", CurrentName(), HasFMA())
	}
}

func TestDispatchLevelString(t *testing.T) {
	if DispatchPortable.String() != "portable" || DispatchIEEE754.String() != "ieee754" {
		t.Errorf("unexpected names %q %q", DispatchPortable, DispatchIEEE754)
	}
	if DispatchLevel(42).String() != "unknown" {
		t.Errorf("DispatchLevel(42) = %q", DispatchLevel(42))
	}
}
