package model

import "testing"

func TestCoordinateSystem_Valid(t *testing.T) {
	tests := []struct {
		system   CoordinateSystem
		expected bool
	}{
		{SystemCartesian, true},
		{SystemCylindrical, true},
		{SystemSpherical, true},
		{CoordinateSystem(""), false},
		{CoordinateSystem("Polar"), false},
	}

	for _, test := range tests {
		result := test.system.Valid()
		if result != test.expected {
			t.Errorf("CoordinateSystem(%s).Valid() = %v, expected %v", test.system, result, test.expected)
		}
	}
}

func TestCoordinateSystem_Symbols(t *testing.T) {
	tests := []struct {
		system   CoordinateSystem
		expected [3]string
	}{
		{SystemCartesian, [3]string{"x", "y", "z"}},
		{SystemCylindrical, [3]string{"r", "theta", "z"}},
		{SystemSpherical, [3]string{"r", "theta", "phi"}},
	}

	for _, test := range tests {
		result := test.system.Symbols()
		if result != test.expected {
			t.Errorf("CoordinateSystem(%s).Symbols() = %v, expected %v", test.system, result, test.expected)
		}
	}
}

func TestCoordinateSystem_DefaultComponents(t *testing.T) {
	tests := []struct {
		system   CoordinateSystem
		expected [3]string
	}{
		{SystemCartesian, [3]string{"y", "-x", "z"}},
		{SystemCylindrical, [3]string{"-r*sin(theta)", "r*cos(theta)", "z"}},
		{SystemSpherical, [3]string{"r*sin(theta)*cos(phi)", "r*sin(theta)*sin(phi)", "r*cos(theta)"}},
	}

	for _, test := range tests {
		result := test.system.DefaultComponents()
		if result != test.expected {
			t.Errorf("CoordinateSystem(%s).DefaultComponents() = %v, expected %v", test.system, result, test.expected)
		}
	}
}

func TestCoordinateSystems_Order(t *testing.T) {
	systems := CoordinateSystems()
	expected := []CoordinateSystem{SystemCartesian, SystemCylindrical, SystemSpherical}

	if len(systems) != len(expected) {
		t.Fatalf("CoordinateSystems() returned %d systems, expected %d", len(systems), len(expected))
	}
	for i, cs := range systems {
		if cs != expected[i] {
			t.Errorf("CoordinateSystems()[%d] = %s, expected %s", i, cs, expected[i])
		}
	}
}
