package model

import "testing"

func TestPlotRequest_WithDefaults(t *testing.T) {
	tests := []struct {
		name       string
		components [3]string
		expected   [3]string
	}{
		{"all empty", [3]string{"", "", ""}, [3]string{"y", "-x", "z"}},
		{"whitespace only", [3]string{"  ", "\t", ""}, [3]string{"y", "-x", "z"}},
		{"partial", [3]string{"x*y", "", "1"}, [3]string{"x*y", "-x", "1"}},
		{"all set", [3]string{"1", "2", "3"}, [3]string{"1", "2", "3"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := PlotRequest{System: SystemCartesian, Type: PlotTypeXY, Components: test.components}
			result := req.WithDefaults()
			if result.Components != test.expected {
				t.Errorf("WithDefaults() components = %v, expected %v", result.Components, test.expected)
			}
			if req.Components != test.components {
				t.Errorf("WithDefaults() mutated the receiver: %v", req.Components)
			}
		})
	}
}

func TestPlotRequest_WithDefaults_PerSystem(t *testing.T) {
	req := PlotRequest{System: SystemSpherical, Type: PlotType3D}
	result := req.WithDefaults()
	expected := SystemSpherical.DefaultComponents()

	if result.Components != expected {
		t.Errorf("WithDefaults() components = %v, expected spherical defaults %v", result.Components, expected)
	}
}

func TestPlotRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request PlotRequest
		wantErr bool
	}{
		{"valid cartesian 3D", PlotRequest{System: SystemCartesian, Type: PlotType3D}, false},
		{"valid spherical slice", PlotRequest{System: SystemSpherical, Type: PlotTypeThetaPhi}, false},
		{"unknown system", PlotRequest{System: CoordinateSystem("Polar"), Type: PlotType3D}, true},
		{"type from wrong system", PlotRequest{System: SystemCartesian, Type: PlotTypeRTheta}, true},
		{"empty type", PlotRequest{System: SystemCylindrical}, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.request.Validate()
			if (err != nil) != test.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, test.wantErr)
			}
		})
	}
}
