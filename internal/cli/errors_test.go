package cli

import (
	"errors"
	"testing"
)

func TestExitError_Error(t *testing.T) {
	plain := &ExitError{Code: ExitGeneral, Message: "something failed"}
	if plain.Error() != "something failed" {
		t.Errorf("Error() = %q", plain.Error())
	}

	wrapped := &ExitError{Code: ExitConfig, Message: "loading config", Err: errors.New("no such file")}
	if wrapped.Error() != "loading config: no such file" {
		t.Errorf("Error() = %q", wrapped.Error())
	}
}

func TestExitError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := GeneralError("outer", inner)
	if !errors.Is(err, inner) {
		t.Error("ExitError should unwrap to its cause")
	}
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		code int
	}{
		{"config", ConfigError("m", nil), ExitConfig},
		{"snapshot parse", SnapshotParseError("m", nil), ExitSnapshotParse},
		{"db connect", DBConnectError("m", nil), ExitDBConnect},
		{"general", GeneralError("m", nil), ExitGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.code)
			}
		})
	}
}
