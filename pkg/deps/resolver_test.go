package deps

import (
	"context"
	"errors"
	"testing"
)

func TestRegistriesLookup(t *testing.T) {
	regs := Registries{
		EcosystemNPM: ResolverFunc(func(_ context.Context, name string) (string, error) {
			if name == "react" {
				return "18.3.1", nil
			}
			return "", errors.New("not found")
		}),
		EcosystemPyPI: ResolverFunc(func(context.Context, string) (string, error) {
			return "  ", nil
		}),
	}
	ctx := context.Background()

	tests := []struct {
		name    string
		eco     Ecosystem
		want    string
		wantErr bool
	}{
		{"react", EcosystemNPM, "18.3.1", false},
		{"left-pad", EcosystemNPM, UnknownVersion, true},
		{"flask", EcosystemPyPI, UnknownVersion, true},
		{"guava", EcosystemMaven, UnknownVersion, true},
	}

	for _, tt := range tests {
		got, err := regs.Lookup(ctx, tt.name, tt.eco)
		if (err != nil) != tt.wantErr {
			t.Errorf("Lookup(%s, %s) error = %v, wantErr %v", tt.name, tt.eco, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("Lookup(%s, %s) = %q, want %q", tt.name, tt.eco, got, tt.want)
		}
	}
}
