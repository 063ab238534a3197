package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/tapplan/internal/engine/detector"
)

func TestStable(t *testing.T) {
	tests := []struct {
		name       string
		oldVersion string
		newVersion string
		want       bool
	}{
		{"patch bump", "1.2.3", "1.2.4", true},
		{"minor bump", "1.2.3", "1.3.0", true},
		{"major bump", "1.2.3", "2.0.0", true},
		{"fewer components", "1.2.3", "1.2", false},
		{"more components", "1.2", "1.2.3", false},
		{"numeric becomes alphabetic", "1.2.3", "1.b.3", false},
		{"alphabetic becomes numeric", "1.b.3", "1.2.3", false},
		{"release candidate", "1.2.3", "1.2.3-rc1", false},
		{"alpha", "1.2.3", "2.0.0-alpha.1", false},
		{"beta", "1.2.3", "1.3.0b2", false},
		{"preview", "1.2.3", "1.3.0-preview", false},
		{"date style", "20240101", "20240601", true},
		{"mixed component kept", "2.4p1", "2.4p2", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detector.Stable(tt.oldVersion, tt.newVersion))
		})
	}
}
