package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value Value
		want  string
	}{
		{Number(150), "150"},
		{Number(999.5), "999.5"},
		{Number(1234), "1.2K"},
		{Number(45000), "45.0K"},
		{Number(1_500_000), "1.5M"},
		{Number(-2500), "-2,500"},
		{Text("12%"), "12%"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.value))
		})
	}
}

func TestFormatChange(t *testing.T) {
	assert.Equal(t, "+12%", FormatChange(12))
	assert.Equal(t, "0%", FormatChange(0))
	assert.Equal(t, "-3.5%", FormatChange(-3.5))
}
