package readings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/tempstats/internal/config"
)

func TestLoadFromReader(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		opts     *Options
		expected []float64
	}{
		{
			name:     "default options",
			data:     "date,temperature\n2024-01-01,3.0\n2024-01-02,-5\n2024-01-03,1\n2024-01-04,5\n",
			expected: []float64{3, -5, 1, 5},
		},
		{
			name:     "missing markers skipped",
			data:     "temperature,station\n1.5,a\nNA,b\n,c\nnull,d\n2.5,e\n",
			expected: []float64{1.5, 2.5},
		},
		{
			name:     "quoted values",
			data:     "temperature\n\"12.25\"\n\"-3\"\n",
			expected: []float64{12.25, -3},
		},
		{
			name:     "single column any header",
			data:     "temp_c\n10\n20\n",
			expected: []float64{10, 20},
		},
		{
			name:     "no header uses first column",
			data:     "10,x\n20,y\n",
			opts:     &Options{Delimiter: ','},
			expected: []float64{10, 20},
		},
		{
			name: "custom delimiter and skipped rows",
			data: "# exported by station 7\ntime;t\n08:00;-1.5\n09:00;0.5\n",
			opts: &Options{
				ValueColumn: "t",
				Delimiter:   ';',
				HasHeader:   true,
				SkipRows:    1,
			},
			expected: []float64{-1.5, 0.5},
		},
		{
			name:     "header only",
			data:     "temperature\n",
			expected: []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			temps, err := LoadFromReader(strings.NewReader(tt.data), tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, temps)
		})
	}
}

func TestLoadFromReader_Errors(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("date,humidity\n2024-01-01,40\n"), nil)
	assert.ErrorIs(t, err, ErrColumnNotFound)

	_, err = LoadFromReader(strings.NewReader("temperature\n1\nwarm\n"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), "warm")

	_, err = LoadFromReader(strings.NewReader(""), nil)
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "temps.csv")
	require.NoError(t, os.WriteFile(path, []byte("temperature\n21.5\n22\n"), 0o644))

	temps, err := Load(path, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []float64{21.5, 22}, temps)

	_, err = Load(filepath.Join(t.TempDir(), "missing.csv"), nil)
	assert.Error(t, err)
}

func TestOptionsFromConfig(t *testing.T) {
	opts := OptionsFromConfig(config.InputConfig{
		ValueColumn: "t",
		Delimiter:   "\t",
		HasHeader:   false,
		SkipRows:    2,
	})

	assert.Equal(t, &Options{ValueColumn: "t", Delimiter: '\t', HasHeader: false, SkipRows: 2}, opts)
}
