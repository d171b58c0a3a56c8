package cmd

import (
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"testing"

	"github.com/spf13/cobra"
)

type flagValues struct {
	orders        []int
	probabilities []float64
	trials        uint
	output        string
}

func newConfigTestCmd(values *flagValues) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().IntSliceVarP(&values.orders, "order", "m", []int{3, 4, 5, 6}, "")
	cmd.Flags().Float64SliceVarP(&values.probabilities, "probability", "p", []float64{0.01}, "")
	cmd.Flags().UintVarP(&values.trials, "trials", "t", 10_000, "")
	cmd.Flags().StringVarP(&values.output, "output", "o", "simulation_results.json", "")
	return cmd
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		config   string
		args     []string
		expected flagValues
		err      bool
	}{
		{
			config:   "order: [3, 5]\nprobability: [0.1, 0.2]\ntrials: 7\n",
			expected: flagValues{[]int{3, 5}, []float64{0.1, 0.2}, 7, "simulation_results.json"},
		},
		{
			config:   "output: sweep.json\n",
			expected: flagValues{[]int{3, 4, 5, 6}, []float64{0.01}, 10_000, "sweep.json"},
		},
		{
			config:   "order: [3, 5]\ntrials: 7\n",
			args:     []string{"--trials", "9", "-m", "4"},
			expected: flagValues{[]int{4}, []float64{0.01}, 9, "simulation_results.json"},
		},
		{
			config: "trials: many\n",
			err:    true,
		},
		{
			config: "order: [three]\n",
			err:    true,
		},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(test.config), 0644); err != nil {
				t.Fatalf("expected no error but found: %v", err)
			}
			configFile = path
			defer func() { configFile = "" }()

			var actual flagValues
			cmd := newConfigTestCmd(&actual)
			if err := cmd.ParseFlags(test.args); err != nil {
				t.Fatalf("expected no error but found: %v", err)
			}

			err := loadConfig(cmd)
			if test.err {
				if err == nil {
					t.Fatalf("expected an error but found %+v", actual)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error but found: %v", err)
			}
			if !reflect.DeepEqual(test.expected, actual) {
				t.Fatalf("expected %+v but found %+v", test.expected, actual)
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	configFile = filepath.Join(t.TempDir(), "missing.yaml")
	defer func() { configFile = "" }()

	var values flagValues
	if err := loadConfig(newConfigTestCmd(&values)); err == nil {
		t.Fatalf("expected an error for a missing config file")
	}
}

func TestLoadConfig_NoFile(t *testing.T) {
	var values flagValues
	if err := loadConfig(newConfigTestCmd(&values)); err != nil {
		t.Fatalf("expected no error but found: %v", err)
	}
	expected := flagValues{[]int{3, 4, 5, 6}, []float64{0.01}, 10_000, "simulation_results.json"}
	if !reflect.DeepEqual(expected, values) {
		t.Fatalf("expected %+v but found %+v", expected, values)
	}
}

func TestConfigValue(t *testing.T) {
	tests := []struct {
		value    interface{}
		expected string
	}{
		{[]interface{}{3, 5}, "3,5"},
		{[]interface{}{0.1, 0.2}, "0.1,0.2"},
		{7, "7"},
		{"fht", "fht"},
		{true, "true"},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual := configValue(test.value)
			if actual != test.expected {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
		})
	}
}
