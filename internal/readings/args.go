package readings

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseArgs parses command-line arguments as temperatures.
// A single argument may hold several readings separated by commas.
func ParseArgs(args []string) ([]float64, error) {
	temps := make([]float64, 0, len(args))
	for i, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("argument %d: invalid temperature %q", i+1, field)
			}
			temps = append(temps, val)
		}
	}
	return temps, nil
}
