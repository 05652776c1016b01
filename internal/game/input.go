package game

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var errInvalidInput = errors.New("enter valid numbers for speed and angle")

// parseLaunch reads the two input fields. Nothing is launched unless both
// parse to finite numbers.
func parseLaunch(speedText, angleText string) (speed, angle float64, err error) {
	speed, err = parseField("speed", speedText)
	if err != nil {
		return 0, 0, err
	}
	angle, err = parseField("angle", angleText)
	if err != nil {
		return 0, 0, err
	}
	return speed, angle, nil
}

func parseField(name, text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, fmt.Errorf("%w: %s is empty", errInvalidInput, name)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", errInvalidInput, name, text)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s %q is not finite", errInvalidInput, name, text)
	}
	return v, nil
}
