package kernelexec

import (
	"fmt"

	"github.com/pensaer/geokernel/mathx"
)

func paramRequired(params map[string]interface{}, key string) (interface{}, error) {
	v, ok := params[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingParam, key)
	}
	return v, nil
}

func paramString(params map[string]interface{}, key string) (string, error) {
	v, err := paramRequired(params, key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q must be a string", ErrInvalidParam, key)
	}
	return s, nil
}

func paramFloat64(params map[string]interface{}, key string) (float64, error) {
	v, err := paramRequired(params, key)
	if err != nil {
		return 0, err
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: %q must be a number", ErrInvalidParam, key)
	}
	return f, nil
}

func paramFloat64Default(params map[string]interface{}, key string, def float64) float64 {
	v, ok := params[key]
	if !ok {
		return def
	}
	f, ok := v.(float64)
	if !ok {
		return def
	}
	return f
}

func paramPoint2(params map[string]interface{}, key string) (mathx.Point2, error) {
	v, err := paramRequired(params, key)
	if err != nil {
		return mathx.Point2{}, err
	}
	arr, ok := v.([]interface{})
	if !ok || len(arr) != 2 {
		return mathx.Point2{}, fmt.Errorf("%w: %q must be a [x, y] pair", ErrInvalidParam, key)
	}
	x, ok1 := arr[0].(float64)
	y, ok2 := arr[1].(float64)
	if !ok1 || !ok2 {
		return mathx.Point2{}, fmt.Errorf("%w: %q must be a [x, y] pair of numbers", ErrInvalidParam, key)
	}
	return mathx.Point2{X: x, Y: y}, nil
}
