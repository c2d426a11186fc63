package dynamo

import "fmt"

// Init names an initial placement of mass on the ring.
type Init string

const (
	InitCenter   Init = "center"
	InitUniform  Init = "uniform"
	InitGaussian Init = "gaussian"
)

func ParseInit(s string) (Init, error) {
	switch Init(s) {
	case InitCenter, InitUniform, InitGaussian:
		return Init(s), nil
	case "":
		return InitCenter, nil
	}
	return "", fmt.Errorf("unknown init %q (want center, uniform or gaussian): %w", s, ErrParameterBounds)
}
