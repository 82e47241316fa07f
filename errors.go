package tuntap

import (
	"github.com/pkg/errors"
)

// Errors reported for invalid caller input.
var (
	ErrNameTooLong        = errors.New("interface name too long")
	ErrIPv4NotImplemented = errors.New("IPv4 addresses are not implemented")
	ErrAddressLength      = errors.New("address must be either 4 or 16 bytes")
	ErrShortBuffer        = errors.New("read buffer is smaller than the MTU")
	ErrClosed             = errors.New("interface is closed")

	errNameTerminator = errors.New("interface name is not null-terminated")
)

// Step names the interface configuration step a ConfigError originates
// from.
type Step string

// Configuration steps.
const (
	StepDeviceOpen    Step = "device open"
	StepAttach        Step = "attach"
	StepSocketCreate  Step = "control socket"
	StepIndexResolve  Step = "index lookup"
	StepFlagsGet      Step = "flags lookup"
	StepFlagsSet      Step = "flags update"
	StepAddressAssign Step = "address assign"
)

// ConfigError wraps an OS error raised while configuring an interface.
type ConfigError struct {
	Step Step
	Err  error
}

func (e *ConfigError) Error() string {
	return string(e.Step) + " failed: " + e.Err.Error()
}

// Cause returns the underlying OS error. It makes errors.Cause unwrap
// a ConfigError down to the errno.
func (e *ConfigError) Cause() error { return e.Err }

func configErr(step Step, err error) error {
	return &ConfigError{Step: step, Err: err}
}
