package tuntap

import (
	"syscall"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestConfigError(t *testing.T) {
	assert := assert.New(t)

	err := configErr(StepAttach, syscall.EPERM)
	assert.EqualError(err, "attach failed: operation not permitted")

	// errors.Cause unwraps down to the errno
	assert.Equal(syscall.EPERM, errors.Cause(err))
}
