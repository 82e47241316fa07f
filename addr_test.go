package tuntap

import (
	"net"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestAddrWords(t *testing.T) {
	assert := assert.New(t)

	loopback := net.ParseIP("::1").To16()
	assert.Equal([8]uint16{0, 0, 0, 0, 0, 0, 0, 0x0100}, addrWords(loopback))

	addr := net.ParseIP("fe80::0102:0304").To16()
	assert.Equal([8]uint16{0x80fe, 0, 0, 0, 0, 0, 0x0201, 0x0403}, addrWords(addr))

	assert.Equal([8]uint16{}, addrWords(make([]byte, 16)))
}

func TestCheckAddress(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(checkAddress(make([]byte, 16)))
	assert.Equal(ErrIPv4NotImplemented, errors.Cause(checkAddress(make([]byte, 4))))

	for _, n := range []int{0, 3, 5, 15, 17} {
		err := checkAddress(make([]byte, n))
		assert.Equal(ErrAddressLength, errors.Cause(err), "len=%d", n)
	}
}
