package tuntap

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil) // undo

	_, restore := stub(t)
	defer restore()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	SetLogger(logger)

	iface, err := NewNamed(TUN, "dump0")
	require.NoError(t, err)
	defer iface.Close()

	require.NotEmpty(t, hook.Entries)
	entry := hook.LastEntry()
	assert.Equal(t, "interface created", entry.Message)
	assert.Equal(t, "dump0", entry.Data["ifname"])
	assert.Equal(t, "Tun", entry.Data["kind"])
}
