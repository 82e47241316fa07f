package tuntap

import (
	"io/ioutil"

	"github.com/sirupsen/logrus"
)

var log logrus.FieldLogger = nopLogger()

// SetLogger updates the logger this package uses. Pass nil to turn
// logging off again (the default).
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		log = nopLogger()
	} else {
		log = l
	}
}

func nopLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(ioutil.Discard)
	return l
}
