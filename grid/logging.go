package grid

import (
	"io"

	"github.com/sirupsen/logrus"
)

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func cellFields(p CellPosition) logrus.Fields {
	return logrus.Fields{"cell": p.A1()}
}
