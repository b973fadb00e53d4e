package consensus

import (
	"github.com/nrgnet/nrgd/infrastructure/logger"
)

var log = logger.RegisterSubSystem("CNSS")
