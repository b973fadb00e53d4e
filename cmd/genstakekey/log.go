package main

import (
	"github.com/nrgnet/nrgd/infrastructure/logger"
)

var log = logger.RegisterSubSystem("GSKY")
