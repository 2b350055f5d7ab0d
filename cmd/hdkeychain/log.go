package main

import "github.com/kaspanet/hdkeychain/infrastructure/logger"

var log = logger.RegisterSubSystem("HDKC")
