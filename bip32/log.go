package bip32

import "github.com/kaspanet/hdkeychain/infrastructure/logger"

var log = logger.RegisterSubSystem("BP32")
