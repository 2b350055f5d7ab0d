package main

import (
	"github.com/kaspanet/hdkeychain/infrastructure/logger"
	"github.com/pkg/errors"
)

func main() {
	subCmd, config := parseCommandLine()
	defer logger.BackendLog.Close()

	var err error
	switch subCmd {
	case generateSubCmd:
		err = generate(config.(*generateConfig))
	case masterSubCmd:
		err = master(config.(*masterConfig))
	case deriveSubCmd:
		err = derive(config.(*deriveConfig))
	case derivePublicSubCmd:
		err = derivePublic(config.(*derivePublicConfig))
	default:
		err = errors.Errorf("Unknown sub-command '%s'\n", subCmd)
	}

	if err != nil {
		printErrorAndExit(err)
	}
}
