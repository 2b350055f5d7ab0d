package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/kaspanet/hdkeychain/bip32"
	"github.com/kaspanet/hdkeychain/curve"
	"github.com/kaspanet/hdkeychain/curve/gosecp256k1"
	"github.com/kaspanet/hdkeychain/curve/libsecp256k1"
	"github.com/kaspanet/hdkeychain/infrastructure/logger"
	"github.com/kaspanet/hdkeychain/version"
	"github.com/pkg/errors"
)

const appName = "hdkeychain"

const (
	generateSubCmd     = "generate"
	masterSubCmd       = "master"
	deriveSubCmd       = "derive"
	derivePublicSubCmd = "derive-public"
)

const (
	enclaveSeedKeyName = "enclave"
	bitcoinSeedKeyName = "bitcoin"
)

type configFlags struct {
	ShowVersion bool `short:"V" long:"version" description:"Display version information and exit"`
}

// LogFlags are the logging options shared by all sub-commands.
type LogFlags struct {
	LogLevel string `long:"loglevel" short:"d" default:"warn" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical, off} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`
	LogFile  string `long:"logfile" description:"Write logs to this file instead of stderr"`
}

// KeyFlags are the options shared by sub-commands that print keys.
type KeyFlags struct {
	Curve   string `long:"curve" default:"go" choice:"go" choice:"libsecp256k1" description:"secp256k1 implementation"`
	Testnet bool   `long:"testnet" description:"Encode keys with testnet versions (tprv/tpub)"`
	LogFlags
}

// SeedFlags select the seed a master key is derived from.
type SeedFlags struct {
	Seed       string `long:"seed" description:"The seed (encoded in hex)"`
	Mnemonic   string `long:"mnemonic" description:"A BIP-39 mnemonic to derive the seed from"`
	Passphrase string `long:"passphrase" description:"The BIP-39 passphrase of the mnemonic"`
	SeedKey    string `long:"seed-key" default:"enclave" choice:"enclave" choice:"bitcoin" description:"HMAC key used to derive the master key from the seed"`
}

type generateConfig struct {
	EntropyBits int    `long:"entropy-bits" default:"256" description:"Entropy of the generated mnemonic {128, 160, 192, 224, 256}"`
	Raw         bool   `long:"raw" description:"Generate a raw seed instead of a mnemonic"`
	Passphrase  string `long:"passphrase" description:"The BIP-39 passphrase used to print the seed of the mnemonic"`
	LogFlags
}

type masterConfig struct {
	SeedFlags
	KeyFlags
}

type deriveConfig struct {
	Path   string `long:"path" short:"p" required:"true" description:"Chain path to derive, e.g. m/44'/0'/0"`
	Public bool   `long:"public" description:"Only print the public half of the derived key"`
	SeedFlags
	KeyFlags
}

type derivePublicConfig struct {
	Key  string `long:"key" short:"k" required:"true" description:"The parent extended key (xpub/xprv, or the serialized public key encoded in hex)"`
	Path string `long:"path" short:"p" required:"true" description:"Chain path of normal indexes to derive, relative to the key"`
	KeyFlags
}

func parseCommandLine() (subCommand string, config interface{}) {
	cfg := &configFlags{}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)
	parser.SubcommandsOptional = true

	generateConf := &generateConfig{}
	parser.AddCommand(generateSubCmd, "Generates a new seed",
		"Generates a new BIP-39 mnemonic, or a raw random seed", generateConf)

	masterConf := &masterConfig{}
	parser.AddCommand(masterSubCmd, "Prints the master key of a seed",
		"Prints the extended master key derived from a seed or a mnemonic. "+
			"If neither is given they are read from the terminal", masterConf)

	deriveConf := &deriveConfig{}
	parser.AddCommand(deriveSubCmd, "Derives a key along a chain path",
		"Derives the extended key at the given chain path from the master key of a seed", deriveConf)

	derivePublicConf := &derivePublicConfig{}
	parser.AddCommand(derivePublicSubCmd, "Derives a public key along a chain path",
		"Derives the extended public key at the given chain path from an extended key", derivePublicConf)

	_, err := parser.Parse()
	if err != nil {
		var flagsErr *flags.Error
		if ok := errors.As(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		} else {
			os.Exit(1)
		}
		return "", nil
	}

	if cfg.ShowVersion {
		fmt.Println(appName, "version", version.Version())
		os.Exit(0)
	}

	if parser.Command.Active == nil {
		parser.WriteHelp(os.Stderr)
		os.Exit(1)
	}

	switch parser.Command.Active.Name {
	case generateSubCmd:
		err = initLog(&generateConf.LogFlags)
		config = generateConf
	case masterSubCmd:
		err = initLog(&masterConf.LogFlags)
		config = masterConf
	case deriveSubCmd:
		err = initLog(&deriveConf.LogFlags)
		config = deriveConf
	case derivePublicSubCmd:
		err = initLog(&derivePublicConf.LogFlags)
		config = derivePublicConf
	}
	if err != nil {
		printErrorAndExit(err)
	}

	return parser.Command.Active.Name, config
}

func initLog(cfg *LogFlags) error {
	if cfg.LogFile != "" {
		logger.InitLog(cfg.LogFile, logger.LevelTrace)
	} else {
		logger.InitLogStderr(logger.LevelTrace)
	}
	return logger.ParseAndSetLogLevels(cfg.LogLevel)
}

func (cfg *KeyFlags) selectedCurve() (curve.Curve, error) {
	switch cfg.Curve {
	case gosecp256k1.Name:
		return gosecp256k1.Curve{}, nil
	case libsecp256k1.Name:
		return libsecp256k1.Curve{}, nil
	}
	return nil, errors.Errorf("unknown curve %s", cfg.Curve)
}

func (cfg *KeyFlags) privateVersion() [4]byte {
	if cfg.Testnet {
		return bip32.BitcoinTestnetPrivate
	}
	return bip32.BitcoinMainnetPrivate
}

func (cfg *KeyFlags) publicVersion() [4]byte {
	if cfg.Testnet {
		return bip32.BitcoinTestnetPublic
	}
	return bip32.BitcoinMainnetPublic
}

func (cfg *SeedFlags) seedKey() ([]byte, error) {
	switch cfg.SeedKey {
	case enclaveSeedKeyName:
		return []byte(bip32.EnclaveSeedKey), nil
	case bitcoinSeedKeyName:
		return []byte(bip32.BitcoinSeedKey), nil
	}
	return nil, errors.Errorf("unknown seed key %s", cfg.SeedKey)
}
