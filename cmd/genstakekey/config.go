package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"github.com/nrgnet/nrgd/infrastructure/config"
	"github.com/nrgnet/nrgd/version"
	"github.com/pkg/errors"
)

type configFlags struct {
	KeyStoreDir  string `long:"keystore" description:"Directory of the stake key store"`
	Uncompressed bool   `long:"uncompressed" description:"Identify the key by its uncompressed public key"`
	ShowPrivate  bool   `long:"show-private" description:"Print the generated private key in wallet import format"`
	List         bool   `long:"list" description:"List the key ids held by the key store instead of generating a key"`
	ShowVersion  bool   `short:"V" long:"version" description:"Display version information and exit"`
	config.NetworkFlags
	config.LogFlags
}

func parseConfig() (*configFlags, error) {
	cfg := &configFlags{}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)
	_, err := parser.Parse()
	if err != nil {
		return nil, err
	}

	if cfg.ShowVersion {
		appName := filepath.Base(os.Args[0])
		fmt.Println(appName, "version", version.Version())
		os.Exit(0)
	}

	if cfg.KeyStoreDir == "" {
		return nil, errors.New("--keystore is required")
	}

	err = cfg.ResolveNetwork(parser)
	if err != nil {
		return nil, err
	}

	err = cfg.ApplyLogFlags("genstakekey")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
