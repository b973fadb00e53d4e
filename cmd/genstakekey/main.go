package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/btcsuite/btcd/btcec"
	"github.com/btcsuite/btcutil"
	"github.com/nrgnet/nrgd/domain/consensus/utils/txscript"
	"github.com/nrgnet/nrgd/domain/keystore"
	"github.com/nrgnet/nrgd/infrastructure/logger"
	"github.com/pkg/errors"
)

func main() {
	cfg, err := parseConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing command-line arguments: %s\n", err)
		os.Exit(1)
	}
	defer logger.BackendLog.Close()

	err = run(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

func run(cfg *configFlags) error {
	keyStore, err := keystore.OpenLevelDBKeyStore(cfg.KeyStoreDir)
	if err != nil {
		return err
	}
	defer func() {
		err := keyStore.Close()
		if err != nil {
			log.Errorf("Failed to close the key store: %s", err)
		}
	}()

	if cfg.List {
		return listKeys(cfg, keyStore)
	}
	return generateKey(cfg, keyStore)
}

func generateKey(cfg *configFlags, keyStore *keystore.LevelDBKeyStore) error {
	params := cfg.NetParams()
	compressed := !cfg.Uncompressed

	privateKey, err := btcec.NewPrivateKey(btcec.S256())
	if err != nil {
		return errors.Wrap(err, "failed to generate a private key")
	}
	keyID, err := keyStore.AddKey(privateKey, compressed)
	if err != nil {
		return err
	}
	log.Infof("Generated stake key %s on %s", keyID, params.Name)

	address, err := params.EncodeAddress(keyID)
	if err != nil {
		return err
	}
	fmt.Printf("Key id:        %s\n", keyID)
	fmt.Printf("Address:       %s\n", address.EncodeAddress())
	fmt.Printf("Reward script: %s\n", hex.EncodeToString(txscript.PayToKeyIDScript(keyID)))

	if cfg.ShowPrivate {
		wif, err := btcutil.NewWIF(privateKey, params.BtcParams, compressed)
		if err != nil {
			return errors.Wrap(err, "failed to encode the private key")
		}
		fmt.Printf("Private key:   %s\n", wif.String())
	}
	return nil
}

func listKeys(cfg *configFlags, keyStore *keystore.LevelDBKeyStore) error {
	params := cfg.NetParams()
	keyIDs, err := keyStore.KeyIDs()
	if err != nil {
		return err
	}
	for _, keyID := range keyIDs {
		address, err := params.EncodeAddress(keyID)
		if err != nil {
			return err
		}
		fmt.Printf("%s %s\n", keyID, address.EncodeAddress())
	}
	return nil
}
