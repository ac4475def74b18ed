// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/karmad/chain"
	"github.com/bitmark-inc/karmad/configuration"
	"github.com/bitmark-inc/karmad/genesis"
	"github.com/bitmark-inc/karmad/reward"
	"github.com/bitmark-inc/karmad/rpc/listeners"
	"github.com/bitmark-inc/karmad/runtime"
	"github.com/bitmark-inc/karmad/util"
	"github.com/bitmark-inc/logger"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultKeyFile         = "rpc.key"
	defaultCertificateFile = "rpc.crt"

	defaultLevelDBDirectory = "data"
	defaultKarmaDatabase    = chain.Karma + ".leveldb"
	defaultTestingDatabase  = chain.Testing + ".leveldb"
	defaultLocalDatabase    = chain.Local + ".leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "karmad.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients    = 10
	defaultBlockInterval = 5 // seconds

	oneKarmaCoin = 1000000 // base units
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - where the LevelDB lives
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// Configuration - the daemon configuration file
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Chain         string       `gluamapper:"chain" json:"chain"`
	Database      DatabaseType `gluamapper:"database" json:"database"`
	BlockInterval int          `gluamapper:"block_interval" json:"block_interval"`

	ClientRPC listeners.RPCConfiguration  `gluamapper:"client_rpc" json:"client_rpc"`
	HTTPRPC   listeners.HTTPConfiguration `gluamapper:"http_rpc" json:"http_rpc"`
	Runtime   runtime.Configuration       `gluamapper:"runtime" json:"runtime"`
	Genesis   genesis.Configuration       `gluamapper:"genesis" json:"genesis"`
	Logging   logger.Configuration        `gluamapper:"logging" json:"logging"`
}

func defaultRuntime() runtime.Configuration {
	return runtime.Configuration{
		Fee:                1000,
		ExistentialBalance: 1,
		Rewards: reward.Parameters{
			Signup: []reward.Phase{
				{Cap: 100000 * 10 * oneKarmaCoin, Amount: 10 * oneKarmaCoin},
				{Cap: 200000 * 10 * oneKarmaCoin, Amount: 5 * oneKarmaCoin},
				{Cap: 300000 * 10 * oneKarmaCoin, Amount: 1 * oneKarmaCoin},
			},
			Referral: []reward.Phase{
				{Cap: 100000 * 10 * oneKarmaCoin, Amount: 10 * oneKarmaCoin},
				{Cap: 200000 * 10 * oneKarmaCoin, Amount: 5 * oneKarmaCoin},
			},
			Karma: []reward.Phase{
				{Cap: 300000000 * oneKarmaCoin, Amount: 10 * oneKarmaCoin},
			},
			SubsidyBudget:     250000000 * oneKarmaCoin,
			SubsidyMaxPerUser: 10,
			KarmaPeriodBlocks: 7 * 24 * 60 * 60 / defaultBlockInterval,
			MinAppreciations:  2,
			MaxWinners:        1000,
		},
	}
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string, variables map[string]string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Chain:         chain.Karma,
		BlockInterval: defaultBlockInterval,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultKarmaDatabase,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
		},

		HTTPRPC: listeners.HTTPConfiguration{
			MaximumConnections: defaultRPCClients,
		},

		Runtime: defaultRuntime(),

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	// Abort if the chain name is not recognised
	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fmt.Errorf("Chain: %q is not supported", options.Chain)
	}

	// if database was not changed from default
	if options.Database.Name == defaultKarmaDatabase {
		switch options.Chain {
		case chain.Karma:
			// already correct default
		case chain.Testing:
			options.Database.Name = defaultTestingDatabase
		case chain.Local:
			options.Database.Name = defaultLocalDatabase
		default:
			return nil, fmt.Errorf("Chain: %s no default database setting", options.Chain)
		}
	}

	if options.BlockInterval <= 0 {
		return nil, fmt.Errorf("block interval: %d must be positive", options.BlockInterval)
	}

	if err := options.Runtime.Rewards.Validate(); nil != err {
		return nil, err
	}

	// empty tables select the chain defaults
	if 0 == len(options.Genesis.Traits) {
		options.Genesis = genesis.Default(options.Chain)
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.HTTPRPC.Certificate,
		&options.HTTPRPC.PrivateKey,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	// create directories if they do not already exist
	for _, d := range []string{
		options.Database.Directory,
		options.Logging.Directory,
	} {
		if err := util.EnsureDirectory(d); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}
