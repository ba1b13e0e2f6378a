// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/circled/amount"
	"github.com/bitmark-inc/circled/clock"
	"github.com/bitmark-inc/circled/configuration"
	"github.com/bitmark-inc/circled/engine"
	"github.com/bitmark-inc/circled/governance"
	"github.com/bitmark-inc/circled/publish"
	"github.com/bitmark-inc/circled/rpc/listeners"
	"github.com/bitmark-inc/circled/streak"
	"github.com/bitmark-inc/circled/util"
	"github.com/bitmark-inc/logger"
)

const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "circled.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "circled.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10

	defaultCacheSize  = 256
	defaultPremiumFee = "0.01"
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - location of the leveldb
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// LoggingType - mapped into logger.Configuration once read
type LoggingType struct {
	Directory string      `gluamapper:"directory" json:"directory"`
	File      string      `gluamapper:"file" json:"file"`
	Size      int         `gluamapper:"size" json:"size"`
	Count     int         `gluamapper:"count" json:"count"`
	Console   bool        `gluamapper:"console" json:"console"`
	Levels    LoglevelMap `gluamapper:"levels" json:"levels"`
}

// GovernanceType - proposal timing in seconds
type GovernanceType struct {
	VotingWindow   uint64 `gluamapper:"voting_window" json:"voting_window"`
	ExecutionDelay uint64 `gluamapper:"execution_delay" json:"execution_delay"`
	ExecutionGrace uint64 `gluamapper:"execution_grace" json:"execution_grace"`
}

// Configuration - the whole configuration file
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Database      DatabaseType `gluamapper:"database" json:"database"`

	Milestone  uint64         `gluamapper:"milestone" json:"milestone"`
	PremiumFee string         `gluamapper:"premium_fee" json:"premium_fee"`
	CacheSize  int            `gluamapper:"cache_size" json:"cache_size"`
	Governance GovernanceType `gluamapper:"governance" json:"governance"`

	ClientRPC  listeners.RPCConfiguration   `gluamapper:"client_rpc" json:"client_rpc"`
	HttpsRPC   listeners.HTTPSConfiguration `gluamapper:"https_rpc" json:"https_rpc"`
	Publishing publish.Configuration        `gluamapper:"publishing" json:"publishing"`
	Logging    LoggingType                  `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	defaultGovernance := governance.DefaultParameters()

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		Milestone:  streak.DefaultMilestone,
		PremiumFee: defaultPremiumFee,
		CacheSize:  defaultCacheSize,
		Governance: GovernanceType{
			VotingWindow:   defaultGovernance.VotingWindow,
			ExecutionDelay: defaultGovernance.ExecutionDelay,
			ExecutionGrace: defaultGovernance.ExecutionGrace,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        rpcCertificateKeyFilename,
			PrivateKey:         rpcPrivateKeyFilename,
		},

		// default: share certificate with normal RPC
		HttpsRPC: listeners.HTTPSConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        rpcCertificateKeyFilename,
			PrivateKey:         rpcPrivateKeyFilename,
		},

		Publishing: publish.Configuration{
			PublicKey:  publishPublicKeyFilename,
			PrivateKey: publishPrivateKeyFilename,
		},

		Logging: LoggingType{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	if _, err := amount.Parse(options.PremiumFee); nil != err {
		return nil, fmt.Errorf("premium_fee: %q error: %s", options.PremiumFee, err)
	}
	if options.Governance.VotingWindow < clock.Minute {
		return nil, fmt.Errorf("governance.voting_window: %d is less than one minute", options.Governance.VotingWindow)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.HttpsRPC.Certificate,
		&options.HttpsRPC.PrivateKey,
		&options.Publishing.PublicKey,
		&options.Publishing.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
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

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// the listeners take certificate and key contents rather than file names
	for _, item := range []*string{
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
	} {
		if err := replaceByContents(item); nil != err {
			return nil, err
		}
	}
	if 0 != len(options.HttpsRPC.Listen) {
		for _, item := range []*string{
			&options.HttpsRPC.Certificate,
			&options.HttpsRPC.PrivateKey,
		} {
			if err := replaceByContents(item); nil != err {
				return nil, err
			}
		}
	}

	// done
	return options, nil
}

// engine settings derived from the configuration
func (options *Configuration) engineConfiguration() (engine.Configuration, error) {
	fee, err := amount.Parse(options.PremiumFee)
	if nil != err {
		return engine.Configuration{}, err
	}
	return engine.Configuration{
		Governance: governance.Parameters{
			VotingWindow:   options.Governance.VotingWindow,
			ExecutionDelay: options.Governance.ExecutionDelay,
			ExecutionGrace: options.Governance.ExecutionGrace,
		},
		Milestone:  options.Milestone,
		PremiumFee: fee,
		CacheSize:  options.CacheSize,
	}, nil
}

func (options *Configuration) loggerConfiguration() logger.Configuration {
	return logger.Configuration{
		Directory: options.Logging.Directory,
		File:      options.Logging.File,
		Size:      options.Logging.Size,
		Count:     options.Logging.Count,
		Console:   options.Logging.Console,
		Levels:    options.Logging.Levels,
	}
}

func replaceByContents(fileName *string) error {
	data, err := ioutil.ReadFile(*fileName)
	if nil != err {
		return err
	}
	*fileName = string(data)
	return nil
}
