// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"crypto/tls"
	"sync"
	"time"

	"github.com/bitmark-inc/karmad/counter"
	"github.com/bitmark-inc/karmad/fault"
	"github.com/bitmark-inc/karmad/rpc/certificate"
	"github.com/bitmark-inc/karmad/rpc/handler"
	"github.com/bitmark-inc/karmad/rpc/listeners"
	"github.com/bitmark-inc/karmad/rpc/server"
	"github.com/bitmark-inc/karmad/runtime"
	"github.com/bitmark-inc/logger"
)

const (
	rpcName  = "client_rpc"
	httpName = "http_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listeners []listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// connections currently served
var connectionCountRPC counter.Counter

// Initialise - start the JSON RPC and HTTP listeners
//
// producer is nil on chains that take no submitted calls
func Initialise(
	rpcConfiguration *listeners.RPCConfiguration,
	httpConfiguration *listeners.HTTPConfiguration,
	version string,
	chainName string,
	rt *runtime.Runtime,
	producer *runtime.Producer,
) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, err := loadTLS(log, rpcName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	rpcServer := server.Create(log, version, chainName, rt, producer, &connectionCountRPC)

	rpcListener, err := listeners.NewRPC(rpcConfiguration, log, &connectionCountRPC, rpcServer, tlsConfig)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		return err
	}
	globalData.listeners = append(globalData.listeners, rpcListener)

	if nil != httpConfiguration && 0 != len(httpConfiguration.Listen) {
		httpTLS, err := loadTLS(log, httpName, httpConfiguration.Certificate, httpConfiguration.PrivateKey)
		if nil != err {
			stopAll()
			return err
		}
		h := handler.New(log, rpcServer, time.Now(), version, chainName, rt, httpConfiguration.MaximumConnections)
		httpListener, err := listeners.NewHTTP(httpConfiguration, log, httpTLS, h)
		if nil != err {
			stopAll()
			return err
		}
		err = httpListener.Serve()
		if nil != err {
			stopAll()
			return err
		}
		globalData.listeners = append(globalData.listeners, httpListener)
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all listeners
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	stopAll()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

func stopAll() {
	for _, l := range globalData.listeners {
		l.Stop()
	}
	globalData.listeners = nil
}

// plain TCP when no certificate is configured
func loadTLS(log *logger.L, name string, certificateFile string, keyFile string) (*tls.Config, error) {
	if "" == certificateFile && "" == keyFile {
		log.Warnf("%s: no certificate, TLS disabled", name)
		return nil, nil
	}
	tlsConfig, fingerprint, err := certificate.Get(log, name, certificateFile, keyFile)
	if nil != err {
		return nil, err
	}
	log.Infof("%s: SHA3-256 fingerprint: %x", name, fingerprint)
	return tlsConfig, nil
}
