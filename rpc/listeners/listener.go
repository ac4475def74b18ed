// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - network endpoints for the RPC services
package listeners

import (
	"crypto/tls"
	"net"
	"time"
)

const (
	minConnectionCount = 1
	keepAlivePeriod    = 3 * time.Minute
)

// Listener - a started endpoint
type Listener interface {
	Serve() error
	Stop()
}

type tcpKeepAliveListener struct {
	*net.TCPListener
}

func (ln tcpKeepAliveListener) Accept() (net.Conn, error) {
	tc, err := ln.AcceptTCP()
	if err != nil {
		return nil, err
	}
	_ = tc.SetKeepAlive(true)
	_ = tc.SetKeepAlivePeriod(keepAlivePeriod)
	return tc, nil
}

// listen on a canonical address, wrapped in TLS when configured
func listen(address string, tlsConfig *tls.Config) (net.Listener, error) {
	ln, err := net.Listen("tcp", address)
	if nil != err {
		return nil, err
	}
	l := net.Listener(tcpKeepAliveListener{ln.(*net.TCPListener)})
	if nil != tlsConfig {
		l = tls.NewListener(l, tlsConfig)
	}
	return l, nil
}
