// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"bytes"
	"crypto/tls"
	"crypto/x509"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/bitmark-inc/karmad/rpc/certificate"
	"github.com/bitmark-inc/karmad/rpc/code"
)

const dialTimeout = 10 * time.Second

// Connection - how to reach a karmad
type Connection struct {
	Address     string
	TLS         bool
	Fingerprint string // hex sha3-256 of the server certificate, optional
}

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a karmad
func NewClient(connection Connection, verbose bool, handle io.Writer) (*Client, error) {

	var conn net.Conn
	var err error

	dialer := &net.Dialer{
		Timeout: dialTimeout,
	}

	if connection.TLS {
		tlsConfig, err := clientTLS(connection.Fingerprint)
		if nil != err {
			return nil, err
		}
		conn, err = tls.DialWithDialer(dialer, "tcp", connection.Address, tlsConfig)
		if nil != err {
			return nil, err
		}
	} else {
		conn, err = dialer.Dial("tcp", connection.Address)
		if nil != err {
			return nil, err
		}
	}

	return NewClientFromConn(conn, verbose, handle), nil
}

// NewClientFromConn - wrap an already open connection
func NewClientFromConn(conn net.Conn, verbose bool, handle io.Writer) *Client {
	return &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
}

// Close - shutdown the karmad connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

// server certificates are self-signed so the chain is not verified,
// when a fingerprint is given the leaf must match it
func clientTLS(fingerprint string) (*tls.Config, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	if "" == fingerprint {
		return tlsConfig, nil
	}

	expected, err := hex.DecodeString(fingerprint)
	if nil != err {
		return nil, err
	}
	if 32 != len(expected) {
		return nil, fmt.Errorf("fingerprint: %q is not 32 bytes", fingerprint)
	}

	tlsConfig.VerifyPeerCertificate = func(rawCerts [][]byte, _ [][]*x509.Certificate) error {
		if 0 == len(rawCerts) {
			return fmt.Errorf("server sent no certificate")
		}
		actual := certificate.Fingerprint(rawCerts[0])
		if !bytes.Equal(expected, actual[:]) {
			return fmt.Errorf("certificate fingerprint mismatch: %x", actual)
		}
		return nil
	}
	return tlsConfig, nil
}

// call - perform a request, server errors are split into code and message
func (c *Client) call(method string, arguments interface{}, reply interface{}) error {

	c.trace(method+" Request", arguments)

	err := c.client.Call(method, arguments, reply)
	if nil != err {
		if se, ok := err.(rpc.ServerError); ok {
			return code.Parse(string(se))
		}
		return err
	}

	c.trace(method+" Reply", reply)
	return nil
}

// ErrInvalidParameters - submit parameters are not JSON
var ErrInvalidParameters = errors.New("parameters are not valid JSON")
