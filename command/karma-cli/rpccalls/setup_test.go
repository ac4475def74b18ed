// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls_test

import (
	"bytes"
	"crypto/tls"
	"encoding/hex"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"testing"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/karmad/command/karma-cli/rpccalls"
	"github.com/bitmark-inc/karmad/fault"
	"github.com/bitmark-inc/karmad/fixtures"
	"github.com/bitmark-inc/karmad/rpc/certificate"
	"github.com/bitmark-inc/karmad/rpc/code"
	"github.com/bitmark-inc/karmad/rpc/mocks"
	"github.com/bitmark-inc/karmad/rpc/node"
	"github.com/bitmark-inc/karmad/rpc/transactions"
	"github.com/bitmark-inc/karmad/runtime"
	"github.com/bitmark-inc/logger"
)

// serveTLS - a TLS JSON RPC server with a fresh self-signed certificate
func serveTLS(t *testing.T, service interface{}) (string, string) {
	cert, key, err := certgen.NewTLSCertPair("karma-cli test", time.Now().Add(time.Hour), false, nil)
	assert.Nil(t, err, "certificate error")

	pair, err := tls.X509KeyPair(cert, key)
	assert.Nil(t, err, "key pair error")

	server := rpc.NewServer()
	err = server.Register(service)
	assert.Nil(t, err, "register error")

	l, err := tls.Listen("tcp", "127.0.0.1:0", &tls.Config{
		Certificates: []tls.Certificate{pair},
	})
	assert.Nil(t, err, "listen error")
	t.Cleanup(func() { l.Close() })

	go func() {
		for {
			conn, err := l.Accept()
			if nil != err {
				return
			}
			go server.ServeCodec(jsonrpc.NewServerCodec(conn))
		}
	}()

	fingerprint := certificate.Fingerprint(pair.Certificate[0])
	return l.Addr().String(), hex.EncodeToString(fingerprint[:])
}

func infoNode(ctl *gomock.Controller, times int) *node.Node {
	c := mocks.NewMockChain(ctl)
	c.EXPECT().Height().Return(uint64(2)).Times(times)
	c.EXPECT().Period(uint64(3)).Return(uint64(0)).Times(times)
	c.EXPECT().Configuration().Return(runtime.Configuration{}).Times(times)
	return node.New(logger.New(fixtures.LogCategory), time.Now(), "v3", "local", c, nil, nil)
}

func TestTLSFingerprint(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	address, fingerprint := serveTLS(t, infoNode(ctl, 1))

	var trace bytes.Buffer
	client, err := rpccalls.NewClient(rpccalls.Connection{
		Address:     address,
		TLS:         true,
		Fingerprint: fingerprint,
	}, true, &trace)
	assert.Nil(t, err, "connect error")
	defer client.Close()

	reply, err := client.Info()
	assert.Nil(t, err, "info error")
	assert.Equal(t, "v3", reply.Version, "wrong version")
	assert.Equal(t, uint64(2), reply.Height, "wrong height")
	assert.True(t, strings.Contains(trace.String(), "Node.Info Reply"), "missing verbose trace")
}

func TestTLSFingerprintMismatch(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	address, _ := serveTLS(t, infoNode(ctl, 0))

	_, err := rpccalls.NewClient(rpccalls.Connection{
		Address:     address,
		TLS:         true,
		Fingerprint: strings.Repeat("00", 32),
	}, false, nil)
	assert.NotNil(t, err, "mismatched certificate accepted")
}

func TestBadFingerprint(t *testing.T) {
	_, err := rpccalls.NewClient(rpccalls.Connection{
		Address:     "127.0.0.1:1",
		TLS:         true,
		Fingerprint: "abcd",
	}, false, nil)
	assert.NotNil(t, err, "short fingerprint accepted")

	_, err = rpccalls.NewClient(rpccalls.Connection{
		Address:     "127.0.0.1:1",
		TLS:         true,
		Fingerprint: "xyz",
	}, false, nil)
	assert.NotNil(t, err, "non-hex fingerprint accepted")
}

func TestServerErrorCode(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHistory(ctl)
	h.EXPECT().Transaction(gomock.Any()).Return(nil, fault.TransactionNotFound).Times(1)

	server := rpc.NewServer()
	err := server.Register(transactions.New(logger.New(fixtures.LogCategory), h))
	assert.Nil(t, err, "register error")

	serverConn, clientConn := net.Pipe()
	go server.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	client := rpccalls.NewClientFromConn(clientConn, false, nil)
	defer client.Close()

	_, err = client.Transaction(strings.Repeat("ab", 32))
	assert.NotNil(t, err, "missing transaction found")

	ce, ok := err.(*code.Error)
	assert.True(t, ok, "error has no code")
	assert.Equal(t, code.NotFound, ce.Code, "wrong code")
	assert.Equal(t, fault.TransactionNotFound.Error(), ce.Message, "wrong message")
}

func TestTransactionBadHash(t *testing.T) {
	serverConn, clientConn := net.Pipe()
	defer serverConn.Close()

	client := rpccalls.NewClientFromConn(clientConn, false, nil)
	defer client.Close()

	_, err := client.Transaction("not-a-hash")
	assert.NotNil(t, err, "bad hash accepted")
}
