// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/karmad/fault"
	"github.com/bitmark-inc/karmad/rpc/handler"
	"github.com/bitmark-inc/karmad/util"
	"github.com/bitmark-inc/logger"
)

const (
	httpLogName      = "http_rpc"
	readWriteTimeout = 10 * time.Second
)

// HTTPConfiguration - configuration file data for HTTP setup
type HTTPConfiguration struct {
	MaximumConnections uint64              `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string            `gluamapper:"listen" json:"listen"`
	Certificate        string              `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string              `gluamapper:"private_key" json:"private_key"`
	Allow              map[string][]string `gluamapper:"allow" json:"allow"`
}

type httpListener struct {
	sync.Mutex
	log       *logger.L
	addresses []string
	tlsConfig *tls.Config
	mux       *http.ServeMux
	servers   []*http.Server
}

// NewHTTP - JSON RPC over HTTP POST plus a restricted details page
//
// returns nil without error when no listen address is configured
func NewHTTP(
	configuration *HTTPConfiguration,
	log *logger.L,
	tlsConfig *tls.Config,
	hdlr handler.Handler,
) (Listener, error) {
	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpLogName)
		return nil, nil
	}

	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", httpLogName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	addresses := make([]string, len(configuration.Listen))
	for i, address := range configuration.Listen {
		c, err := util.CanonicalIPandPort(address)
		if nil != err {
			log.Errorf("invalid %s listen: %q  error: %s", httpLogName, address, err)
			return nil, err
		}
		addresses[i] = c
	}

	// create access control
	allow := make(map[string][]*net.IPNet)
	for path, cidrs := range configuration.Allow {
		set := make([]*net.IPNet, len(cidrs))
		allow[path] = set
		for i, ip := range cidrs {
			_, cidr, err := net.ParseCIDR(strings.TrimSpace(ip))
			if nil != err {
				return nil, err
			}
			set[i] = cidr
		}
	}
	hdlr.SetAllow(allow)

	mux := http.NewServeMux()
	mux.HandleFunc("/karmad/rpc", hdlr.RPC)
	mux.HandleFunc("/karmad/details", hdlr.Details)
	mux.HandleFunc("/", hdlr.Root)

	if nil != tlsConfig {
		tlsConfig.NextProtos = []string{"http/1.1"}
	}

	return &httpListener{
		log:       log,
		addresses: addresses,
		tlsConfig: tlsConfig,
		mux:       mux,
	}, nil
}

// Serve - open every listen address and serve in the background
func (h *httpListener) Serve() error {
	h.Lock()
	defer h.Unlock()

	for _, address := range h.addresses {
		h.log.Infof("starting server: %s on: %q", httpLogName, address)
		l, err := listen(address, h.tlsConfig)
		if nil != err {
			h.log.Errorf("%s listen error: %s", httpLogName, err)
			return err
		}
		s := &http.Server{
			Handler:        h.mux,
			ReadTimeout:    readWriteTimeout,
			WriteTimeout:   readWriteTimeout,
			MaxHeaderBytes: 1 << 20,
		}
		h.servers = append(h.servers, s)

		go func() {
			err := s.Serve(l)
			h.log.Infof("%s terminated: %s", httpLogName, err)
		}()
	}
	return nil
}

// Stop - close all servers
func (h *httpListener) Stop() {
	h.Lock()
	defer h.Unlock()

	for _, s := range h.servers {
		_ = s.Close()
	}
	h.servers = nil
}
