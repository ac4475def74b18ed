// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"
)

// split NAME=VALUE options into Lua globals
func parseVariables(settings []string) (map[string]string, error) {
	variables := make(map[string]string, len(settings))
	for _, s := range settings {
		parts := strings.SplitN(s, "=", 2)
		name := strings.TrimSpace(parts[0])
		if 2 != len(parts) || "" == name {
			return nil, fmt.Errorf("invalid variable setting: %q", s)
		}
		variables[name] = parts[1]
	}
	return variables, nil
}
