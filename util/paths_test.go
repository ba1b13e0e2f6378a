// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/circled/util"
)

func TestEnsureAbsolute(t *testing.T) {
	tests := []struct {
		directory string
		path      string
		expected  string
	}{
		{"/var/lib/circled", "rpc.crt", "/var/lib/circled/rpc.crt"},
		{"/var/lib/circled/", "data/../log", "/var/lib/circled/log"},
		{"/var/lib/circled", "/etc/circled/rpc.key", "/etc/circled/rpc.key"},
		{"/var/lib/circled", "", "/var/lib/circled"},
	}
	for i, item := range tests {
		assert.Equal(t, item.expected, util.EnsureAbsolute(item.directory, item.path), "%d", i)
	}
}

func TestEnsureFileExists(t *testing.T) {
	dir, err := ioutil.TempDir("", "util")
	require.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "present")
	require.Nil(t, ioutil.WriteFile(name, []byte("x"), 0600), "write")

	assert.True(t, util.EnsureFileExists(name), "file")
	assert.True(t, util.EnsureFileExists(dir), "directory")
	assert.False(t, util.EnsureFileExists(filepath.Join(dir, "absent")), "absent")
}
