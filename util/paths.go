// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package util - file name helpers for the configuration layer
package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - anchor a relative path at directory
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - check if a file or directory exists
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}
