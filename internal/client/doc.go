// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the health wallet command-line client.
//
// [App] parses a subcommand and its flags, calls the server through an
// [adapter.ServerAdapter] and prints the result as indented JSON. Files are
// read from and written to the local filesystem for upload and download.
package client
