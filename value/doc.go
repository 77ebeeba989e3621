// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package value holds the parsed form of a configuration document: a
// tree of tables, arrays and scalar leaves, plus decoders from TOML,
// JSON, YAML and HCL and the canonical text serialization of single
// values.
package value
