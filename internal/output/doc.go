// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output emits a computed change set in the formats selected by
// command flags: the plain text report, json, yaml, or a table.
package output
