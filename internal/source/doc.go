// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package source acquires raw document bytes from local files, stdin or
// S3, decrypting passphrase-protected snapshots on the way in.
package source
