// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package diff walks two document trees in lock-step and produces an
// ordered set of classified changes.
package diff
