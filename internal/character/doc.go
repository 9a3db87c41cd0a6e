// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package character maps the text input's caret position to a facing
// direction for the mascot.
//
// The pipeline is: sample the caret's visual offset through a measurement
// surrogate that mirrors the input's soft wrapping, normalize it against
// the container width, classify it into a direction bucket, and push the
// matching sprite resource path to the display surface. Samples are rate
// limited to one per 50ms window; extra samples are dropped, not queued.
package character
