// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package color parses the color values accepted by command arguments,
// for example "color=#ffff00" or "color=lightblue".
package color
