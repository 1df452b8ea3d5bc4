// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "errors"

// ErrPayloadTooLarge is returned when the input string has no
// encoding at any version 1 through 40 and the requested level.
var ErrPayloadTooLarge = errors.New("qr: payload too large for level")

// ErrInvalidCharacter is returned by Latin1 for a character with no
// ISO-8859-1 representation. Byte mode carries every byte, so input
// that is not transcoded never produces this error.
var ErrInvalidCharacter = errors.New("qr: invalid character for encoding")

// ErrInvalidLevel is returned for a Level outside L, M, Q, H.
var ErrInvalidLevel = errors.New("qr: invalid error-correction level")
