// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements text encoding/decoding of Quads.

package qd

import "fmt"

// MarshalText implements encoding.TextMarshaler. The emitted form carries
// all 62 meaningful digits, so UnmarshalText restores finite values to the
// full precision of the representation. Values whose trailing components
// resolve finer than 62 digits (roughly, leading components with long
// runs of trailing zero bits) are restored to within a unit in the 62nd
// digit rather than bit for bit.
func (x Quad) MarshalText() ([]byte, error) {
	return x.Append(nil, 'g', -1), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Quad) UnmarshalText(text []byte) error {
	z, err := Parse(string(text))
	if err != nil {
		return fmt.Errorf("qd: cannot unmarshal %q into a Quad: %w", text, err)
	}
	*x = z
	return nil
}
