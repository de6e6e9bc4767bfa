// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lattice

// append appends the minimal decimal text of x to buf and returns the extended
// buffer. x must be trimmed.
func (x *number) append(buf []byte) []byte {
	if x.neg && !x.isZero() {
		buf = append(buf, '-')
	}
	d := x.digits
	// integer part
	if n := len(d) - x.scale; n > 0 {
		for _, v := range d[:n] {
			buf = append(buf, '0'+v)
		}
		d = d[n:]
	} else {
		buf = append(buf, '0')
	}
	if x.scale == 0 {
		return buf
	}
	buf = append(buf, '.')
	for i := len(d); i < x.scale; i++ {
		buf = append(buf, '0')
	}
	for _, v := range d {
		buf = append(buf, '0'+v)
	}
	return buf
}

func (x *number) String() string {
	return string(x.append(make([]byte, 0, len(x.digits)+3)))
}
