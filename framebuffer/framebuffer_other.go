//go:build !linux

package framebuffer

import "errors"

var ErrNotSupported = errors.New("framebuffer: not supported")

func Open(_ string) (Device, error) {
	return nil, ErrNotSupported
}
