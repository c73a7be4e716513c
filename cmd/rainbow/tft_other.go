//go:build !linux

package main

import (
	"errors"

	"go.uber.org/zap"
)

func runTFT(_ *zap.Logger) error {
	return errors.New("tft: not supported on this platform")
}
