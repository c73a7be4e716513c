package main

import (
	"go.uber.org/zap"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/rainbow"
)

func runTFT(log *zap.Logger) error {
	if _, err := host.Init(); err != nil {
		return err
	}

	conn, err := rainbow.OpenSPI(&rainbow.SPIConfig{
		Bus:    spiBus,
		Device: spiDevice,
		Reset:  gpioreg.ByName(resetPin),
		DC:     gpioreg.ByName(dcPin),
		CE:     gpioreg.ByName(cePin),
	})
	if err != nil {
		return err
	}
	log.Info("connection opened", zap.Stringer("conn", conn))

	d, err := rainbow.ST7789(conn, nil)
	if err != nil {
		_ = conn.Close()
		return err
	}
	defer d.Close()
	log.Info("panel initialized",
		zap.Int("width", d.Bounds().Dx()),
		zap.Int("height", d.Bounds().Dy()))

	if err = fill(log, d); err != nil {
		return err
	}
	if err = d.Refresh(); err != nil {
		return err
	}

	waitEnter(log)
	return nil
}
