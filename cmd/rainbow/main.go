package main

import (
	"bufio"
	"context"
	"fmt"
	"image/draw"
	"image/png"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/BeatGlow/rainbow"
	"github.com/BeatGlow/rainbow/framebuffer"
	"github.com/BeatGlow/rainbow/pixel"
	"github.com/BeatGlow/rainbow/window"
)

var (
	rootCmd = &cobra.Command{
		Use:           "rainbow",
		Short:         "Paint a horizontal rainbow gradient onto a display",
		Long:          "Paints a smooth rainbow gradient, red through orange, yellow, green, cyan, blue and magenta, directly onto a display buffer.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run()
		},
	}

	target    string
	device    string
	width     int
	height    int
	output    string
	workers   int
	spiBus    int
	spiDevice int
	resetPin  string
	dcPin     string
	cePin     string
	logLevel  string
)

func init() {
	rootCmd.Flags().StringVarP(&target, "target", "t", "fb", "render target (`fb`, `window`, `tft` or `png`)")
	rootCmd.Flags().StringVarP(&device, "device", "d", "/dev/fb0", "framebuffer device")
	rootCmd.Flags().IntVar(&width, "width", 1280, "buffer width for the window and png targets")
	rootCmd.Flags().IntVar(&height, "height", 720, "buffer height for the window and png targets")
	rootCmd.Flags().StringVarP(&output, "out", "o", "rainbow.png", "output file for the png target")
	rootCmd.Flags().IntVarP(&workers, "workers", "w", 1, "fill rows on this many goroutines, 0 for one per CPU")
	rootCmd.Flags().IntVar(&spiBus, "spi-bus", 0, "SPI bus for the tft target")
	rootCmd.Flags().IntVar(&spiDevice, "spi-dev", 0, "SPI device for the tft target")
	rootCmd.Flags().StringVar(&resetPin, "reset", "GPIO25", "reset GPIO pin for the tft target")
	rootCmd.Flags().StringVar(&dcPin, "dc", "GPIO24", "data/command GPIO pin for the tft target")
	rootCmd.Flags().StringVar(&cePin, "ce", "GPIO8", "chip enable GPIO pin for the tft target")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "info", "log level (`debug`, `info`, `warn` or `error`)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		return nil, err
	}

	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	config.DisableStacktrace = true
	return config.Build()
}

func run() error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync()
	}()

	switch target {
	case "fb":
		return runFrameBuffer(log)
	case "window":
		return runWindow(log)
	case "tft":
		return runTFT(log)
	case "png":
		return runPNG(log)
	default:
		return fmt.Errorf("unsupported target %q", target)
	}
}

func fill(log *zap.Logger, img draw.Image) error {
	start := time.Now()
	if workers == 1 {
		rainbow.Fill(img)
	} else if err := rainbow.FillContext(context.Background(), img, workers); err != nil {
		return err
	}
	log.Debug("gradient filled",
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

func runFrameBuffer(log *zap.Logger) error {
	fb, err := framebuffer.Open(device)
	if err != nil {
		return err
	}
	defer fb.Close()

	info := fb.Info()
	log.Info("framebuffer opened",
		zap.String("device", device),
		zap.Int("width", info.Width),
		zap.Int("height", info.Height),
		zap.Int("bits-per-pixel", info.BitsPerPixel),
		zap.Int("stride", info.Stride),
		zap.Int("size", info.Size))

	if err = fill(log, fb); err != nil {
		return err
	}
	if err = fb.Refresh(); err != nil {
		return err
	}

	waitEnter(log)
	return nil
}

func runWindow(log *zap.Logger) error {
	win, err := window.Open(width, height)
	if err != nil {
		return err
	}
	defer win.Close()

	if err = fill(log, win); err != nil {
		return err
	}

	log.Info("opening window, close it to exit", zap.Stringer("window", win))
	return win.Run()
}

func runPNG(log *zap.Logger) error {
	img := pixel.NewBGRAImage(width, height)
	if err := fill(log, img); err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err = png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}

	log.Info("gradient written", zap.String("output", output))
	return nil
}

func waitEnter(log *zap.Logger) {
	log.Info("press enter to exit and restore the display")
	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
}
