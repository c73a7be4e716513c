// Package conn implements the SPI device connection used to talk to TFT
// panels. It drives the Linux spidev interface directly.
package conn
