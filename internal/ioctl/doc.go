// Package ioctl wraps the ioctl system call for the framebuffer and spidev
// device interfaces. It is only functional on Linux.
package ioctl
