//go:build !linux
// +build !linux

package platform

import (
	"os"
)

func signals() []os.Signal {
	return []os.Signal{os.Interrupt}
}
