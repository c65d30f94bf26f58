//go:build !windows
// +build !windows

package main

import (
	"os"

	"github.com/ramr/go-reaper"
)

// reap the zombie browser processes when running as the init process of a container
func reap() {
	if os.Getpid() != 1 {
		return
	}

	go reaper.Reap()
}
