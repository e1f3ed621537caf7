//go:build !deadlock

// Package syncutil provides the mutex types used by the strategy registry.
// Standard sync types are used by default; build with -tags=deadlock to swap
// in github.com/sasha-s/go-deadlock.
package syncutil

import "sync"

type Mutex struct {
	sync.Mutex
}

type RWMutex struct {
	sync.RWMutex
}
