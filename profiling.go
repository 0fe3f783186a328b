package main

import (
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"sync"
)

// cpuProfile is an active pprof CPU capture. Stop may be called from
// several defers; only the first one ends the capture.
type cpuProfile struct {
	path string
	file *os.File
	once sync.Once
}

func startCPUProfile(path string) (*cpuProfile, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("cpu profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return nil, fmt.Errorf("cpu profile %s: %w", path, err)
	}
	return &cpuProfile{path: path, file: f}, nil
}

func (p *cpuProfile) Stop() {
	p.once.Do(func() {
		pprof.StopCPUProfile()
		if err := p.file.Close(); err != nil {
			log.Printf("Closing CPU profile %s: %v", p.path, err)
			return
		}
		log.Printf("CPU profile written to %s", p.path)
	})
}
