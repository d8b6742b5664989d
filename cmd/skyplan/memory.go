package main

import (
	"os"

	"github.com/shirou/gopsutil/v3/process"
	log "github.com/sirupsen/logrus"
)

// residentMemory returns this process's resident set size in bytes.
func residentMemory() (uint64, bool) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Debugf("process info unavailable: %v", err)
		return 0, false
	}
	info, err := p.MemoryInfo()
	if err != nil {
		log.Debugf("memory info unavailable: %v", err)
		return 0, false
	}

	return info.RSS, true
}
