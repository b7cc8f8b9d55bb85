package cmd

import (
	"github.com/shirou/gopsutil/process"
)

type resourceUsage struct {
	CPUPercent float64
	MemorySize uint64
}

func currentResources(pid int) (resourceUsage, error) {
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return resourceUsage{}, err
	}

	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return resourceUsage{}, err
	}

	memory, err := p.MemoryInfo()
	if err != nil {
		return resourceUsage{}, err
	}

	return resourceUsage{
		CPUPercent: cpuPercent,
		MemorySize: memory.RSS,
	}, nil
}
