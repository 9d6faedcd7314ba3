// Package report turns a run result into the JSON document consumed by
// visualization and bookkeeping tools:
//
//	{ "route": [{"x":..,"y":..}, ...], "distance": .., "fitness": .., ... }
//
// The route/distance/fitness triple is the stable contract; the remaining
// fields are informational.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"

	"github.com/katalvlaran/gatsp/evolve"
	"github.com/katalvlaran/gatsp/genetic"
	"github.com/katalvlaran/gatsp/geom"
)

// SysInfo records the machine a run was executed on.
type SysInfo struct {
	Platform string `json:"platform"`
	CPU      string `json:"cpu"`
	RAM      string `json:"ram"`
}

// Report is the serialized form of a run.
type Report struct {
	Route    []geom.Point `json:"route"`
	Distance float64      `json:"distance"`
	Fitness  float64      `json:"fitness"`

	Generations int             `json:"generations"`
	Population  int             `json:"population"`
	Elapsed     string          `json:"elapsed"`
	Initial     genetic.Stats   `json:"initial"`
	Final       genetic.Stats   `json:"final"`
	Summary     *evolve.Summary `json:"summary,omitempty"`
	System      *SysInfo        `json:"system,omitempty"`
}

// FromResult builds a Report from res. sys may be nil. The summary is
// included when the run kept its history.
func FromResult(res evolve.Result, sys *SysInfo) Report {
	r := Report{
		Generations: res.Generations,
		Population:  res.Population,
		Elapsed:     res.Elapsed.String(),
		Initial:     res.Initial,
		Final:       res.Final,
		System:      sys,
	}
	if res.Best != nil {
		r.Route = res.Best.Route()
		r.Distance = res.Best.Length()
		r.Fitness = res.Best.Fitness()
	}
	if s, err := res.Summary(); err == nil {
		r.Summary = &s
	}
	return r
}

// Write encodes rep as indented JSON.
func Write(w io.Writer, rep Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("report: encode: %w", err)
	}
	return nil
}

// CollectSysInfo queries platform, CPU model and total RAM. Fields that
// cannot be read stay empty; the first lookup error is returned alongside
// whatever was collected.
func CollectSysInfo() (SysInfo, error) {
	var (
		info     SysInfo
		firstErr error
	)
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	hostStat, err := host.Info()
	keep(err)
	if hostStat != nil {
		info.Platform = hostStat.Platform
	}

	cpuStat, err := cpu.Info()
	keep(err)
	if len(cpuStat) > 0 {
		info.CPU = cpuStat[0].ModelName
	}

	vmStat, err := mem.VirtualMemory()
	keep(err)
	if vmStat != nil {
		info.RAM = fmt.Sprintf("%d GB", vmStat.Total/1024/1024/1024)
	}

	if firstErr != nil {
		return info, fmt.Errorf("report: system info: %w", firstErr)
	}
	return info, nil
}
