package config

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"scanbuf/buffer"
	"scanbuf/util/log"

	"github.com/ghodss/yaml"
)

type BufferProperties struct {
	Capacity  int    `json:"capacity" yaml:"capacity"`
	IncFactor int    `json:"incFactor" yaml:"incFactor"`
	Mode      string `json:"mode" yaml:"mode"`
	Allocator string `json:"allocator" yaml:"allocator"`
	Sentinel  int    `json:"sentinel" yaml:"sentinel"`
	Compact   bool   `json:"compact" yaml:"compact"`
	Print     bool   `json:"print" yaml:"print"`
	Workers   int    `json:"workers" yaml:"workers"`
	PoolSize  int    `json:"poolSize" yaml:"poolSize"`
	DebugMode bool   `json:"debugMode" yaml:"debugMode"`
}

const (
	AllocatorHeap = "heap"
	AllocatorMmap = "mmap"
)

var Properties *BufferProperties

func init() {
	Properties = Default()
}

// Default returns the scanner's usual buffer profile: 200 bytes growing by 15 bytes.
func Default() *BufferProperties {
	return &BufferProperties{
		Capacity:  200,
		IncFactor: 15,
		Mode:      "a",
		Allocator: AllocatorHeap,
		Sentinel:  0,
		Compact:   true,
		Print:     false,
		Workers:   4,
		PoolSize:  4,
		DebugMode: false,
	}
}

// Parse reads YAML properties on top of the defaults.
func Parse(reader io.Reader) (*BufferProperties, error) {
	configs := Default()
	bytes, err := ioutil.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(bytes, configs); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return configs, nil
}

func LoadConfigs(configFilePath string) error {
	file, err := os.Open(configFilePath)
	if err != nil {
		return err
	}
	defer file.Close()
	configs, err := Parse(file)
	if err != nil {
		return err
	}
	if err := configs.Validate(); err != nil {
		return err
	}
	Properties = configs
	return nil
}

// Validate checks the fields New can not check itself.
func (p *BufferProperties) Validate() error {
	if _, err := buffer.ParseMode(p.Mode); err != nil {
		return err
	}
	if p.Allocator != AllocatorHeap && p.Allocator != AllocatorMmap {
		return fmt.Errorf("unknown allocator %q", p.Allocator)
	}
	if p.Sentinel < 0 || p.Sentinel > 255 {
		return fmt.Errorf("sentinel %d is not a byte", p.Sentinel)
	}
	if p.Workers <= 0 || p.PoolSize <= 0 {
		return fmt.Errorf("workers and poolSize must be positive, got %d and %d", p.Workers, p.PoolSize)
	}
	return nil
}

// BufferAllocator maps the allocator name to a buffer.Allocator.
func (p *BufferProperties) BufferAllocator() buffer.Allocator {
	if p.Allocator == AllocatorMmap {
		return buffer.MmapAllocator{}
	}
	return buffer.HeapAllocator{}
}

// NewBuffer allocates a buffer with this profile.
func (p *BufferProperties) NewBuffer() (*buffer.Buffer, error) {
	mode, err := buffer.ParseMode(p.Mode)
	if err != nil {
		return nil, err
	}
	return buffer.NewWithAllocator(p.Capacity, p.IncFactor, mode, p.BufferAllocator())
}

func (p *BufferProperties) DisplayConfigs() {
	log.Info("buffer capacity: %d, mode: %s, inc factor: %d, allocator: %s", p.Capacity, p.Mode, p.IncFactor, p.Allocator)
	if p.Compact {
		log.Info("compaction enabled, sentinel: %d", p.Sentinel)
	} else {
		log.Info("compaction off")
	}
	log.Info("workers: %d, buffer pool size: %d", p.Workers, p.PoolSize)
}
