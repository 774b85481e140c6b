package workload

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/schedsim/schedsim/sim"
)

// CurrentVersion is the workload file format written by SaveProcesses.
const CurrentVersion = "1"

// File is the versioned workload document:
//
//	version: "1"
//	processes:
//	  - id: A
//	    arrival: 0
//	    total_time: 5
//	    priority: 1
//	    deadline: 10
//	    num_pages: 1
type File struct {
	Version   string            `yaml:"version"`
	Processes []sim.ProcessSpec `yaml:"processes"`
}

// legacyProcess is one entry of a legacy bare-list store dump (processes.json).
// Runtime fields (remaining_time, state, time_line...) are present in such files
// and ignored.
type legacyProcess struct {
	ID        string `yaml:"id"`
	Arrival   int64  `yaml:"arrival"`
	TotalTime int64  `yaml:"total_time"`
	Priority  int64  `yaml:"priority"`
	Deadline  *int64 `yaml:"deadline"`
	NumPages  int    `yaml:"num_pages"`
}

// LoadProcesses reads and validates a workload file.
// A versioned document is parsed strictly: unrecognized keys (typos) are rejected.
// A bare list is accepted as the legacy store format and parsed leniently.
func LoadProcesses(path string) ([]sim.ProcessSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload file: %w", err)
	}
	specs, err := ParseProcesses(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return specs, nil
}

// ParseProcesses decodes workload bytes in either format, applies defaults and
// validates the result. An empty document is an empty workload.
func ParseProcesses(data []byte) ([]sim.ProcessSpec, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing workload: %w", err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return []sim.ProcessSpec{}, nil
	}

	var specs []sim.ProcessSpec
	switch root.Content[0].Kind {
	case yaml.SequenceNode:
		legacy, err := decodeLegacy(&root)
		if err != nil {
			return nil, err
		}
		logrus.Debugf("loaded %d processes from legacy list format", len(legacy))
		specs = legacy
	case yaml.MappingNode:
		f, err := decodeStrict(data)
		if err != nil {
			return nil, err
		}
		specs = f.Processes
	default:
		return nil, fmt.Errorf("%w: expected a process list or a {version, processes} document", sim.ErrInvalidWorkload)
	}

	applyDefaults(specs)
	if err := sim.ValidateWorkload(specs); err != nil {
		return nil, err
	}
	return specs, nil
}

func decodeStrict(data []byte) (*File, error) {
	var f File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing workload: %w", err)
	}
	if f.Version != "" && f.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported workload version %q; supported: %q", f.Version, CurrentVersion)
	}
	return &f, nil
}

func decodeLegacy(root *yaml.Node) ([]sim.ProcessSpec, error) {
	var entries []legacyProcess
	if err := root.Decode(&entries); err != nil {
		return nil, fmt.Errorf("parsing legacy workload list: %w", err)
	}
	specs := make([]sim.ProcessSpec, len(entries))
	for i, e := range entries {
		specs[i] = sim.ProcessSpec{
			ID:        e.ID,
			Arrival:   e.Arrival,
			TotalTime: e.TotalTime,
			Priority:  e.Priority,
			Deadline:  e.Deadline,
			NumPages:  e.NumPages,
		}
	}
	return specs, nil
}

func applyDefaults(specs []sim.ProcessSpec) {
	for i := range specs {
		if specs[i].NumPages == 0 {
			specs[i].NumPages = 1
		}
	}
}

// MarshalProcesses renders specs as a versioned workload document.
func MarshalProcesses(specs []sim.ProcessSpec) ([]byte, error) {
	if specs == nil {
		specs = []sim.ProcessSpec{}
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(File{Version: CurrentVersion, Processes: specs}); err != nil {
		return nil, fmt.Errorf("encoding workload: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding workload: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveProcesses writes specs to path as a versioned workload document.
func SaveProcesses(path string, specs []sim.ProcessSpec) error {
	data, err := MarshalProcesses(specs)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing workload file: %w", err)
	}
	return nil
}
