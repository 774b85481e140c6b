package workload

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/xid"
	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/sim"
)

// DefaultStorePath is the store file used when none is given.
const DefaultStorePath = "processes.yaml"

// Store is a file-backed list of process descriptors, the backing for the
// add and list commands.
type Store struct {
	Path string
}

// NewStore returns a store over path, or DefaultStorePath when path is empty.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultStorePath
	}
	return &Store{Path: path}
}

// List returns the stored descriptors. A missing store file is an empty store.
func (s *Store) List() ([]sim.ProcessSpec, error) {
	specs, err := LoadProcesses(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return []sim.ProcessSpec{}, nil
	}
	return specs, err
}

// Add appends spec to the store and returns it as stored. An empty id is
// replaced by a generated one; a duplicate id is rejected.
func (s *Store) Add(spec sim.ProcessSpec) (sim.ProcessSpec, error) {
	if spec.ID == "" {
		spec.ID = xid.New().String()
	}
	if spec.NumPages == 0 {
		spec.NumPages = 1
	}
	if err := spec.Validate(); err != nil {
		return sim.ProcessSpec{}, err
	}

	specs, err := s.List()
	if err != nil {
		return sim.ProcessSpec{}, err
	}
	for _, existing := range specs {
		if existing.ID == spec.ID {
			return sim.ProcessSpec{}, fmt.Errorf("%w: process %q already exists in %s", sim.ErrInvalidWorkload, spec.ID, s.Path)
		}
	}
	specs = append(specs, spec)
	if err := SaveProcesses(s.Path, specs); err != nil {
		return sim.ProcessSpec{}, err
	}
	logrus.Infof("stored process %s in %s (%d total)", spec.ID, s.Path, len(specs))
	return spec, nil
}
