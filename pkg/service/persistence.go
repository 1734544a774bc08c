// Package service provides the persistence collaborators used to snapshot
// indicator state and resume a stream later. Indicator state is exported and
// json tagged, so a Store can save and load whole indicator instances.
package service

import "github.com/pkg/errors"

var ErrPersistenceNotExists = errors.New("persistence does not exist")

type PersistenceService interface {
	NewStore(id string, subIDs ...string) Store
}

type Store interface {
	Load(val interface{}) error
	Save(val interface{}) error
	Reset() error
}

type RedisPersistenceConfig struct {
	Host      string `yaml:"host" json:"host"`
	Port      string `yaml:"port" json:"port"`
	Password  string `yaml:"password,omitempty" json:"password,omitempty"`
	DB        int    `yaml:"db" json:"db"`
	Namespace string `yaml:"namespace" json:"namespace"`
}

type JsonPersistenceConfig struct {
	Directory string `yaml:"directory" json:"directory"`
}
