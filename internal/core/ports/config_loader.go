package ports

import "go.trai.ch/pinpoint/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration and returns it with all paths made absolute. path is
	// either a config file or a directory searched upwards for pinpoint.yaml.
	// It returns domain.ErrConfigNotFound if no file is found.
	Load(path string) (*domain.Config, error)
}
