package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GateDevice is a scanner allowed to call the verification endpoints.
type GateDevice struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Key  string `yaml:"key"`
}

type gateDeviceFile struct {
	Devices []GateDevice `yaml:"devices"`
}

// LoadGateDevices reads the device registry. An empty path yields no devices,
// which leaves the scan endpoints open.
func LoadGateDevices(path string) ([]GateDevice, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read gate devices: %w", err)
	}

	var file gateDeviceFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse gate devices %s: %w", path, err)
	}

	seen := make(map[string]struct{}, len(file.Devices))
	for i, d := range file.Devices {
		if d.ID == "" || d.Key == "" {
			return nil, fmt.Errorf("gate device #%d: id and key are required", i+1)
		}
		if _, dup := seen[d.ID]; dup {
			return nil, fmt.Errorf("gate device %q listed twice", d.ID)
		}
		seen[d.ID] = struct{}{}
	}
	return file.Devices, nil
}
