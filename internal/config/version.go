package config

import (
	"encoding/json"
	"fmt"
)

// CurrentVersion is the current config schema version
const CurrentVersion = 2

// Migration represents a config migration function
type Migration struct {
	FromVersion int
	ToVersion   int
	Migrate     func(data map[string]interface{}) (map[string]interface{}, error)
}

// migrations is the list of migrations in order
var migrations = []Migration{
	// Migration 0 -> 1: Add version field, no structural changes
	{
		FromVersion: 0,
		ToVersion:   1,
		Migrate: func(data map[string]interface{}) (map[string]interface{}, error) {
			data["version"] = 1
			return data, nil
		},
	},
	// Migration 1 -> 2: top-level cellWidth/daysToShow/rowHeight move under
	// zoom.day and geometry
	{
		FromVersion: 1,
		ToVersion:   2,
		Migrate: func(data map[string]interface{}) (map[string]interface{}, error) {
			zoom, err := objectAt(data, "zoom")
			if err != nil {
				return nil, err
			}
			day, err := objectAt(zoom, "day")
			if err != nil {
				return nil, err
			}
			geometry, err := objectAt(data, "geometry")
			if err != nil {
				return nil, err
			}

			if v, ok := data["cellWidth"]; ok {
				if _, set := day["cellWidth"]; !set {
					day["cellWidth"] = v
				}
				delete(data, "cellWidth")
			}
			if v, ok := data["daysToShow"]; ok {
				if _, set := day["dayCount"]; !set {
					day["dayCount"] = v
				}
				delete(data, "daysToShow")
			}
			if v, ok := data["rowHeight"]; ok {
				if _, set := geometry["rowHeight"]; !set {
					geometry["rowHeight"] = v
				}
				delete(data, "rowHeight")
			}
			data["version"] = 2
			return data, nil
		},
	},
}

// objectAt returns data[key] as an object, creating it when absent
func objectAt(data map[string]interface{}, key string) (map[string]interface{}, error) {
	v, ok := data[key]
	if !ok || v == nil {
		obj := make(map[string]interface{})
		data[key] = obj
		return obj, nil
	}
	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%q must be an object", key)
	}
	return obj, nil
}

// ParseVersionedConfig parses config data with version migration support
func ParseVersionedConfig(data []byte) (*Config, error) {
	// First, parse as raw JSON to get version
	var rawConfig map[string]interface{}
	if err := json.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	// Detect version (0 if not present = legacy config)
	version := 0
	if v, ok := rawConfig["version"].(float64); ok {
		version = int(v)
	}

	if version > CurrentVersion {
		return nil, fmt.Errorf("config version %d is newer than supported version %d", version, CurrentVersion)
	}

	// A nested {"version": n, "config": {...}} document migrates its inner object
	inner, nested := rawConfig["config"].(map[string]interface{})
	target := rawConfig
	if nested {
		target = inner
	}

	if version < CurrentVersion {
		var err error
		target, err = ApplyMigrations(target, version)
		if err != nil {
			return nil, fmt.Errorf("failed to migrate config: %w", err)
		}
	}

	// Re-marshal and unmarshal to get proper types
	migratedData, err := json.Marshal(target)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal migrated config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(migratedData, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// ApplyMigrations applies all migrations from the given version to CurrentVersion
func ApplyMigrations(data map[string]interface{}, fromVersion int) (map[string]interface{}, error) {
	for _, migration := range migrations {
		if migration.FromVersion == fromVersion {
			var err error
			data, err = migration.Migrate(data)
			if err != nil {
				return nil, fmt.Errorf("migration %d -> %d failed: %w",
					migration.FromVersion, migration.ToVersion, err)
			}
			fromVersion = migration.ToVersion
		}
	}

	if fromVersion < CurrentVersion {
		return nil, fmt.Errorf("no migration path from version %d to %d", fromVersion, CurrentVersion)
	}

	return data, nil
}

// MarshalVersionedConfig serializes a config with version information
func MarshalVersionedConfig(cfg *Config) ([]byte, error) {
	// Marshal config first
	cfgData, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}

	// Parse back as map
	var cfgMap map[string]interface{}
	if err := json.Unmarshal(cfgData, &cfgMap); err != nil {
		return nil, err
	}

	// Add version at the top
	result := make(map[string]interface{})
	result["version"] = CurrentVersion

	// Add all config fields
	for k, v := range cfgMap {
		result[k] = v
	}

	return json.MarshalIndent(result, "", "  ")
}
