package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		Port int `json:"port"`
	} `json:"server,omitempty"`

	Storage struct {
		Files struct {
			SnapshotPath string `json:"snapshot_path"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Server: Server{
			Port: jsonCfg.Server.Port,
		},
		Storage: Storage{
			Files: Files{
				SnapshotPath: jsonCfg.Storage.Files.SnapshotPath,
			},
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
