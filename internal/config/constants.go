package config

const (
	// Configuration file paths
	ConfigPathItems = "configs/items/items.json"
)
