// Package config loads the service configuration.
//
// Values are resolved in increasing order of precedence:
//
//	1. Default()
//	2. A YAML file named by AWR_CONFIG_FILE, or config.yaml / configs/config.yaml
//	3. AWR_* environment variables, e.g. AWR_SERVER_PORT, AWR_DATABASE_DSN
//
// Nested sections map to nested variable names, so database.max_open_conns in
// YAML is AWR_DATABASE_MAX_OPEN_CONNS in the environment. Load validates the
// merged result and rejects impossible values.
package config
