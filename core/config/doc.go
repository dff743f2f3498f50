// Package config aggregates the partial configurations of every subsystem
// (server, logger, database, canonical results service, outbound web client)
// into a single Config loaded from the environment.
//
// Defaults are declared as struct tags on the partial configs and bound into
// Viper by reflection, so adding a setting means adding a tagged field.
// A local .env file is loaded first when present; real environment variables
// always win.
package config
