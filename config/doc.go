// Package config loads and validates drushlog configuration.
//
// Values come from, in increasing priority: repository defaults, a TOML
// file, and DRUSHLOG_* environment variables. A .env file next to the
// working directory is read first so it can seed those variables without
// overriding ones already set in the process environment.
//
// Settings converts the console section into the env.Settings snapshot
// the loggers read; terminal detection fills whatever the file leaves
// unset.
package config
