// Command drushlog logs messages through the drushlog console and
// watchdog loggers and inspects what they recorded.
//
//	drushlog log success "Cache rebuilt" bins=12
//	some-task | drushlog run --format json
//	drushlog levels -v
//	drushlog watchdog list --limit 20 --severity warning
//
// Global flags mirror the console settings (-v, -d, -q, --nocolor,
// --backend, --columns) and override the configuration file.
package main
