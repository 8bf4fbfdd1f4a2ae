// Package config loads and validates the TOML configuration consumed by the
// trainreel CLI.
//
// Resolution order: an explicit --config path, then
// ~/.config/trainreel/config.toml, then trainreel.toml in the working
// directory. A missing file is not an error; defaults apply and flags can
// still override individual values. The library packages never read
// configuration, keeping direct function invocation self-contained.
package config
