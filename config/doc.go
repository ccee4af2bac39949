// Package config loads dispatcher tuning from TOML files and watches them
// for changes.
//
// A config file is optional: Load on a missing path returns defaults, and a
// partial file overrides only the keys it names.
//
//	[dispatch]
//	queue_size = 4096
//	workers = 16
//	sync_delivery = false
//
// Watcher reloads the file on change (debounced) and hands the parsed
// Config to a callback. Only settings that can take effect without
// restarting the worker pool are applied live by the consumer.
package config
