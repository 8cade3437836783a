// Package cmd defines the kong command tree for usb2text.
package cmd

// LogFlags configures the structured and raw loggers.
type LogFlags struct {
	Level   string `help:"Log level (trace, debug, info, warn, error)" default:"info" env:"USB2TEXT_LOG_LEVEL"`
	File    string `help:"Write logs to a file in addition to stderr" env:"USB2TEXT_LOG_FILE"`
	RawFile string `help:"Dump every raw report's hex to a file" env:"USB2TEXT_LOG_RAW_FILE"`
}

// CLI is the root of the command tree.
type CLI struct {
	ConfigFile string `name:"config" help:"Path to a configuration file" type:"path"`

	Log LogFlags `embed:"" prefix:"log."`

	Decode Decode        `cmd:"" default:"withargs" help:"Decode USB HID keystrokes from a capture"`
	Config ConfigCommand `cmd:"" help:"Configuration helpers"`
}
