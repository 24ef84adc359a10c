package config

import "time"

// Base application details
const AppName = "scribe"
const ConfigDirName = "scribe"
const DefaultConfigFileName = "config.toml" // Main config file
const DefaultLogFileName = "scribe.log"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// These could be moved to NewDefaultConfig(), keeping here for now
const DefaultMaxUndoStack = 100
const DefaultScrollOff = 3
const SystemClipboard = true
