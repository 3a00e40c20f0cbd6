package types

// Version is the tagrel version, overwritten at build time with -ldflags.
var Version = "dev"
