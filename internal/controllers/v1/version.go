package v1

// Version is set at build time, see Makefile.
var Version = "0.0.0"
