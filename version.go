package parley

// Version is the current release of the parley module.
var Version = "0.4.1"
