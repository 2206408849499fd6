package openaddr

// Version is the release of the module and its CLI.
const Version = "v0.1.0"
