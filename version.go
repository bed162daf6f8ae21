package banyan

// Version is printed by the banyan command.
var Version = "v0.1.0"
