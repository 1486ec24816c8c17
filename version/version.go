package version

// Version is the Major.Minor.Patch tag from git, set by the Makefile
// through -ldflags, else 'dev'
var Version string = "dev"
