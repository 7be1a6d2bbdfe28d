package build

// Version of the funnel tool. Set to tag in CI during release.
var Version = "0.0.0"
