package version

const Version = "v0.2.0"
