package version

// Version is the current evplot version.
// It is overridden at build time via -ldflags "-X .../internal/version.Version=v1.2.3".
// Version 是当前 evplot 版本，构建时通过 -ldflags 覆盖。
var Version = "dev"
