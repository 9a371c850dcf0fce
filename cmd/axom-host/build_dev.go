//go:build dev

package main

// devBuild disables the protection monitor. Build with -tags dev.
const devBuild = true
