// Package main builds the stagefmt binary into bin/ with the version stamped in.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

const versionVar = "github.com/fusecore/stagefmt/internal/app.Version"

func main() {
	binaryName := "stagefmt"
	if runtime.GOOS == "windows" {
		binaryName += ".exe"
	}

	versionOut, err := exec.Command("go", "run", "./scripts/version").Output()
	version := strings.TrimSpace(string(versionOut))
	if err != nil || version == "" {
		version = "dev"
	}

	if err := os.MkdirAll("bin", 0o755); err != nil {
		fmt.Printf("❌ Failed to create bin directory: %v\n", err)
		os.Exit(1)
	}

	outputPath := filepath.Join("bin", binaryName)
	fmt.Printf("Building stagefmt %s...\n", version)

	cmd := exec.Command("go", "build", "-trimpath",
		"-ldflags", fmt.Sprintf("-s -w -X %s=%s", versionVar, version),
		"-o", outputPath, "./cmd/stagefmt")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		fmt.Printf("❌ Build failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Build complete: %s\n", outputPath)
}
