package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupLoggingDiscardsWithoutDebug(t *testing.T) {
	if f := setupLogging(false); f != nil {
		f.Close()
		t.Fatal("log file opened without debug")
	}
	if log.Writer() != io.Discard {
		t.Errorf("log output %v, want io.Discard", log.Writer())
	}
}

func TestSetupLoggingWritesFile(t *testing.T) {
	defer os.RemoveAll(logDir)

	f := setupLogging(true)
	if f == nil {
		t.Fatal("no log file with debug")
	}
	defer f.Close()

	if w := log.Writer(); w == os.Stdout || w == os.Stderr {
		t.Error("log output must stay off the terminal")
	}

	log.Println("order served")
	info, err := os.Stat(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("log file is empty after a write")
	}
}

func TestSetupLoggingRotatesOversizedFile(t *testing.T) {
	defer os.RemoveAll(logDir)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatal(err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatal(err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("no log file after rotation")
	}
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatal(err)
	}
	rotated := false
	for _, e := range entries {
		if e.Name() != logFileName && strings.HasPrefix(e.Name(), "plug-n-chug-") {
			rotated = true
		}
	}
	if !rotated {
		t.Error("oversized log was not rotated aside")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("fresh log is %d bytes", info.Size())
	}
}
