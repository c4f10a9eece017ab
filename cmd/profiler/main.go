package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strconv"
	"time"

	"github.com/AlenaMolokova/randkey/internal/app/generator"
	"github.com/sirupsen/logrus"
)

// generateLoad builds one key with load characters of every class.
func generateLoad(ctx context.Context, load int, unit string, workers int) error {
	n := strconv.Itoa(load)
	r, err := generator.New(n, n, n)
	if err != nil {
		return err
	}
	if err := r.SetUnit(unit); err != nil {
		return err
	}
	r.SetWorkers(workers)

	u, err := generator.ParseCount(unit)
	if err != nil {
		return err
	}
	logrus.WithField("chunks_per_class", generator.ChunkCount(r.CountValue(generator.Alphabetic), u).String()).Info("Generating test load")

	start := time.Now()
	if err := r.GenerateContext(ctx); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"length":   r.Len(),
		"unit":     r.Unit(),
		"workers":  workers,
		"duration": time.Since(start).String(),
	}).Info("Key generated")
	return nil
}

func main() {
	var memProfileName string
	var cpuProfileName string
	var testLoad int
	var unit string
	var workers int
	var profileMode string
	var allocsProfileName string

	flag.StringVar(&allocsProfileName, "allocsprofile", "", "write allocs profile to file (optional)")
	flag.StringVar(&cpuProfileName, "cpuprofile", "", "CPU profile file name (optional)")
	flag.IntVar(&testLoad, "load", 1_000_000, "Number of characters of each class to generate")
	flag.StringVar(&unit, "unit", strconv.Itoa(generator.DefaultUnit), "Unit size used for generation")
	flag.IntVar(&workers, "workers", 0, "Parallel units (0 means GOMAXPROCS)")
	flag.StringVar(&profileMode, "mode", "base", "Profile mode: 'base' or 'result'")
	flag.Parse()

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.InfoLevel)

	if err := os.MkdirAll("profiles", os.ModePerm); err != nil {
		logrus.WithError(err).Fatal("Failed to create profiles directory")
	}

	if profileMode == "result" {
		memProfileName = "result.pprof"
	} else {
		memProfileName = "base.pprof"
	}
	memProfilePath := filepath.Join("profiles", memProfileName)

	logrus.WithFields(logrus.Fields{
		"mode":      profileMode,
		"profile":   memProfileName,
		"test_load": testLoad,
		"unit":      unit,
		"heap_path": memProfilePath,
		"cpu_path":  cpuProfileName,
	}).Info("Starting profiling")

	var cpuProfileFile *os.File
	if cpuProfileName != "" {
		cpuPath := filepath.Join("profiles", cpuProfileName)
		f, err := os.Create(cpuPath)
		if err != nil {
			logrus.WithError(err).Fatal("Could not create CPU profile")
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			logrus.WithError(err).Fatal("Could not start CPU profile")
		}
		logrus.WithField("file", cpuPath).Info("CPU profiling started")
		cpuProfileFile = f
	}

	if testLoad > 0 {
		if err := generateLoad(context.Background(), testLoad, unit, workers); err != nil {
			logrus.WithError(err).Fatal("Failed to generate test load")
		}
	}

	if cpuProfileFile != nil {
		pprof.StopCPUProfile()
		cpuProfileFile.Close()
		logrus.WithField("file", cpuProfileName).Info("CPU profiling stopped")
	}

	f, err := os.Create(memProfilePath)
	if err != nil {
		logrus.WithError(err).Fatal("Could not create memory profile")
	}
	defer f.Close()

	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		logrus.WithError(err).Fatal("Could not write memory profile")
	}
	logrus.Infof("Heap profile written to %s", memProfilePath)

	if allocsProfileName != "" {
		allocsPath := filepath.Join("profiles", allocsProfileName)
		f, err := os.Create(allocsPath)
		if err != nil {
			logrus.WithError(err).Fatal("Could not create allocs profile")
		}
		defer f.Close()

		if err := pprof.Lookup("allocs").WriteTo(f, 0); err != nil {
			logrus.WithError(err).Fatal("Could not write allocs profile")
		}
		logrus.Infof("Allocs profile written to %s", allocsPath)
	}

	if profileMode == "base" {
		logrus.Info("Base profile created. Compare after changing -unit with -mode=result")
	} else {
		logrus.Info("Result profile created: go tool pprof -diff_base=profiles/base.pprof profiles/result.pprof")
	}
}
