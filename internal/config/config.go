// Package config reads the engine's environment configuration.
//
// Values are read lazily on every call so tests can override them with t.Setenv.
// An invalid value is logged the first time it is seen.
package config

import (
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"k8s.io/klog/v2"
)

var (
	// NumThreads is the number of workers used by elementwise loops.
	NumThreads = Uint("COMPARE_NUM_THREADS", uint(runtime.NumCPU()))

	// GrainSize is the minimum number of elements handed to a single worker.
	GrainSize = Uint("COMPARE_GRAIN_SIZE", 32768)

	// Parallel enables parallel elementwise loops.
	Parallel = BoolWithDefault("COMPARE_PARALLEL")
)

// DefaultDType returns the name of the default floating point type: "float32" or "float64".
// Configurable via COMPARE_DEFAULT_DTYPE.
func DefaultDType() string {
	s := strings.ToLower(Var("COMPARE_DEFAULT_DTYPE"))
	switch s {
	case "":
		return "float32"
	case "float32", "float64":
		return s
	case "double":
		return "float64"
	case "float":
		return "float32"
	}
	warnInvalid("COMPARE_DEFAULT_DTYPE", s, "float32")
	return "float32"
}

var (
	warnf  = klog.Warningf
	warned sync.Map
)

// warnInvalid logs a bad value once per variable and value, since readers run on every operation.
func warnInvalid(key, value string, defaultValue any) {
	if _, seen := warned.LoadOrStore(key+"="+value, true); seen {
		return
	}
	warnf("invalid environment variable %s=%q, using default %v", key, value, defaultValue)
}

// Var returns an environment variable stripped of leading and trailing quotes or spaces.
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// BoolWithDefault returns a reader for a boolean variable.
func BoolWithDefault(k string) func(defaultValue bool) bool {
	return func(defaultValue bool) bool {
		if s := Var(k); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				warnInvalid(k, s, defaultValue)
				return defaultValue
			}
			return b
		}
		return defaultValue
	}
}

// Uint returns a reader for an unsigned integer variable.
func Uint(key string, defaultValue uint) func() uint {
	return func() uint {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseUint(s, 10, 64); err != nil || n == 0 {
				warnInvalid(key, s, defaultValue)
			} else {
				return uint(n)
			}
		}
		return defaultValue
	}
}

// EnvVar describes one configuration variable.
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap returns every configuration variable with its current value.
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"COMPARE_NUM_THREADS":   {"COMPARE_NUM_THREADS", NumThreads(), "Workers used by elementwise loops (default: number of CPUs)"},
		"COMPARE_GRAIN_SIZE":    {"COMPARE_GRAIN_SIZE", GrainSize(), "Minimum elements per worker (default: 32768)"},
		"COMPARE_PARALLEL":      {"COMPARE_PARALLEL", Parallel(true), "Run elementwise loops in parallel (default: true)"},
		"COMPARE_DEFAULT_DTYPE": {"COMPARE_DEFAULT_DTYPE", DefaultDType(), "Default floating point type (float32 or float64)"},
	}
}
