package config

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"k8s.io/klog/v2"
)

func TestNumThreads(t *testing.T) {
	t.Setenv("COMPARE_NUM_THREADS", "")
	assert.Equal(t, uint(runtime.NumCPU()), NumThreads())

	t.Setenv("COMPARE_NUM_THREADS", "3")
	assert.Equal(t, uint(3), NumThreads())

	t.Setenv("COMPARE_NUM_THREADS", "zero")
	assert.Equal(t, uint(runtime.NumCPU()), NumThreads())

	t.Setenv("COMPARE_NUM_THREADS", "0")
	assert.Equal(t, uint(runtime.NumCPU()), NumThreads())
}

func TestDefaultDType(t *testing.T) {
	cases := map[string]string{
		"":            "float32",
		"float64":     "float64",
		"\"FLOAT64\"": "float64",
		"double":      "float64",
		"float":       "float32",
		"int8":        "float32",
	}
	for value, expected := range cases {
		t.Run(value, func(t *testing.T) {
			t.Setenv("COMPARE_DEFAULT_DTYPE", value)
			assert.Equal(t, expected, DefaultDType())
		})
	}
}

func TestParallel(t *testing.T) {
	t.Setenv("COMPARE_PARALLEL", "")
	assert.True(t, Parallel(true))

	t.Setenv("COMPARE_PARALLEL", "false")
	assert.False(t, Parallel(true))

	t.Setenv("COMPARE_PARALLEL", "maybe")
	assert.True(t, Parallel(true))
}

func TestAsMap(t *testing.T) {
	t.Setenv("COMPARE_GRAIN_SIZE", "128")
	m := AsMap()
	assert.Len(t, m, 4)
	assert.Equal(t, uint(128), m["COMPARE_GRAIN_SIZE"].Value)
}

func TestInvalidValueWarnsOnce(t *testing.T) {
	var count int
	warnf = func(string, ...any) { count++ }
	warned.Clear()
	t.Cleanup(func() { warnf = klog.Warningf })

	t.Setenv("COMPARE_DEFAULT_DTYPE", "int16")
	for range 5 {
		assert.Equal(t, "float32", DefaultDType())
	}
	assert.Equal(t, 1, count)

	t.Setenv("COMPARE_DEFAULT_DTYPE", "int32")
	DefaultDType()
	assert.Equal(t, 2, count, "a new invalid value warns again")

	t.Setenv("COMPARE_GRAIN_SIZE", "-1")
	GrainSize()
	GrainSize()
	t.Setenv("COMPARE_PARALLEL", "maybe")
	Parallel(true)
	Parallel(true)
	assert.Equal(t, 4, count)
}
