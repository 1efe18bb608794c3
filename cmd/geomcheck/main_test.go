package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const okDoc = `
transforms:
  - name: shift
    steps:
      - translate: [1, 2, 3]
`

func TestRun_Stdin(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(nil, strings.NewReader(okDoc), &stdout, &stderr)
	require.NoError(t, err)
	require.Equal(t, "shift:\nmat4 (\n"+
		"  (  1.0000,   0.0000,   0.0000,   1.0000 )\n"+
		"  (  0.0000,   1.0000,   0.0000,   2.0000 )\n"+
		"  (  0.0000,   0.0000,   1.0000,   3.0000 )\n"+
		"  (  0.0000,   0.0000,   0.0000,   1.0000 )\n"+
		")\n", stdout.String())
	require.Empty(t, stderr.String())
}

func TestRun_InvalidFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	path := filepath.Join("..", "..", "xformdoc", "testdata", "scene.yaml")
	err := run([]string{"-f", path, "-v"}, nil, &stdout, &stderr)
	require.ErrorIs(t, err, errInvalid)
	require.Contains(t, err.Error(), "1 of 5")
	require.Contains(t, stderr.String(), "name=sheared")
	require.Contains(t, stderr.String(), "level=DEBUG")
	require.Contains(t, stdout.String(), "model:\n")
	require.NotContains(t, stdout.String(), "sheared:")
}

func TestRun_Epsilon(t *testing.T) {
	doc := "transforms:\n  - name: drift\n    matrix: [1, 0, 0, 0.001,  0, 1, 0, 0,  0, 0, 1, 0,  0, 0, 0, 1]\n"
	var stdout, stderr bytes.Buffer
	require.ErrorIs(t, run(nil, strings.NewReader(doc), &stdout, &stderr), errInvalid)
	require.NoError(t, run([]string{"-eps", "0.01"}, strings.NewReader(doc), &stdout, &stderr))
	require.Error(t, run([]string{"-eps", "-1"}, strings.NewReader(doc), &stdout, &stderr))
}

func TestRun_Point(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default depth", []string{"-point", "0,0,0", "-viewport", "0,0,2,2"},
			"shift -> vec3 (  2.0000,   3.0000,   2.0000 )\n"},
		{"zero-to-one depth", []string{"-point", "0, 0, 0", "-viewport", "0,0,2,2", "-depth", "zo"},
			"shift -> vec3 (  2.0000,   3.0000,   3.0000 )\n"},
		{"unit viewport", []string{"-point", "-1,-2,-3"},
			"shift -> vec3 (  0.5000,   0.5000,   0.5000 )\n"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			require.NoError(t, run(tc.args, strings.NewReader(okDoc), &stdout, &stderr))
			require.Equal(t, tc.want, stdout.String())
		})
	}
}

func TestRun_BadProjectionFlags(t *testing.T) {
	for _, args := range [][]string{
		{"-depth", "reversed"},
		{"-point", "1,2"},
		{"-point", "1,x,3"},
		{"-viewport", "0,0,800"},
	} {
		var stdout, stderr bytes.Buffer
		require.Error(t, run(args, strings.NewReader(okDoc), &stdout, &stderr), "%v", args)
		require.Empty(t, stdout.String(), "%v", args)
	}
}
