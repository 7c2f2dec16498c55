package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunMerkle(t *testing.T) {
	require.NoError(t, runMerkle("vesta", []string{"1", "2", "3"}))
	require.NoError(t, runMerkle("goldilocks", []string{"7"}))

	require.Error(t, runMerkle("vesta", nil))
	require.Error(t, runMerkle("unknown", []string{"1"}))
}
