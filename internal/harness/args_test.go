package harness

import (
	"flag"
	"io"
	"testing"

	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseTreeArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    TreeArgs
		wantErr bool
	}{
		{"defaults", nil, TreeArgs{Size: DefaultTreeSize}, false},
		{"size", []string{"100"}, TreeArgs{Size: 100}, false},
		{"flags", []string{"-debug", "-seed", "7", "5"}, TreeArgs{Debug: true, Seed: 7, Size: 5}, false},
		{"zero", []string{"0"}, TreeArgs{Size: 0}, false},
		{"invalid size", []string{"abc"}, TreeArgs{Size: DefaultTreeSize}, true},
		{"negative size", []string{"-debug", "--", "-3"}, TreeArgs{Debug: true, Size: DefaultTreeSize}, true},
		{"too large", []string{"99999999999"}, TreeArgs{Size: DefaultTreeSize}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTreeArgs(newFlagSet(), tt.args)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.args[len(tt.args)-1], merry.Value(err, "arg"))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseTreeArgs_BadFlag(t *testing.T) {
	got, err := ParseTreeArgs(newFlagSet(), []string{"-nope"})
	assert.Nil(t, got)
	assert.Error(t, err)
}

func TestParseDeckArgs(t *testing.T) {
	got, err := ParseDeckArgs(newFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, DeckArgs{Workers: 1}, *got)

	got, err = ParseDeckArgs(newFlagSet(), []string{"-seed", "3", "-workers", "4", "1000"})
	require.NoError(t, err)
	assert.Equal(t, DeckArgs{Seed: 3, Workers: 4, Trials: 1000}, *got)

	_, err = ParseDeckArgs(newFlagSet(), []string{"x"})
	assert.Error(t, err)

	_, err = ParseDeckArgs(newFlagSet(), []string{"-workers", "0"})
	require.Error(t, err)
	assert.Equal(t, 0, merry.Value(err, "workers"))
}
