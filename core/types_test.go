// SPDX-License-Identifier: MIT
package core_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bimatch/core"
)

func TestPartition_Parse(t *testing.T) {
	cases := []struct {
		in   string
		want core.Partition
		ok   bool
	}{
		{"A", core.PartitionA, true},
		{"b", core.PartitionB, true},
		{"  a ", core.PartitionA, true},
		{"", core.PartitionUnknown, false},
		{"C", core.PartitionUnknown, false},
		{"AB", core.PartitionUnknown, false},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%q", tc.in), func(t *testing.T) {
			got, err := core.ParsePartition(tc.in)
			if !tc.ok {
				require.ErrorIs(t, err, core.ErrInvalidPartition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPartition_Helpers(t *testing.T) {
	assert.Equal(t, "A", core.PartitionA.String())
	assert.Equal(t, "B", core.PartitionB.String())
	assert.Equal(t, "unknown", core.PartitionUnknown.String())

	assert.True(t, core.PartitionA.Valid())
	assert.False(t, core.PartitionUnknown.Valid())

	assert.Equal(t, core.PartitionB, core.PartitionA.Opposite())
	assert.Equal(t, core.PartitionA, core.PartitionB.Opposite())
	assert.Equal(t, core.PartitionUnknown, core.PartitionUnknown.Opposite())
}

func TestNode_TextEncoding(t *testing.T) {
	data, err := json.Marshal(core.Node{ID: "x", Partition: core.PartitionB})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"x","partition":"B"}`, string(data))

	var n core.Node
	require.NoError(t, yaml.Unmarshal([]byte("id: y\npartition: a\n"), &n))
	assert.Equal(t, core.Node{ID: "y", Partition: core.PartitionA}, n)

	err = json.Unmarshal([]byte(`{"id":"z","partition":"Q"}`), &n)
	require.ErrorIs(t, err, core.ErrInvalidPartition)

	_, err = json.Marshal(core.Node{ID: "bad"})
	require.Error(t, err, "the unknown partition has no text form")
}

func TestEdge_TextEncoding(t *testing.T) {
	data, err := json.Marshal(core.Edge{U: "a", V: "b", Highlight: core.HighlightMatched})
	require.NoError(t, err)
	assert.JSONEq(t, `{"u":"a","v":"b","highlight":"matched"}`, string(data))

	var e core.Edge
	require.NoError(t, json.Unmarshal([]byte(`{"u":"c","v":"d"}`), &e))
	assert.Equal(t, core.HighlightNormal, e.Highlight)
	assert.Equal(t, "d", e.Other("c"))
	assert.Equal(t, "c", e.Other("d"))

	require.Error(t, json.Unmarshal([]byte(`{"u":"c","v":"d","highlight":"bold"}`), &e))
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		want core.Kind
	}{
		{nil, core.KindNone},
		{core.ErrEmptyNodeID, core.KindInvalidInput},
		{fmt.Errorf("wrap: %w", core.ErrInvalidPartition), core.KindInvalidInput},
		{&core.DuplicateNodeError{ID: "x"}, core.KindDuplicateNode},
		{&core.UnknownNodeError{IDs: []string{"x"}}, core.KindUnknownNode},
		{core.ErrEdgeNotFound, core.KindUnknownNode},
		{&core.SameFractionError{ID1: "a", ID2: "b", Partition: core.PartitionA}, core.KindSameFraction},
		{fmt.Errorf("kuhn: %w", core.ErrNotBipartite), core.KindNotBipartite},
		{errors.New("disk on fire"), core.KindInternal},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, core.KindOf(tc.err), "KindOf(%v)", tc.err)
	}

	assert.Equal(t, "same_fraction", core.KindSameFraction.String())
	assert.Equal(t, "internal", core.Kind(200).String())
}

func TestTypedErrors_Messages(t *testing.T) {
	assert.Contains(t, (&core.DuplicateNodeError{ID: "x"}).Error(), `"x"`)
	msg := (&core.UnknownNodeError{IDs: []string{"p", "q"}}).Error()
	assert.Contains(t, msg, "p")
	assert.Contains(t, msg, "q")
	assert.Contains(t, (&core.SameFractionError{ID1: "a", ID2: "b", Partition: core.PartitionA}).Error(), "A")
}
