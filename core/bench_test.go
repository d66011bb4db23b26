// SPDX-License-Identifier: MIT
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/bimatch/core"
)

const benchSide = 256

func benchGraph(b *testing.B) *core.Graph {
	b.Helper()
	g := core.NewGraph(core.WithCapacity(2*benchSide, benchSide*4))
	for i := 0; i < benchSide; i++ {
		_ = g.AddNode(fmt.Sprintf("L%d", i), core.PartitionA)
		_ = g.AddNode(fmt.Sprintf("R%d", i), core.PartitionB)
	}
	for i := 0; i < benchSide; i++ {
		for d := 0; d < 4; d++ {
			_ = g.AddEdge(fmt.Sprintf("L%d", i), fmt.Sprintf("R%d", (i+d)%benchSide))
		}
	}

	return g
}

func BenchmarkGraph_AddEdge(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < benchSide; i++ {
		_ = g.AddNode(fmt.Sprintf("L%d", i), core.PartitionA)
		_ = g.AddNode(fmt.Sprintf("R%d", i), core.PartitionB)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(fmt.Sprintf("L%d", i%benchSide), fmt.Sprintf("R%d", (i/benchSide)%benchSide))
	}
}

func BenchmarkGraph_Snapshot(b *testing.B) {
	g := benchGraph(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Snapshot()
	}
}

func BenchmarkGraph_Clone(b *testing.B) {
	g := benchGraph(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}

func BenchmarkGraph_CheckInvariants(b *testing.B) {
	g := benchGraph(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := g.CheckInvariants(); err != nil {
			b.Fatal(err)
		}
	}
}
